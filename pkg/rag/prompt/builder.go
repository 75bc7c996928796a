package prompt

import (
	"strings"

	"marketing-agent-be/pkg/store"
)

// Placeholders substituted into the category instruction templates.
const (
	inputPlaceholder   = "{input}"
	contextPlaceholder = "{context}"
)

// Builder assembles a generation prompt from a category instruction template.
// Assembly is pure string substitution: no conditional sections, no
// per-question customization, no length validation.
type Builder struct {
	template string
}

func NewBuilder(template string) *Builder {
	return &Builder{template: template}
}

// Build substitutes the client input summary and the retrieved context into
// the template placeholders.
func (b *Builder) Build(answers *store.AnswerSet, context string) string {
	assembled := strings.ReplaceAll(b.template, inputPlaceholder, InputSummary(answers))
	assembled = strings.ReplaceAll(assembled, contextPlaceholder, context)
	return assembled
}

// InputSummary renders the answer set as newline-joined "Q: <id>\nA: <answer>"
// pairs in insertion order, so the same inputs always produce the same prompt.
func InputSummary(answers *store.AnswerSet) string {
	pairs := answers.Pairs()
	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		lines = append(lines, "Q: "+pair.Id+"\nA: "+pair.Answer)
	}
	return strings.Join(lines, "\n")
}
