package docfile

import (
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
)

// ExtractResult distinguishes a genuinely extracted text from a degraded
// (failed) extraction. Both yield a usable Text so callers can keep the
// best-effort policy: a missing reference file degrades retrieval quality
// instead of aborting generation.
type ExtractResult struct {
	Text     string
	Degraded bool
	Reason   string
}

// ExtractText reads a paragraph-structured .docx file and flattens it to
// newline-joined plain text, skipping blank paragraphs. Read or parse
// failures are absorbed into a Degraded result, never returned as errors.
func ExtractText(path string) ExtractResult {
	doc, err := document.Open(path)
	if err != nil {
		return ExtractResult{
			Degraded: true,
			Reason:   fmt.Sprintf("open %s: %v", path, err),
		}
	}

	var texts []string
	for _, para := range doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		if text := sb.String(); strings.TrimSpace(text) != "" {
			texts = append(texts, text)
		}
	}

	return ExtractResult{Text: strings.Join(texts, "\n")}
}
