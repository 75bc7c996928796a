package docfile

import "strings"

// NodeKind classifies one markdown line.
type NodeKind int

const (
	Heading1 NodeKind = iota + 1
	Heading2
	Heading3
	Bullet
	Numbered
	Paragraph
)

// Node is one classified, order-preserved markdown line.
type Node struct {
	Kind NodeKind
	Text string
}

// prefixRules are evaluated top to bottom; the first matching prefix wins.
// Only the literal "1. " marker is recognized as a numbered item: "2. ", "3. "
// and so on fall through to plain paragraphs. That limitation is intentional
// and covered by tests.
var prefixRules = []struct {
	prefix string
	kind   NodeKind
}{
	{"# ", Heading1},
	{"## ", Heading2},
	{"### ", Heading3},
	{"- ", Bullet},
	{"· ", Bullet},
	{"1. ", Numbered},
}

// ParseMarkdown splits the input on newlines, trims each line, and classifies
// every non-empty line into exactly one Node. Empty lines produce no node.
// Malformed markdown never fails; unmatched lines degrade to paragraphs.
func ParseMarkdown(markdown string) []Node {
	var nodes []Node
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		nodes = append(nodes, classifyLine(line))
	}
	return nodes
}

func classifyLine(line string) Node {
	for _, rule := range prefixRules {
		if strings.HasPrefix(line, rule.prefix) {
			return Node{Kind: rule.kind, Text: line[len(rule.prefix):]}
		}
	}
	return Node{Kind: Paragraph, Text: line}
}
