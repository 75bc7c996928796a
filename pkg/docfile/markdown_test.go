package docfile

import (
	"testing"
)

func TestParseMarkdownClassification(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind NodeKind
		wantText string
	}{
		{
			name:     "heading one",
			line:     "# Brand Strategy",
			wantKind: Heading1,
			wantText: "Brand Strategy",
		},
		{
			name:     "heading two strips marker",
			line:     "## Title",
			wantKind: Heading2,
			wantText: "Title",
		},
		{
			name:     "heading three",
			line:     "### Channel Mix",
			wantKind: Heading3,
			wantText: "Channel Mix",
		},
		{
			name:     "dash bullet",
			line:     "- Increase awareness",
			wantKind: Bullet,
			wantText: "Increase awareness",
		},
		{
			name:     "middle dot bullet",
			line:     "· Social proof",
			wantKind: Bullet,
			wantText: "Social proof",
		},
		{
			name:     "first numbered item",
			line:     "1. Define audience",
			wantKind: Numbered,
			wantText: "Define audience",
		},
		{
			name:     "second numbered item degrades to paragraph",
			line:     "2. Second item",
			wantKind: Paragraph,
			wantText: "2. Second item",
		},
		{
			name:     "plain text",
			line:     "The market is fragmented.",
			wantKind: Paragraph,
			wantText: "The market is fragmented.",
		},
		{
			name:     "hash without space is a paragraph",
			line:     "#NoSpace",
			wantKind: Paragraph,
			wantText: "#NoSpace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := ParseMarkdown(tt.line)
			if len(nodes) != 1 {
				t.Fatalf("node count = %d, want 1", len(nodes))
			}
			if nodes[0].Kind != tt.wantKind {
				t.Errorf("Kind = %d, want %d", nodes[0].Kind, tt.wantKind)
			}
			if nodes[0].Text != tt.wantText {
				t.Errorf("Text = %q, want %q", nodes[0].Text, tt.wantText)
			}
		})
	}
}

func TestParseMarkdownSkipsBlankLines(t *testing.T) {
	markdown := "# Title\n\n\nIntro paragraph\n   \n- Point"

	nodes := ParseMarkdown(markdown)
	if len(nodes) != 3 {
		t.Fatalf("node count = %d, want 3", len(nodes))
	}

	wantKinds := []NodeKind{Heading1, Paragraph, Bullet}
	for i, kind := range wantKinds {
		if nodes[i].Kind != kind {
			t.Errorf("nodes[%d].Kind = %d, want %d", i, nodes[i].Kind, kind)
		}
	}
}

func TestParseMarkdownPreservesOrder(t *testing.T) {
	markdown := "## Objectives\n1. First\n2. Second\n- Last"

	nodes := ParseMarkdown(markdown)
	if len(nodes) != 4 {
		t.Fatalf("node count = %d, want 4", len(nodes))
	}

	want := []Node{
		{Kind: Heading2, Text: "Objectives"},
		{Kind: Numbered, Text: "First"},
		{Kind: Paragraph, Text: "2. Second"},
		{Kind: Bullet, Text: "Last"},
	}
	for i, w := range want {
		if nodes[i] != w {
			t.Errorf("nodes[%d] = %+v, want %+v", i, nodes[i], w)
		}
	}
}

func TestParseMarkdownEmptyInput(t *testing.T) {
	if nodes := ParseMarkdown(""); len(nodes) != 0 {
		t.Errorf("node count = %d, want 0", len(nodes))
	}
}
