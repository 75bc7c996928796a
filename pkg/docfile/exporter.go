package docfile

import (
	"bytes"
	"time"

	"baliance.com/gooxml/document"
)

var nodeStyles = map[NodeKind]string{
	Heading1: "Heading1",
	Heading2: "Heading2",
	Heading3: "Heading3",
	Bullet:   "ListBullet",
	Numbered: "ListNumber",
}

// ExportWord renders a markdown draft into a Word document: a title heading
// built from the display name, a generation-date paragraph, then one docx
// node per classified markdown line. The returned buffer is ready to write,
// positioned at its start. The buffer is built fresh per call, never cached.
func ExportWord(markdown, displayName string) (*bytes.Buffer, error) {
	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Title")
	title.AddRun().AddText(displayName + " - Strategy Document")

	generated := doc.AddParagraph()
	generated.AddRun().AddText("Generated on: " + time.Now().Format("January 2, 2006"))

	doc.AddParagraph()

	for _, node := range ParseMarkdown(markdown) {
		para := doc.AddParagraph()
		if style, ok := nodeStyles[node.Kind]; ok {
			para.SetStyle(style)
		}
		para.AddRun().AddText(node.Text)
	}

	buf := new(bytes.Buffer)
	if err := doc.Save(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
