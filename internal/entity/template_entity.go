package entity

import "time"

// TemplateEntry is one reference text in the Template Store: a fixed string
// id, a category label, the full extracted text and its vector embedding.
// Entries are created once per reference document and never mutated.
type TemplateEntry struct {
	Id        string
	Label     string
	Document  string
	Embedding []float32
	CreatedAt time.Time
}
