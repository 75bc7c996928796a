package contract

import (
	"context"

	"marketing-agent-be/internal/entity"
)

// TemplateRepository persists the similarity-searchable reference texts.
type TemplateRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBulk(ctx context.Context, entries []*entity.TemplateEntry) error
	DeleteAll(ctx context.Context) error
	// SearchSimilar returns up to limit entries whose label is in labels,
	// ranked by cosine similarity to the query embedding. An empty result is
	// not an error.
	SearchSimilar(ctx context.Context, embedding []float32, labels []string, limit int) ([]*entity.TemplateEntry, error)
}
