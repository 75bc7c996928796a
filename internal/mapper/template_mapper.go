package mapper

import (
	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(e *model.TemplateEmbedding) *entity.TemplateEntry {
	if e == nil {
		return nil
	}
	return &entity.TemplateEntry{
		Id:        e.Id,
		Label:     e.Label,
		Document:  e.Document,
		Embedding: e.EmbeddingValue.Slice(),
		CreatedAt: e.CreatedAt,
	}
}

func (m *TemplateMapper) ToModel(e *entity.TemplateEntry) *model.TemplateEmbedding {
	if e == nil {
		return nil
	}
	return &model.TemplateEmbedding{
		Id:             e.Id,
		Label:          e.Label,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		CreatedAt:      e.CreatedAt,
	}
}
