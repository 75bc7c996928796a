package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type TemplateEmbedding struct {
	Id             string          `gorm:"type:varchar(64);primaryKey"`
	Label          string          `gorm:"type:varchar(64);not null;index"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (TemplateEmbedding) TableName() string {
	return "template_embeddings"
}
