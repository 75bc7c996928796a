package implementation

import (
	"context"

	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/mapper"
	"marketing-agent-be/internal/model"
	"marketing-agent-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) contract.TemplateRepository {
	return &TemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(),
	}
}

func (r *TemplateRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TemplateEmbedding{}).Count(&count).Error
	return count, err
}

func (r *TemplateRepositoryImpl) CreateBulk(ctx context.Context, entries []*entity.TemplateEntry) error {
	models := make([]*model.TemplateEmbedding, len(entries))
	for i, e := range entries {
		models[i] = r.mapper.ToModel(e)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *TemplateRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.TemplateEmbedding{}).Error
}

func (r *TemplateRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, labels []string, limit int) ([]*entity.TemplateEntry, error) {
	if limit <= 0 {
		limit = 3
	}
	var models []*model.TemplateEmbedding

	// pgvector cosine distance: embedding_value <=> query_vector
	err := r.db.WithContext(ctx).
		Where("label IN ?", labels).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.TemplateEntry, len(models))
	for i, m := range models {
		entries[i] = r.mapper.ToEntity(m)
	}
	return entries, nil
}
