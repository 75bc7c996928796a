package service

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/internal/repository/contract"
	"marketing-agent-be/pkg/docfile"
	"marketing-agent-be/pkg/embedding"
)

// ITemplateService owns the Template Store lifecycle: idempotent first-use
// loading of the three fixed reference documents and a forced reload for the
// seed command.
type ITemplateService interface {
	EnsureLoaded(ctx context.Context) error
	Reload(ctx context.Context) error
}

type referenceDoc struct {
	id    string
	label string
	file  string
}

// The three fixed reference documents. One Template Store entry per id.
var referenceDocs = []referenceDoc{
	{id: constant.TemplateIdBrand, label: constant.LabelBrandTemplate, file: constant.ReferenceFileBrand},
	{id: constant.TemplateIdDigital, label: constant.LabelDigitalTemplate, file: constant.ReferenceFileDigital},
	{id: constant.TemplateIdDigitalExample, label: constant.LabelDigitalExample, file: constant.ReferenceFileDigitalExample},
}

type templateService struct {
	repo        contract.TemplateRepository
	embedder    embedding.EmbeddingProvider
	templateDir string
	logger      logger.ILogger

	// Guards the check-then-act first load against concurrent requests in
	// this process. Cross-process duplicates are absorbed by the fixed
	// primary-key ids.
	mu sync.Mutex
}

func NewTemplateService(
	repo contract.TemplateRepository,
	embedder embedding.EmbeddingProvider,
	templateDir string,
	log logger.ILogger,
) ITemplateService {
	return &templateService{
		repo:        repo,
		embedder:    embedder,
		templateDir: templateDir,
		logger:      log,
	}
}

// EnsureLoaded is a no-op when the store already holds at least one entry,
// even if a previous load was partial: there is no repair and no refresh.
func (s *templateService) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.load(ctx)
}

// Reload wipes the store and loads all reference documents again.
func (s *templateService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.load(ctx)
}

func (s *templateService) load(ctx context.Context) error {
	s.logger.Info("template-store", "loading reference templates", map[string]interface{}{
		"dir": s.templateDir,
	})

	entries := make([]*entity.TemplateEntry, 0, len(referenceDocs))
	for _, ref := range referenceDocs {
		result := docfile.ExtractText(filepath.Join(s.templateDir, ref.file))
		if result.Degraded {
			// Best effort: the entry is still inserted with empty content so
			// generation proceeds with degraded retrieval quality.
			s.logger.Warn("template-store", "reference extraction degraded", map[string]interface{}{
				"id":     ref.id,
				"reason": result.Reason,
			})
		}

		vector, err := s.embedder.Generate(ctx, result.Text)
		if err != nil {
			return err
		}

		entries = append(entries, &entity.TemplateEntry{
			Id:        ref.id,
			Label:     ref.label,
			Document:  result.Text,
			Embedding: vector,
			CreatedAt: time.Now(),
		})
	}

	if err := s.repo.CreateBulk(ctx, entries); err != nil {
		return err
	}

	s.logger.Info("template-store", "reference templates loaded", map[string]interface{}{
		"count": len(entries),
	})
	return nil
}
