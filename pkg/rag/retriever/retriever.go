package retriever

import (
	"context"
	"fmt"
	"strings"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/pkg/embedding"
)

// TemplateSearcher is the slice of the Template Store the retriever needs.
type TemplateSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, labels []string, limit int) ([]*entity.TemplateEntry, error)
}

// Retriever selects the label filter for an agent category and pulls the
// top-k matching reference texts for a query.
type Retriever struct {
	embedder  embedding.EmbeddingProvider
	templates TemplateSearcher
	logger    logger.ILogger
}

func NewRetriever(embedder embedding.EmbeddingProvider, templates TemplateSearcher, log logger.ILogger) *Retriever {
	return &Retriever{
		embedder:  embedder,
		templates: templates,
		logger:    log,
	}
}

// LabelFilter maps an agent category to the Template Store labels eligible
// for its retrieval queries. Digital retrieval always consults both the
// generic template and the worked example; digital strategy quality benefits
// from a concrete exemplar.
func LabelFilter(agent string) ([]string, error) {
	switch agent {
	case constant.AgentBrand:
		return []string{constant.LabelBrandTemplate}, nil
	case constant.AgentDigital:
		return []string{constant.LabelDigitalTemplate, constant.LabelDigitalExample}, nil
	default:
		return nil, fmt.Errorf("unknown agent category: %q (must be %q or %q)",
			agent, constant.AgentBrand, constant.AgentDigital)
	}
}

// Retrieve returns the top-k matching reference texts joined by a blank line.
// An unknown agent category is rejected eagerly. Embedding or store failures
// and empty result sets are absorbed into an empty context string: generation
// proceeds with degraded grounding rather than failing.
func (r *Retriever) Retrieve(ctx context.Context, query, agent string) (string, error) {
	labels, err := LabelFilter(agent)
	if err != nil {
		return "", err
	}

	queryVector, err := r.embedder.Generate(ctx, query)
	if err != nil {
		r.logger.Warn("retriever", "embedding query failed, proceeding without context", map[string]interface{}{
			"agent": agent,
			"error": err.Error(),
		})
		return "", nil
	}

	entries, err := r.templates.SearchSimilar(ctx, queryVector, labels, constant.RetrievalTopK)
	if err != nil {
		r.logger.Warn("retriever", "template search failed, proceeding without context", map[string]interface{}{
			"agent": agent,
			"error": err.Error(),
		})
		return "", nil
	}
	if len(entries) == 0 {
		r.logger.Warn("retriever", "no templates matched, output quality may be poor", map[string]interface{}{
			"agent":  agent,
			"labels": labels,
		})
		return "", nil
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Document
	}
	return strings.Join(texts, "\n\n"), nil
}
