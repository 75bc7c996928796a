package retriever

import (
	"context"
	"errors"
	"testing"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/pkg/logger"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeSearcher struct {
	gotLabels []string
	gotLimit  int
	entries   []*entity.TemplateEntry
	err       error
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, embedding []float32, labels []string, limit int) ([]*entity.TemplateEntry, error) {
	f.gotLabels = labels
	f.gotLimit = limit
	return f.entries, f.err
}

func TestLabelFilter(t *testing.T) {
	tests := []struct {
		name       string
		agent      string
		wantLabels []string
		wantErr    bool
	}{
		{
			name:       "brand uses only its template",
			agent:      constant.AgentBrand,
			wantLabels: []string{constant.LabelBrandTemplate},
		},
		{
			name:       "digital uses template and example",
			agent:      constant.AgentDigital,
			wantLabels: []string{constant.LabelDigitalTemplate, constant.LabelDigitalExample},
		},
		{
			name:    "unknown agent is rejected",
			agent:   "seo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := LabelFilter(tt.agent)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(labels) != len(tt.wantLabels) {
				t.Fatalf("labels = %v, want %v", labels, tt.wantLabels)
			}
			for i, l := range tt.wantLabels {
				if labels[i] != l {
					t.Errorf("labels[%d] = %q, want %q", i, labels[i], l)
				}
			}
		})
	}
}

func TestRetrieveJoinsDocuments(t *testing.T) {
	searcher := &fakeSearcher{entries: []*entity.TemplateEntry{
		{Document: "template text"},
		{Document: "example text"},
	}}
	r := NewRetriever(&fakeEmbedder{}, searcher, logger.NewNopLogger())

	got, err := r.Retrieve(context.Background(), "query", constant.AgentDigital)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "template text\n\nexample text" {
		t.Errorf("Retrieve = %q", got)
	}
	if searcher.gotLimit != constant.RetrievalTopK {
		t.Errorf("limit = %d, want %d", searcher.gotLimit, constant.RetrievalTopK)
	}
	if len(searcher.gotLabels) != 2 || searcher.gotLabels[0] != constant.LabelDigitalTemplate {
		t.Errorf("labels = %v", searcher.gotLabels)
	}
}

func TestRetrieveAbsorbsFailures(t *testing.T) {
	tests := []struct {
		name     string
		embedder *fakeEmbedder
		searcher *fakeSearcher
	}{
		{
			name:     "embedding failure",
			embedder: &fakeEmbedder{err: errors.New("provider down")},
			searcher: &fakeSearcher{},
		},
		{
			name:     "search failure",
			embedder: &fakeEmbedder{},
			searcher: &fakeSearcher{err: errors.New("db down")},
		},
		{
			name:     "no matches",
			embedder: &fakeEmbedder{},
			searcher: &fakeSearcher{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetriever(tt.embedder, tt.searcher, logger.NewNopLogger())
			got, err := r.Retrieve(context.Background(), "query", constant.AgentBrand)
			if err != nil {
				t.Fatalf("failures must be absorbed, got error: %v", err)
			}
			if got != "" {
				t.Errorf("Retrieve = %q, want empty", got)
			}
		})
	}
}

func TestRetrieveUnknownAgent(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeSearcher{}, logger.NewNopLogger())

	if _, err := r.Retrieve(context.Background(), "query", "seo"); err == nil {
		t.Fatal("expected an error for an unknown agent")
	}
}
