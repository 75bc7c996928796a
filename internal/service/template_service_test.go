package service

import (
	"context"
	"errors"
	"testing"

	"marketing-agent-be/internal/entity"
	"marketing-agent-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplateRepo struct {
	entries     []*entity.TemplateEntry
	bulkCalls   int
	deleteCalls int
}

func (f *fakeTemplateRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

func (f *fakeTemplateRepo) CreateBulk(ctx context.Context, entries []*entity.TemplateEntry) error {
	f.bulkCalls++
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeTemplateRepo) DeleteAll(ctx context.Context) error {
	f.deleteCalls++
	f.entries = nil
	return nil
}

func (f *fakeTemplateRepo) SearchSimilar(ctx context.Context, embedding []float32, labels []string, limit int) ([]*entity.TemplateEntry, error) {
	return nil, nil
}

type countingEmbedder struct {
	calls int
	err   error
}

func (c *countingEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []float32{0.5, 0.5}, nil
}

func TestEnsureLoadedFirstUse(t *testing.T) {
	repo := &fakeTemplateRepo{}
	embedder := &countingEmbedder{}
	// Empty dir: every extraction degrades but entries are still inserted.
	svc := NewTemplateService(repo, embedder, t.TempDir(), logger.NewNopLogger())

	require.NoError(t, svc.EnsureLoaded(context.Background()))

	assert.Len(t, repo.entries, 3)
	assert.Equal(t, 1, repo.bulkCalls, "all entries land in one bulk insert")
	assert.Equal(t, 3, embedder.calls)
}

func TestEnsureLoadedIsIdempotent(t *testing.T) {
	repo := &fakeTemplateRepo{}
	embedder := &countingEmbedder{}
	svc := NewTemplateService(repo, embedder, t.TempDir(), logger.NewNopLogger())

	require.NoError(t, svc.EnsureLoaded(context.Background()))
	require.NoError(t, svc.EnsureLoaded(context.Background()))

	assert.Equal(t, 1, repo.bulkCalls)
	assert.Equal(t, 3, embedder.calls, "second call must not re-embed")
}

func TestEnsureLoadedDoesNotRepairPartialStore(t *testing.T) {
	repo := &fakeTemplateRepo{entries: []*entity.TemplateEntry{{Id: "only-one"}}}
	embedder := &countingEmbedder{}
	svc := NewTemplateService(repo, embedder, t.TempDir(), logger.NewNopLogger())

	require.NoError(t, svc.EnsureLoaded(context.Background()))

	// Any nonzero count short-circuits; a partial store stays partial.
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, 0, embedder.calls)
}

func TestReloadWipesAndReloads(t *testing.T) {
	repo := &fakeTemplateRepo{entries: []*entity.TemplateEntry{{Id: "stale"}}}
	embedder := &countingEmbedder{}
	svc := NewTemplateService(repo, embedder, t.TempDir(), logger.NewNopLogger())

	require.NoError(t, svc.Reload(context.Background()))

	assert.Equal(t, 1, repo.deleteCalls)
	assert.Len(t, repo.entries, 3)
	for _, e := range repo.entries {
		assert.NotEqual(t, "stale", e.Id)
	}
}

func TestEnsureLoadedEmbeddingFailure(t *testing.T) {
	repo := &fakeTemplateRepo{}
	embedder := &countingEmbedder{err: errors.New("provider down")}
	svc := NewTemplateService(repo, embedder, t.TempDir(), logger.NewNopLogger())

	err := svc.EnsureLoaded(context.Background())

	require.Error(t, err)
	assert.Empty(t, repo.entries, "nothing is inserted when embedding fails")
}
