package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/repository/implementation"
	"marketing-agent-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	repo := implementation.NewTemplateRepository(gormDB)

	t.Run("Count template store", func(t *testing.T) {
		count, err := repo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Template entry count: %d", count)
	})

	t.Run("Similarity search with label filter", func(t *testing.T) {
		// Zero vector still exercises the pgvector operator and the filter.
		query := make([]float32, 1536)
		entries, err := repo.SearchSimilar(context.Background(), query,
			[]string{constant.LabelBrandTemplate}, constant.RetrievalTopK)
		assert.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, constant.LabelBrandTemplate, e.Label)
		}
		t.Logf("Matched %d entries", len(entries))
	})
}
