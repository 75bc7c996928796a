package embedding

import (
	"context"
	"math"
)

// EmbeddingProvider generates a unit-length vector embedding for a text.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// normalizeVector scales a vector to unit length. Cosine distance in pgvector
// expects normalized vectors (magnitude = 1).
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
