package storage

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

const TitleEmbedding = "title"

type EmbeddingStore interface {
	// ListWithEmbedding returns the videos that carry an embedding of the given type.
	ListWithEmbedding(ctx context.Context, embeddingType string) ([]domain.Video, error)
	CountWithEmbedding(ctx context.Context, embeddingType string) (int, error)
}

// VectorQuery asks for the nearest videos to a query embedding by cosine similarity.
type VectorQuery struct {
	EmbeddingType string
	Vector        []float32
	MinSimilarity float64
	Limit         int
	Offset        int
}

type VectorSearcher interface {
	// NearestByVector returns one page of matches and the number of videos above MinSimilarity.
	NearestByVector(ctx context.Context, q VectorQuery) ([]domain.ScoredVideo, int, error)
}
