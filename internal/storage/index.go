package storage

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

type RankedQuery struct {
	Text   string
	Boosts domain.FieldWeights
	Fuzzy  bool
	Offset int
	Size   int
}

// RankedIDs is an index result. IDs are in relevance order and Scores[i] belongs to IDs[i].
type RankedIDs struct {
	IDs    []string
	Scores []float64
	Total  int
}

// FullTextIndex ranks the corpus by boosted multi-field relevance.
type FullTextIndex interface {
	RankedQuery(ctx context.Context, q RankedQuery) (*RankedIDs, error)
}

// VideoIndexer provisions the full-text index and loads videos into it.
type VideoIndexer interface {
	EnsureIndex(ctx context.Context) error
	IndexBulk(ctx context.Context, videos []domain.Video) error
}
