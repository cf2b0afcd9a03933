package storage

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

// MatchQuery selects videos whose title, description or any tag contains Term
// case-insensitively.
type MatchQuery struct {
	Term string
	// Weights switches ordering from publish time to the weighted field score,
	// with publish time as the tie-break. Nil keeps publish time ordering.
	Weights *domain.FieldWeights
	Limit   int
	Offset  int
}

// VideoStore is the canonical, relational view of the corpus.
type VideoStore interface {
	SearchByPredicate(ctx context.Context, q MatchQuery) ([]domain.ScoredVideo, error)
	CountByPredicate(ctx context.Context, term string) (int, error)
	// HydrateByIDs returns the videos for ids in no particular order. Unknown ids are skipped.
	HydrateByIDs(ctx context.Context, ids []string) ([]domain.Video, error)
	// AggregateSentiment returns comment sentiment per id. Ids without comments are absent.
	AggregateSentiment(ctx context.Context, ids []string) (map[string]domain.Sentiment, error)
	// ListCorpus returns every video in the store.
	ListCorpus(ctx context.Context) ([]domain.Video, error)
}
