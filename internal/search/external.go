package search

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// ExternalIndex delegates relevance to the full-text index and hydrates the
// ranked ids from the video store in index order. Total is the index's total.
type ExternalIndex struct {
	index  storage.FullTextIndex
	videos storage.VideoStore
	boosts domain.FieldWeights
}

func NewExternalIndex(index storage.FullTextIndex, videos storage.VideoStore) *ExternalIndex {
	return &ExternalIndex{index: index, videos: videos, boosts: domain.DefaultFieldWeights}
}

func (s *ExternalIndex) Algorithm() Algorithm {
	return BM25
}

func (s *ExternalIndex) Execute(ctx context.Context, q Query) (*Result, error) {
	if s.index == nil {
		return nil, apperr.NewStrategy(string(BM25), apperr.KindCollaboratorUnavailable, ErrIndexNotConfigured)
	}

	ranked, err := s.index.RankedQuery(ctx, storage.RankedQuery{
		Text:   q.Text,
		Boosts: s.boosts,
		Fuzzy:  true,
		Offset: q.Offset,
		Size:   q.Limit,
	})
	if err != nil {
		return nil, apperr.NewStrategy(string(BM25), apperr.KindCollaboratorUnavailable, err)
	}
	if len(ranked.IDs) == 0 {
		return &Result{}, nil
	}

	videos, err := s.videos.HydrateByIDs(ctx, ranked.IDs)
	if err != nil {
		return nil, apperr.NewStrategy(string(BM25), apperr.KindCollaboratorUnavailable, err)
	}

	return &Result{Hits: inIndexOrder(ranked, videos, q.Offset), Total: ranked.Total}, nil
}

// inIndexOrder reassembles hydrated videos in the order the index ranked them.
// Ids the store no longer knows are skipped.
func inIndexOrder(ranked *storage.RankedIDs, videos []domain.Video, offset int) []Hit {
	byID := make(map[string]domain.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	hits := make([]Hit, 0, len(ranked.IDs))
	for i, id := range ranked.IDs {
		v, ok := byID[id]
		if !ok {
			continue
		}
		var score float64
		if i < len(ranked.Scores) {
			score = ranked.Scores[i]
		}
		hits = append(hits, Hit{Video: v, Score: score, Rank: offset + len(hits) + 1})
	}
	return hits
}
