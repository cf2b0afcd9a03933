package search

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// WeightedField uses the exact match predicate but orders by the sum of the
// weights of the matching fields, newest first on ties.
type WeightedField struct {
	videos  storage.VideoStore
	weights domain.FieldWeights
}

func NewWeightedField(videos storage.VideoStore) *WeightedField {
	return &WeightedField{videos: videos, weights: domain.DefaultFieldWeights}
}

func (s *WeightedField) Algorithm() Algorithm {
	return Weighted
}

func (s *WeightedField) Execute(ctx context.Context, q Query) (*Result, error) {
	weights := s.weights
	videos, err := s.videos.SearchByPredicate(ctx, storage.MatchQuery{
		Term:    q.Text,
		Weights: &weights,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		return nil, apperr.NewStrategy(string(Weighted), apperr.KindCollaboratorUnavailable, err)
	}

	total, err := s.videos.CountByPredicate(ctx, q.Text)
	if err != nil {
		return nil, apperr.NewStrategy(string(Weighted), apperr.KindCollaboratorUnavailable, err)
	}

	return newResult(videos, total, q.Offset), nil
}
