package search

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// ExactMatch returns videos containing the query text in title, description or
// any tag, newest first. It is the fallback for every other strategy.
type ExactMatch struct {
	videos storage.VideoStore
}

func NewExactMatch(videos storage.VideoStore) *ExactMatch {
	return &ExactMatch{videos: videos}
}

func (s *ExactMatch) Algorithm() Algorithm {
	return Basic
}

func (s *ExactMatch) Execute(ctx context.Context, q Query) (*Result, error) {
	videos, err := s.videos.SearchByPredicate(ctx, storage.MatchQuery{
		Term:   q.Text,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, apperr.NewStrategy(string(Basic), apperr.KindCollaboratorUnavailable, err)
	}

	// Counted separately from the page query, so the two may diverge under concurrent writes.
	total, err := s.videos.CountByPredicate(ctx, q.Text)
	if err != nil {
		return nil, apperr.NewStrategy(string(Basic), apperr.KindCollaboratorUnavailable, err)
	}

	return newResult(videos, total, q.Offset), nil
}
