package search

import (
	"context"
	"math"
	"sort"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// SentimentWeighted re-ranks exact match candidates by comment sentiment and volume.
type SentimentWeighted struct {
	exact  Strategy
	videos storage.VideoStore
}

func NewSentimentWeighted(exact Strategy, videos storage.VideoStore) *SentimentWeighted {
	return &SentimentWeighted{exact: exact, videos: videos}
}

func (s *SentimentWeighted) Algorithm() Algorithm {
	return Sentiment
}

func (s *SentimentWeighted) Execute(ctx context.Context, q Query) (*Result, error) {
	candidates, err := s.exact.Execute(ctx, q.Widen())
	if err != nil {
		return nil, apperr.NewStrategy(string(Sentiment), kindOf(err), err)
	}
	if len(candidates.Hits) == 0 {
		return &Result{}, nil
	}

	ids := make([]string, len(candidates.Hits))
	for i, h := range candidates.Hits {
		ids[i] = h.Video.ID
	}
	sentiments, err := s.videos.AggregateSentiment(ctx, ids)
	if err != nil {
		return nil, apperr.NewStrategy(string(Sentiment), apperr.KindCollaboratorUnavailable, err)
	}

	n := float64(len(candidates.Hits))
	hits := make([]Hit, len(candidates.Hits))
	for i, h := range candidates.Hits {
		hits[i] = Hit{Video: h.Video, Score: SentimentScore(float64(i)/n, sentiments[h.Video.ID])}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	hits = paginate(hits, 0, q.Limit)
	for i := range hits {
		hits[i].Rank = q.Offset + i + 1
	}
	return &Result{Hits: hits, Total: len(candidates.Hits)}, nil
}

// SentimentScore combines a relative candidate position in [0,1) with the
// positive part of the mean sentiment and a capped comment volume bonus.
func SentimentScore(position float64, s domain.Sentiment) float64 {
	positional := 1 - position
	sentimentBonus := 0.3 * math.Max(0, s.Mean)
	commentBonus := math.Min(0.2, float64(s.Count)/100) * 0.2
	return positional + sentimentBonus + commentBonus
}
