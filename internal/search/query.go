package search

import "github.com/DjordjeVuckovic/video-hunter/internal/domain"

type Query struct {
	Text   string
	Limit  int
	Offset int
}

// Widen returns the same query asking for twice as many results.
func (q Query) Widen() Query {
	q.Limit *= 2
	return q
}

type Hit struct {
	Video domain.Video
	// Score is only comparable within one algorithm.
	Score float64
	// Rank is the 1-based position across all pages.
	Rank int
}

type Result struct {
	Hits  []Hit
	Total int
}

func (r *Result) Videos() []domain.Video {
	videos := make([]domain.Video, len(r.Hits))
	for i, h := range r.Hits {
		videos[i] = h.Video
	}
	return videos
}

func newResult(scored []domain.ScoredVideo, total, offset int) *Result {
	hits := make([]Hit, len(scored))
	for i, s := range scored {
		hits[i] = Hit{Video: s.Video, Score: s.Score, Rank: offset + i + 1}
	}
	return &Result{Hits: hits, Total: total}
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
