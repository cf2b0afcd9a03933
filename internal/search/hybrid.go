package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

const (
	lexicalFusionWeight  = 0.4
	externalFusionWeight = 0.6
)

// RankedList is one input of a rank fusion.
type RankedList struct {
	Weight float64
	Hits   []Hit
}

// Fuse scores every hit as weight*(1-i/N) for position i in a list of N, sums
// the scores per video id and sorts by the sum, then by id.
func Fuse(lists ...RankedList) []Hit {
	scores := make(map[string]float64)
	videos := make(map[string]domain.Video)
	for _, l := range lists {
		n := float64(len(l.Hits))
		for i, h := range l.Hits {
			scores[h.Video.ID] += l.Weight * (1 - float64(i)/n)
			if _, ok := videos[h.Video.ID]; !ok {
				videos[h.Video.ID] = h.Video
			}
		}
	}

	fused := make([]Hit, 0, len(scores))
	for id, score := range scores {
		fused = append(fused, Hit{Video: videos[id], Score: score})
	}
	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		return fused[i].Video.ID < fused[j].Video.ID
	})
	for i := range fused {
		fused[i].Rank = i + 1
	}
	return fused
}

// HybridFusion runs the lexical and external strategies concurrently for twice
// the limit and fuses their rankings. A failure of either side fails the whole call.
type HybridFusion struct {
	lexical  Strategy
	external Strategy
}

func NewHybridFusion(lexical, external Strategy) *HybridFusion {
	return &HybridFusion{lexical: lexical, external: external}
}

func (s *HybridFusion) Algorithm() Algorithm {
	return Hybrid
}

func (s *HybridFusion) Execute(ctx context.Context, q Query) (*Result, error) {
	var lexical, external *Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.lexical.Execute(gctx, q.Widen())
		if err != nil {
			return fmt.Errorf("lexical sub-query: %w", err)
		}
		lexical = res
		return nil
	})
	g.Go(func() error {
		res, err := s.external.Execute(gctx, q.Widen())
		if err != nil {
			return fmt.Errorf("external sub-query: %w", err)
		}
		external = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.NewStrategy(string(Hybrid), kindOf(err), err)
	}

	fused := Fuse(
		RankedList{Weight: lexicalFusionWeight, Hits: lexical.Hits},
		RankedList{Weight: externalFusionWeight, Hits: external.Hits},
	)

	hits := paginate(fused, 0, q.Limit)
	for i := range hits {
		hits[i].Rank = q.Offset + i + 1
	}
	return &Result{Hits: hits, Total: len(fused)}, nil
}
