package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
)

// Router maps every algorithm to a strategy and falls back to exact match on any failure.
type Router struct {
	strategies map[Algorithm]Strategy
	fallback   Strategy
}

type RouterOption func(*routerOptions)

type routerOptions struct {
	refresh time.Duration
}

// WithLexicalRefresh sets how long fitted TF-IDF models are reused. Zero rebuilds them per query.
func WithLexicalRefresh(d time.Duration) RouterOption {
	return func(o *routerOptions) { o.refresh = d }
}

func NewRouter(c Collaborators, opts ...RouterOption) *Router {
	o := routerOptions{refresh: time.Minute}
	for _, opt := range opts {
		opt(&o)
	}

	exact := NewExactMatch(c.Videos)
	lexical := NewLexicalSimilarity(c.Videos, WithRefreshInterval(o.refresh))
	external := NewExternalIndex(c.Index, c.Videos)
	semantic := NewEmbeddingSimilarity(c.Embeddings, WithRefreshInterval(o.refresh))
	if c.Vectors != nil && c.Embedder != nil {
		semantic.WithVectors(c.Vectors, c.Embedder)
	}

	return NewRouterWith(exact,
		lexical,
		NewWeightedField(c.Videos),
		external,
		NewHybridFusion(lexical, external),
		semantic,
		NewSentimentWeighted(exact, c.Videos),
	)
}

// NewRouterWith builds a router from explicit strategies. The fallback is always used for Basic.
func NewRouterWith(fallback Strategy, strategies ...Strategy) *Router {
	r := &Router{
		strategies: make(map[Algorithm]Strategy, len(strategies)+1),
		fallback:   fallback,
	}
	for _, s := range strategies {
		r.strategies[s.Algorithm()] = s
	}
	r.strategies[Basic] = fallback
	return r
}

// Dispatch resolves algorithmID and runs it. It returns an error only when the fallback fails too.
func (r *Router) Dispatch(ctx context.Context, algorithmID string, q Query) (*Outcome, error) {
	algorithm := ParseAlgorithm(algorithmID)
	s, ok := r.strategies[algorithm]
	if !ok {
		s = r.fallback
	}

	chain := []Strategy{s}
	if s != r.fallback {
		chain = append(chain, r.fallback)
	}

	out, err := TryInOrder(ctx, q, chain...)
	for _, f := range out.Failures {
		slog.Warn("Search strategy failed", "algorithm", algorithm, "kind", kindOf(f).String(), "error", f)
	}
	if err != nil {
		return nil, apperr.NewService("search unavailable", err)
	}

	slog.Info("Search dispatched",
		"requested", algorithmID,
		"algorithm", algorithm,
		"executed", out.Executed,
		"total", out.Result.Total,
	)
	return out, nil
}
