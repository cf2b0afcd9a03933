package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

const (
	DefaultCacheTTL = 300 * time.Second
	DefaultTimeout  = 10 * time.Second
)

// Service answers search requests through the router with a cache-aside layer
// and records every resolved search in the search log.
type Service struct {
	router  *Router
	cache   storage.ResponseCache
	logs    storage.SearchLogger
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
}

type ServiceOption func(*Service)

func WithCache(cache storage.ResponseCache, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.cache = cache
		s.ttl = ttl
	}
}

func WithSearchLog(logs storage.SearchLogger) ServiceOption {
	return func(s *Service) { s.logs = logs }
}

// WithTimeout bounds each request. Zero disables the deadline.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.timeout = d }
}

func NewService(router *Router, opts ...ServiceOption) *Service {
	s := &Service{
		router:  router,
		ttl:     DefaultCacheTTL,
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the serialized response envelope. A cached response is returned byte for byte.
func (s *Service) Search(ctx context.Context, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := req.CacheKey()
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Cache lookup failed", "key", key, "error", err)
		} else if ok {
			slog.Debug("Serving search from cache", "query", req.Text, "algorithm", req.Algorithm)
			return cached, nil
		}
	}

	start := s.now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.router.Dispatch(ctx, req.Algorithm, req.query())
	if err != nil {
		return nil, err
	}
	elapsed := s.now().Sub(start)

	resp := newResponse(req.Text, req.Limit, out.Result, elapsed.Seconds())
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode search response: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
			slog.Warn("Cache store failed", "key", key, "error", err)
		}
	}
	s.logSearch(ctx, req.Text, len(resp.Videos), elapsed)

	return body, nil
}

func (s *Service) logSearch(ctx context.Context, text string, results int, elapsed time.Duration) {
	if s.logs == nil {
		return
	}
	entry := domain.SearchLog{
		ID:             uuid.New(),
		Query:          text,
		ResultsCount:   results,
		ResponseTimeMs: elapsed.Milliseconds(),
		CreatedAt:      s.now(),
	}
	if err := s.logs.LogSearch(ctx, entry); err != nil {
		slog.Warn("Search log write failed", "query", text, "error", err)
	}
}
