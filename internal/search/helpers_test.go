package search_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/embedding"
	"github.com/DjordjeVuckovic/video-hunter/internal/search"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/in_mem"
)

func ptr[T any](v T) *T { return &v }

func day(d int) *time.Time {
	t := time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func newStore(t *testing.T, videos ...domain.Video) *in_mem.Store {
	t.Helper()
	s := in_mem.NewStore()
	require.NoError(t, s.SaveBulk(context.Background(), videos))
	return s
}

func hitIDs(res *search.Result) []string {
	out := make([]string, len(res.Hits))
	for i, h := range res.Hits {
		out[i] = h.Video.ID
	}
	return out
}

// countingStore records every call that reaches the wrapped store.
type countingStore struct {
	inner interface {
		storage.VideoStore
		storage.EmbeddingStore
	}
	calls atomic.Int64
	fail  error
}

func (c *countingStore) hit() error {
	c.calls.Add(1)
	return c.fail
}

func (c *countingStore) SearchByPredicate(ctx context.Context, q storage.MatchQuery) ([]domain.ScoredVideo, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.inner.SearchByPredicate(ctx, q)
}

func (c *countingStore) CountByPredicate(ctx context.Context, term string) (int, error) {
	if err := c.hit(); err != nil {
		return 0, err
	}
	return c.inner.CountByPredicate(ctx, term)
}

func (c *countingStore) HydrateByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.inner.HydrateByIDs(ctx, ids)
}

func (c *countingStore) AggregateSentiment(ctx context.Context, ids []string) (map[string]domain.Sentiment, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.inner.AggregateSentiment(ctx, ids)
}

func (c *countingStore) ListCorpus(ctx context.Context) ([]domain.Video, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.inner.ListCorpus(ctx)
}

func (c *countingStore) ListWithEmbedding(ctx context.Context, embeddingType string) ([]domain.Video, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.inner.ListWithEmbedding(ctx, embeddingType)
}

func (c *countingStore) CountWithEmbedding(ctx context.Context, embeddingType string) (int, error) {
	if err := c.hit(); err != nil {
		return 0, err
	}
	return c.inner.CountWithEmbedding(ctx, embeddingType)
}

// fakeIndex serves a fixed ranking and pages it like a search engine would.
type fakeIndex struct {
	ids   []string
	total int
	err   error
	last  storage.RankedQuery
	calls atomic.Int64
}

func (f *fakeIndex) RankedQuery(_ context.Context, q storage.RankedQuery) (*storage.RankedIDs, error) {
	f.calls.Add(1)
	f.last = q
	if f.err != nil {
		return nil, f.err
	}
	res := &storage.RankedIDs{Total: f.total}
	for i := q.Offset; i < len(f.ids) && i < q.Offset+q.Size; i++ {
		res.IDs = append(res.IDs, f.ids[i])
		res.Scores = append(res.Scores, float64(len(f.ids)-i))
	}
	return res, nil
}

type mapCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	ttls  map[string]time.Duration
	calls atomic.Int64
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.calls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.calls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	m.ttls[key] = ttl
	return nil
}

type fakeVectors struct {
	got   storage.VectorQuery
	hits  []domain.ScoredVideo
	total int
}

func (f *fakeVectors) NearestByVector(_ context.Context, q storage.VectorQuery) ([]domain.ScoredVideo, int, error) {
	f.got = q
	return f.hits, f.total, nil
}

type fakeEmbedder struct {
	vec []float32
}

func (f fakeEmbedder) EmbedQuery(context.Context, string) (*embedding.Vec, error) {
	return &embedding.Vec{Embedding: f.vec, Model: "fake"}, nil
}

// strategyFunc adapts a function to the Strategy interface.
type strategyFunc struct {
	algorithm search.Algorithm
	fn        func(ctx context.Context, q search.Query) (*search.Result, error)
}

func (s strategyFunc) Algorithm() search.Algorithm { return s.algorithm }

func (s strategyFunc) Execute(ctx context.Context, q search.Query) (*search.Result, error) {
	return s.fn(ctx, q)
}
