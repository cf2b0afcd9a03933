package search

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

func TestCorpusIndex_Refresh(t *testing.T) {
	var loads atomic.Int32
	corpus := []domain.Video{{ID: "a", Title: "palace night"}, {ID: "b", Title: "market food"}}
	load := func(context.Context) ([]domain.Video, error) {
		loads.Add(1)
		return corpus, nil
	}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	idx := NewCorpusIndex("test", load, WithRefreshInterval(time.Minute), withClock(func() time.Time { return now }))
	q := Query{Text: "palace", Limit: 10}

	_, err := idx.Rank(context.Background(), q, 0)
	require.NoError(t, err)
	_, err = idx.Rank(context.Background(), q, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), loads.Load(), "model is reused within the interval")

	now = now.Add(2 * time.Minute)
	corpus = append(corpus, domain.Video{ID: "c", Title: "palace gate"})
	res, err := idx.Rank(context.Background(), q, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
	assert.Equal(t, 2, res.Total)

	idx.Invalidate()
	_, err = idx.Rank(context.Background(), q, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), loads.Load())
}

func TestCorpusIndex_ZeroIntervalRebuildsEveryCall(t *testing.T) {
	var loads atomic.Int32
	idx := NewCorpusIndex("test", func(context.Context) ([]domain.Video, error) {
		loads.Add(1)
		return []domain.Video{{ID: "a", Title: "palace"}}, nil
	})

	for i := 0; i < 3; i++ {
		_, err := idx.Rank(context.Background(), Query{Text: "palace", Limit: 1}, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), loads.Load())
}
