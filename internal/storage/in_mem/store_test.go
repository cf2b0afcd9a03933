package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

func ptr[T any](v T) *T { return &v }

func at(day int) *time.Time {
	t := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func seed(t *testing.T, videos ...domain.Video) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.SaveBulk(context.Background(), videos))
	return s
}

func TestStore_SearchByPredicate(t *testing.T) {
	s := seed(t,
		domain.Video{ID: "a", Title: "Palace at night", PublishedAt: at(1)},
		domain.Video{ID: "b", Title: "Market", Description: ptr("the PALACE gate"), PublishedAt: at(3)},
		domain.Video{ID: "c", Title: "Food", Tags: []string{"palace"}, PublishedAt: at(2)},
		domain.Video{ID: "d", Title: "Unrelated"},
	)
	ctx := context.Background()

	got, err := s.SearchByPredicate(ctx, storage.MatchQuery{Term: "palace", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))

	page, err := s.SearchByPredicate(ctx, storage.MatchQuery{Term: "palace", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(page))

	n, err := s.CountByPredicate(ctx, "palace")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	beyond, err := s.SearchByPredicate(ctx, storage.MatchQuery{Term: "palace", Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestStore_SearchByPredicate_Weighted(t *testing.T) {
	w := domain.DefaultFieldWeights
	s := seed(t,
		domain.Video{ID: "desc-old", Title: "x", Description: ptr("palace"), PublishedAt: at(1)},
		domain.Video{ID: "title", Title: "palace", PublishedAt: at(1)},
		domain.Video{ID: "desc-new", Title: "y", Description: ptr("palace"), PublishedAt: at(5)},
		domain.Video{ID: "tag-title", Title: "palace", Tags: []string{"Palace tour"}, PublishedAt: at(2)},
	)

	got, err := s.SearchByPredicate(context.Background(), storage.MatchQuery{Term: "palace", Weights: &w, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"tag-title", "title", "desc-new", "desc-old"}, ids(got))
	assert.Equal(t, []float64{5, 3, 1, 1}, scores(got))
}

func TestStore_AggregateSentiment(t *testing.T) {
	s := seed(t, domain.Video{ID: "a"}, domain.Video{ID: "b"})
	s.AddComments("a", 0.5, -0.1, 0.2)

	got, err := s.AggregateSentiment(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	require.Contains(t, got, "a")
	assert.InDelta(t, 0.2, got["a"].Mean, 1e-9)
	assert.Equal(t, int64(3), got["a"].Count)
	assert.NotContains(t, got, "b")
}

func TestStore_HydrateAndEmbeddings(t *testing.T) {
	s := seed(t, domain.Video{ID: "a"}, domain.Video{ID: "b"}, domain.Video{ID: "c"})
	s.AddEmbedding("c", storage.TitleEmbedding)
	s.AddEmbedding("a", "description")
	ctx := context.Background()

	got, err := s.HydrateByIDs(ctx, []string{"c", "missing", "a"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	withTitle, err := s.ListWithEmbedding(ctx, storage.TitleEmbedding)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, videoIDs(withTitle))

	n, err := s.CountWithEmbedding(ctx, storage.TitleEmbedding)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_CancelledContext(t *testing.T) {
	s := seed(t, domain.Video{ID: "a", Title: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SearchByPredicate(ctx, storage.MatchQuery{Term: "x", Limit: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFixtures(t *testing.T) {
	s, err := LoadFixtures("testdata/videos.yaml")
	require.NoError(t, err)
	ctx := context.Background()

	corpus, err := s.ListCorpus(ctx)
	require.NoError(t, err)
	require.Len(t, corpus, 3)

	first := corpus[0]
	assert.Equal(t, "vid-001", first.ID)
	assert.Equal(t, int64(1200), first.ViewCount)
	assert.Equal(t, []string{"수원", "행궁", "야경"}, first.Tags)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, 2024, first.PublishedAt.Year())
	assert.Contains(t, first.Thumbnails, "default")

	sentiment, err := s.AggregateSentiment(ctx, []string{"vid-001"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), sentiment["vid-001"].Count)

	n, err := s.CountWithEmbedding(ctx, storage.TitleEmbedding)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	matched, err := s.CountByPredicate(ctx, "행궁")
	require.NoError(t, err)
	assert.Equal(t, 2, matched)
}

func ids(videos []domain.ScoredVideo) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func scores(videos []domain.ScoredVideo) []float64 {
	out := make([]float64, len(videos))
	for i, v := range videos {
		out[i] = v.Score
	}
	return out
}

func videoIDs(videos []domain.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}
