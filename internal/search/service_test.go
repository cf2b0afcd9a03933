package search_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/search"
)

func haenggungCorpus() []domain.Video {
	var videos []domain.Video
	for i := 1; i <= 12; i++ {
		videos = append(videos, domain.Video{
			ID:          fmt.Sprintf("hg-%02d", i),
			Title:       fmt.Sprintf("화성행궁 브이로그 %d", i),
			PublishedAt: day(i),
			ChannelName: "수원여행",
		})
	}
	videos = append(videos, domain.Video{ID: "other", Title: "서울 야경", PublishedAt: day(20)})
	return videos
}

func TestService_EndToEndBasic(t *testing.T) {
	store := newStore(t, haenggungCorpus()...)
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: store}), search.WithSearchLog(store))

	body, err := svc.Search(context.Background(), search.Request{Text: "행궁", Algorithm: "basic", Limit: 5, Page: 1})
	require.NoError(t, err)

	var resp search.Response
	require.NoError(t, json.Unmarshal(body, &resp))

	assert.Equal(t, 12, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "행궁", resp.Query)
	require.Len(t, resp.Videos, 5)
	for i, v := range resp.Videos {
		assert.Equal(t, fmt.Sprintf("hg-%02d", 12-i), v.ID)
	}

	logs := store.SearchLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "행궁", logs[0].Query)
	assert.Equal(t, 5, logs[0].ResultsCount)
}

func TestService_CacheIdempotence(t *testing.T) {
	store := &countingStore{inner: newStore(t, haenggungCorpus()...)}
	index := &fakeIndex{ids: []string{"hg-03", "hg-01"}, total: 2}
	cache := newMapCache()
	svc := search.NewService(
		search.NewRouter(search.Collaborators{Videos: store, Embeddings: store, Index: index}),
		search.WithCache(cache, search.DefaultCacheTTL),
	)

	for _, a := range search.Algorithms {
		req := search.Request{Text: "행궁", Algorithm: string(a), Limit: 3, Page: 2}

		first, err := svc.Search(context.Background(), req)
		require.NoError(t, err)

		storeCalls, indexCalls := store.calls.Load(), index.calls.Load()
		second, err := svc.Search(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first, second, "algorithm %s", a)
		assert.Equal(t, storeCalls, store.calls.Load(), "algorithm %s hit the store on a cached request", a)
		assert.Equal(t, indexCalls, index.calls.Load(), "algorithm %s hit the index on a cached request", a)
	}

	assert.Equal(t, search.DefaultCacheTTL, cache.ttls["search:행궁:3:2:basic"])
}

func TestService_Pagination(t *testing.T) {
	store := newStore(t, haenggungCorpus()...)
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: store}))

	decode := func(req search.Request) search.Response {
		body, err := svc.Search(context.Background(), req)
		require.NoError(t, err)
		var resp search.Response
		require.NoError(t, json.Unmarshal(body, &resp))
		return resp
	}

	last := decode(search.Request{Text: "행궁", Algorithm: "basic", Limit: 5, Page: 3})
	require.Len(t, last.Videos, 2)
	assert.Equal(t, "hg-02", last.Videos[0].ID)

	byOffset := decode(search.Request{Text: "행궁", Algorithm: "basic", Limit: 5, Offset: 10})
	assert.Equal(t, last.Videos, byOffset.Videos)

	empty := decode(search.Request{Text: "없는검색어", Algorithm: "basic", Limit: 5, Page: 1})
	assert.NotNil(t, empty.Videos)
	assert.Empty(t, empty.Videos)
	assert.Zero(t, empty.TotalPages)
}

func TestService_Validation(t *testing.T) {
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: newStore(t)}))

	for _, req := range []search.Request{
		{Text: " ", Limit: 10},
		{Text: "q", Limit: 0},
		{Text: "q", Limit: 101},
		{Text: "q", Limit: 10, Page: -1},
		{Text: "q", Limit: 10, Offset: -5},
	} {
		_, err := svc.Search(context.Background(), req)
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve, "request %+v", req)
	}
}

func TestService_FatalFailureIsNotCached(t *testing.T) {
	store := &countingStore{inner: newStore(t), fail: fmt.Errorf("connection reset")}
	cache := newMapCache()
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: store}), search.WithCache(cache, time.Minute))

	_, err := svc.Search(context.Background(), search.Request{Text: "q", Algorithm: "basic", Limit: 10, Page: 1})

	var se *apperr.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, cache.data)
}

func TestRequest_CacheKeyAndOffset(t *testing.T) {
	tests := []struct {
		req    search.Request
		key    string
		offset int
	}{
		{req: search.Request{Text: "행궁", Limit: 5, Page: 1, Algorithm: "basic"}, key: "search:행궁:5:1:basic", offset: 0},
		{req: search.Request{Text: "행궁", Limit: 5, Page: 3, Algorithm: "tfidf"}, key: "search:행궁:5:3:tfidf", offset: 10},
		{req: search.Request{Text: "q", Limit: 10, Offset: 7, Algorithm: "bm25"}, key: "search:q:10:o7:bm25", offset: 7},
		{req: search.Request{Text: "q", Limit: 10, Page: 2, Offset: 7, Algorithm: "x"}, key: "search:q:10:2:basic", offset: 10},
		{req: search.Request{Text: "q", Limit: 10, Page: 1, Algorithm: " BM25 "}, key: "search:q:10:1:bm25", offset: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.req.CacheKey())
		assert.Equal(t, tt.offset, tt.req.EffectiveOffset())
	}
}

func TestService_CacheKeysDoNotCollide(t *testing.T) {
	store := newStore(t,
		domain.Video{ID: "plain", Title: "x marks", PublishedAt: day(1)},
		domain.Video{ID: "colon", Title: "x:5:1:basic clip", PublishedAt: day(2)},
	)
	cache := newMapCache()
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: store}), search.WithCache(cache, search.DefaultCacheTTL))

	first := search.Request{Text: "x", Limit: 5, Page: 1, Algorithm: "basic:10:1:basic"}
	second := search.Request{Text: "x:5:1:basic", Limit: 10, Page: 1, Algorithm: "basic"}
	require.NotEqual(t, first.CacheKey(), second.CacheKey())

	_, err := svc.Search(context.Background(), first)
	require.NoError(t, err)

	body, err := svc.Search(context.Background(), second)
	require.NoError(t, err)

	var resp search.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "x:5:1:basic", resp.Query)
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Videos, 1)
	assert.Equal(t, "colon", resp.Videos[0].ID)
}

func TestService_UnknownAlgorithmSharesBasicEntry(t *testing.T) {
	store := &countingStore{inner: newStore(t, haenggungCorpus()...)}
	svc := search.NewService(search.NewRouter(search.Collaborators{Videos: store}), search.WithCache(newMapCache(), search.DefaultCacheTTL))

	basic, err := svc.Search(context.Background(), search.Request{Text: "행궁", Algorithm: "basic", Limit: 3, Page: 1})
	require.NoError(t, err)

	calls := store.calls.Load()
	unknown, err := svc.Search(context.Background(), search.Request{Text: "행궁", Algorithm: "quantum", Limit: 3, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, basic, unknown)
	assert.Equal(t, calls, store.calls.Load())
}
