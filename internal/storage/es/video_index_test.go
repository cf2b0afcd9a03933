package es

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/video-hunter/pkg/testing"
)

func TestBoostedFields(t *testing.T) {
	assert.Equal(t,
		[]string{"title^3.0", "description^1.0", "tags^2.0"},
		boostedFields(domain.DefaultFieldWeights))
}

func TestIndexBuilder_MapToESDocument(t *testing.T) {
	desc := "밤 산책"
	published := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	doc := NewIndexBuilder().mapToESDocument(domain.Video{
		ID:          "vid-1",
		Title:       "화성행궁 야경",
		Description: &desc,
		ChannelName: "수원여행",
		PublishedAt: &published,
		Statistics:  domain.Statistics{ViewCount: 7},
	})

	assert.Equal(t, "vid-1", doc.VideoID)
	assert.Equal(t, "밤 산책", doc.Description)
	assert.Equal(t, []string{}, doc.Tags)
	assert.Equal(t, "수원여행", doc.ChannelTitle)
	assert.Equal(t, int64(7), doc.Statistics.ViewCount)
}

func TestVideoIndex_RankedQuery(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "videos_test"}
	indexer, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)

	videos := []domain.Video{
		{ID: "title-hit", Title: "palace night walk", PublishedAt: ptrTime(1)},
		{ID: "tag-hit", Title: "evening walk", Tags: []string{"palace"}, PublishedAt: ptrTime(2)},
		{ID: "desc-hit", Title: "city tour", Description: ptrString("we pass the palace"), PublishedAt: ptrTime(3)},
		{ID: "miss", Title: "mountain hike", PublishedAt: ptrTime(4)},
	}
	require.NoError(t, indexer.IndexBulk(ctx, videos))
	require.NoError(t, indexer.Refresh(ctx))
	require.NoError(t, indexer.EnsureIndex(ctx), "ensuring an existing index is a no-op")

	index, err := NewVideoIndex(cfg)
	require.NoError(t, err)
	assert.True(t, index.Healthy(ctx))

	res, err := index.RankedQuery(ctx, storage.RankedQuery{
		Text:   "palace",
		Boosts: domain.DefaultFieldWeights,
		Fuzzy:  true,
		Size:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"title-hit", "tag-hit", "desc-hit"}, res.IDs)
	assert.Len(t, res.Scores, 3)

	typo, err := index.RankedQuery(ctx, storage.RankedQuery{
		Text:   "palase",
		Boosts: domain.DefaultFieldWeights,
		Fuzzy:  true,
		Size:   1,
		Offset: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, typo.Total, "fuzziness tolerates the typo")
	assert.Equal(t, []string{"tag-hit"}, typo.IDs)
}

func ptrTime(day int) *time.Time {
	t := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptrString(s string) *string { return &s }
