package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// VideoIndex answers boosted multi_match queries over the videos index.
type VideoIndex struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewVideoIndex(config ClientConfig) (*VideoIndex, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &VideoIndex{
		client:    client,
		indexName: config.indexName(),
	}, nil
}

func (r *VideoIndex) RankedQuery(ctx context.Context, q storage.RankedQuery) (*storage.RankedIDs, error) {
	multiMatch := &types.MultiMatchQuery{
		Query:  q.Text,
		Fields: boostedFields(q.Boosts),
	}
	if q.Fuzzy {
		multiMatch.Fuzziness = "AUTO"
	}

	slog.Debug("Elasticsearch multi_match query",
		"query", q.Text,
		"fields", multiMatch.Fields,
		"fuzzy", q.Fuzzy,
		"from", q.Offset,
		"size", q.Size)

	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			MultiMatch: multiMatch,
		}).
		From(q.Offset).
		Size(q.Size).
		TrackScores(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"_score": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"published_at": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "query", q.Text)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	out := &storage.RankedIDs{
		IDs:    make([]string, 0, len(res.Hits.Hits)),
		Scores: make([]float64, 0, len(res.Hits.Hits)),
	}
	if res.Hits.Total != nil {
		out.Total = int(res.Hits.Total.Value)
	}

	for _, hit := range res.Hits.Hits {
		var doc struct {
			VideoID string `json:"video_id"`
		}
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		var score float64
		if hit.Score_ != nil {
			score = float64(*hit.Score_)
		}
		out.IDs = append(out.IDs, doc.VideoID)
		out.Scores = append(out.Scores, score)
	}

	slog.Info("Es search results fetched",
		"total_matches", out.Total,
		"returned_count", len(out.IDs))

	return out, nil
}

// Healthy pings the cluster.
func (r *VideoIndex) Healthy(ctx context.Context) bool {
	ok, err := r.client.Ping().Do(ctx)
	return err == nil && ok
}

func boostedFields(w domain.FieldWeights) []string {
	return []string{
		fmt.Sprintf("title^%.1f", w.Title),
		fmt.Sprintf("description^%.1f", w.Description),
		fmt.Sprintf("tags^%.1f", w.Tags),
	}
}
