package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

type EmbeddingStore struct {
	db *pgxpool.Pool
}

func NewEmbeddingStore(pool *ConnectionPool) *EmbeddingStore {
	return &EmbeddingStore{db: pool.GetConn()}
}

func (s *EmbeddingStore) ListWithEmbedding(ctx context.Context, embeddingType string) ([]domain.Video, error) {
	rows, err := s.db.Query(ctx, `SELECT `+videoColumns+videoFrom+`
		JOIN yt2.embeddings e ON e.video_id = v.id
		WHERE e.embedding_type = $1
		ORDER BY v.id`, embeddingType)
	if err != nil {
		return nil, fmt.Errorf("list embedded videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := scanVideo(rows, &v); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *EmbeddingStore) CountWithEmbedding(ctx context.Context, embeddingType string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM yt2.embeddings WHERE embedding_type = $1`, embeddingType).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count embeddings: %w", err)
	}
	return n, nil
}

// NearestByVector ranks by cosine similarity, computed as 1 minus the pgvector cosine distance.
func (s *EmbeddingStore) NearestByVector(ctx context.Context, q storage.VectorQuery) ([]domain.ScoredVideo, int, error) {
	vec := pgvector.NewVector(q.Vector)

	var total int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM yt2.embeddings e
		WHERE e.embedding_type = $2
		  AND 1 - (e.embedding_vector <=> $1) > $3`,
		vec, q.EmbeddingType, q.MinSimilarity,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count nearest videos: %w", err)
	}
	if total == 0 {
		return []domain.ScoredVideo{}, 0, nil
	}

	rows, err := s.db.Query(ctx, `SELECT `+videoColumns+`,
			1 - (e.embedding_vector <=> $1) AS similarity`+videoFrom+`
		JOIN yt2.embeddings e ON e.video_id = v.id
		WHERE e.embedding_type = $2
		  AND 1 - (e.embedding_vector <=> $1) > $3
		ORDER BY e.embedding_vector <=> $1, v.video_yid
		LIMIT $4 OFFSET $5`,
		vec, q.EmbeddingType, q.MinSimilarity, q.Limit, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("nearest videos: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.ScoredVideo, 0, q.Limit)
	for rows.Next() {
		var sv domain.ScoredVideo
		if err := scanVideo(rows, &sv.Video, &sv.Score); err != nil {
			return nil, 0, err
		}
		slog.Debug("Vector search hit", "video_id", sv.ID, "similarity", sv.Score)
		videos = append(videos, sv)
	}
	return videos, total, rows.Err()
}
