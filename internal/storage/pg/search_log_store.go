package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

type SearchLogStore struct {
	db *pgxpool.Pool
}

func NewSearchLogStore(pool *ConnectionPool) *SearchLogStore {
	return &SearchLogStore{db: pool.GetConn()}
}

func (s *SearchLogStore) LogSearch(ctx context.Context, entry domain.SearchLog) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO yt2.search_logs (id, query, results_count, response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Query, entry.ResultsCount, entry.ResponseTimeMs, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}
	return nil
}
