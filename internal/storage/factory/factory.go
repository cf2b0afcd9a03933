package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/cache"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/video-hunter/pkg/server"
)

// Backend groups the stores a search service needs. Index is nil when no
// Elasticsearch cluster is configured.
type Backend struct {
	Videos     storage.VideoStore
	Embeddings storage.EmbeddingStore
	Vectors    storage.VectorSearcher
	Index      storage.FullTextIndex
	SearchLog  storage.SearchLogger
	Health     map[string]server.HealthChecker

	closers []func()
}

func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// NewBackend creates the stores for the configured storage type.
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	b := &Backend{Health: map[string]server.HealthChecker{}}

	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("invalid config for PostgreSQL storage: pool config is missing")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		b.closers = append(b.closers, pool.Close)

		embeddings := pg.NewEmbeddingStore(pool)
		b.Videos = pg.NewVideoStore(pool)
		b.Embeddings = embeddings
		b.Vectors = embeddings
		b.SearchLog = pg.NewSearchLogStore(pool)
		b.Health["database"] = pg.NewHealthChecker(pool)

	case storage.InMem:
		store := in_mem.NewStore()
		if cfg.SeedFile != "" {
			seeded, err := in_mem.LoadFixtures(cfg.SeedFile)
			if err != nil {
				return nil, fmt.Errorf("failed to seed in-memory storage: %w", err)
			}
			store = seeded
		}
		b.Videos = store
		b.Embeddings = store
		b.SearchLog = store
		b.Health["database"] = store

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}

	if cfg.Es != nil {
		index, err := es.NewVideoIndex(*cfg.Es)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch index client: %w", err)
		}
		b.Index = index
		b.Health["search_index"] = index
	}

	slog.Info("Storage backend ready", "type", cfg.Type, "full_text_index", b.Index != nil)
	return b, nil
}

// NewCache returns nil for storage.CacheNone.
func NewCache(ctx context.Context, cfg *CacheConfig) (storage.ResponseCache, server.HealthChecker, func(), error) {
	switch cfg.Type {
	case storage.CacheRedis:
		if cfg.Redis == nil {
			return nil, nil, nil, fmt.Errorf("invalid config for redis cache: redis config is missing")
		}
		c, err := cache.NewRedisCache(ctx, *cfg.Redis)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create redis cache: %w", err)
		}
		return c, c, func() { _ = c.Close() }, nil

	case storage.CacheMemory:
		c, err := cache.NewMemoryCache(cfg.Size)
		if err != nil {
			return nil, nil, nil, err
		}
		return c, c, func() {}, nil

	case storage.CacheNone:
		return nil, nil, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf(string(storage.ErrUnsupportedCache), cfg.Type)
	}
}
