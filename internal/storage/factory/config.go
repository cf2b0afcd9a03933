package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/cache"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/pg"
)

const DefaultCacheTTL = 300 * time.Second

type StorageConfig struct {
	storage.Type
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
	SeedFile string
}

type CacheConfig struct {
	Type  storage.CacheType
	Redis *cache.RedisConfig
	TTL   time.Duration
	Size  int
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}

	if addrs := splitList(os.Getenv("ES_ADDRESSES")); len(addrs) > 0 {
		cfg.Es = &es.ClientConfig{
			Addresses: addrs,
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	} else {
		slog.Warn("ES_ADDRESSES is not set, full-text index strategies will fall back")
	}

	switch storageType {
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", v)
			}
			cfg.Pg.MaxConns = int32(n)
		}
	case storage.InMem:
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	return cfg, nil
}

func LoadCacheEnv() (*CacheConfig, error) {
	cacheType := storage.CacheType(os.Getenv("CACHE_TYPE"))
	if cacheType == "" {
		cacheType = storage.CacheRedis
	}

	cfg := &CacheConfig{Type: cacheType, TTL: DefaultCacheTTL}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL value: %s", v)
		}
		cfg.TTL = ttl
	}

	switch cacheType {
	case storage.CacheRedis:
		redisCfg := &cache.RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		}
		if redisCfg.Addr == "" {
			redisCfg.Addr = "localhost:6379"
		}
		if v := os.Getenv("REDIS_DB"); v != "" {
			db, err := strconv.Atoi(v)
			if err != nil || db < 0 {
				return nil, fmt.Errorf("invalid REDIS_DB value: %s", v)
			}
			redisCfg.DB = db
		}
		cfg.Redis = redisCfg
	case storage.CacheMemory:
		if v := os.Getenv("CACHE_SIZE"); v != "" {
			size, err := strconv.Atoi(v)
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("invalid CACHE_SIZE value: %s", v)
			}
			cfg.Size = size
		}
	case storage.CacheNone:
	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedCache), cacheType)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
