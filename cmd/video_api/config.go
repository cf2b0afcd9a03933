package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/video-hunter/internal/embedding"
	"github.com/DjordjeVuckovic/video-hunter/internal/search"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/video-hunter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type VideoApiConfig struct {
	StorageConfig   factory.StorageConfig
	CacheConfig     factory.CacheConfig
	EmbeddingConfig embedding.Config
	LexicalRefresh  time.Duration
	SearchTimeout   time.Duration
}

func (as *AppConfig) Load() (*VideoApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/video_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	cacheCfg, err := factory.LoadCacheEnv()
	if err != nil {
		slog.Error("Failed to load cache configuration from environment", "error", err)
		return nil, err
	}

	embeddingCfg, err := embedding.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load embedding configuration from environment", "error", err)
		return nil, err
	}

	refresh, err := env.Duration("LEXICAL_REFRESH_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}

	timeout, err := env.Duration("SEARCH_TIMEOUT", search.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	return &VideoApiConfig{
		StorageConfig:   *storageCfg,
		CacheConfig:     *cacheCfg,
		EmbeddingConfig: *embeddingCfg,
		LexicalRefresh:  refresh,
		SearchTimeout:   timeout,
	}, nil
}
