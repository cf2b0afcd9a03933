// Package main Video Hunter API
// @title Video Hunter API
// @version 1.0
// @description Multi-algorithm search over video metadata
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/video-hunter/docs"
	"github.com/DjordjeVuckovic/video-hunter/internal/embedding"
	"github.com/DjordjeVuckovic/video-hunter/internal/router"
	"github.com/DjordjeVuckovic/video-hunter/internal/search"
	"github.com/DjordjeVuckovic/video-hunter/internal/server"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/video-hunter/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/video-hunter/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	healthChecks := map[string]pkgserver.HealthChecker{}

	backend, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
		return
	}
	defer backend.Close()
	for name, hc := range backend.Health {
		healthChecks[name] = hc
	}

	var serviceOpts []search.ServiceOption
	serviceOpts = append(serviceOpts, search.WithSearchLog(backend.SearchLog), search.WithTimeout(cfg.SearchTimeout))

	responseCache, cacheHealth, closeCache, err := factory.NewCache(ctx, &cfg.CacheConfig)
	if err != nil {
		slog.Warn("Response cache unavailable, serving uncached", "error", err)
	} else {
		defer closeCache()
		if responseCache != nil {
			serviceOpts = append(serviceOpts, search.WithCache(responseCache, cfg.CacheConfig.TTL))
			healthChecks["cache"] = cacheHealth
		}
	}

	collaborators := search.Collaborators{
		Videos:     backend.Videos,
		Index:      backend.Index,
		Embeddings: backend.Embeddings,
		Vectors:    backend.Vectors,
	}

	embedder, err := embedding.NewEmbedderFromConfig(&cfg.EmbeddingConfig)
	if err != nil {
		slog.Error("Failed to create embedding client", "error", err)
		os.Exit(1)
		return
	}
	if embedder != nil && backend.Vectors != nil {
		collaborators.Embedder = embedder
		slog.Info("Vector semantic search enabled", "model", embedder.Model())
	} else {
		slog.Info("Vector semantic search disabled, using lexical approximation")
	}

	s := server.New(sCfg, pkgserver.NewCompositeHealthChecker(healthChecks)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Video Hunter API is running")
	})

	svc := search.NewService(
		search.NewRouter(collaborators, search.WithLexicalRefresh(cfg.LexicalRefresh)),
		serviceOpts...,
	)

	searchrouter := router.NewSearchRouter(s.Echo, svc)
	searchrouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
