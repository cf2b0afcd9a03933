package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/video-hunter/internal/search"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/video-hunter/pkg/config/env"
)

func NewSearchCommand() *cobra.Command {
	var (
		algorithm string
		limit     int
		page      int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run one query through the search router and print the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storageCfg, err := factory.LoadEnv()
			if err != nil {
				return err
			}
			backend, err := factory.NewBackend(cmd.Context(), storageCfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			timeout, err := env.Duration("SEARCH_TIMEOUT", search.DefaultTimeout)
			if err != nil {
				return err
			}
			opts := []search.ServiceOption{
				search.WithSearchLog(backend.SearchLog),
				search.WithTimeout(timeout),
			}

			if !noCache {
				cacheCfg, err := factory.LoadCacheEnv()
				if err != nil {
					return err
				}
				responseCache, _, closeCache, err := factory.NewCache(cmd.Context(), cacheCfg)
				if err != nil {
					slog.Warn("Response cache unavailable, running uncached", "error", err)
				} else {
					defer closeCache()
					if responseCache != nil {
						opts = append(opts, search.WithCache(responseCache, cacheCfg.TTL))
					}
				}
			}

			svc := search.NewService(search.NewRouter(search.Collaborators{
				Videos:     backend.Videos,
				Index:      backend.Index,
				Embeddings: backend.Embeddings,
				Vectors:    backend.Vectors,
			}, search.WithLexicalRefresh(0)), opts...)

			body, err := svc.Search(cmd.Context(), search.Request{
				Text:      args[0],
				Algorithm: algorithm,
				Limit:     limit,
				Page:      page,
			})
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := json.Indent(&out, body, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", string(search.Basic), "Ranking algorithm")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultLimit, "Results per page")
	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the response cache")

	return cmd
}
