package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage/factory"
)

const defaultBatchSize = 500

func NewReindexCommand() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Copy every stored video into the full-text index",
		RunE: func(cmd *cobra.Command, args []string) error {
			storageCfg, err := factory.LoadEnv()
			if err != nil {
				return err
			}
			if storageCfg.Es == nil {
				return fmt.Errorf("ES_ADDRESSES is required for reindex")
			}

			backend, err := factory.NewBackend(cmd.Context(), storageCfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			indexer, err := es.NewIndexer(cmd.Context(), *storageCfg.Es)
			if err != nil {
				return err
			}

			n, err := Reindex(cmd.Context(), backend.Videos, indexer, batchSize)
			if err != nil {
				return err
			}
			if err := indexer.Refresh(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d videos\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", defaultBatchSize, "Videos per bulk request")

	return cmd
}

// Reindex streams the corpus into the indexer in batches and returns the number of videos sent.
func Reindex(ctx context.Context, videos storage.VideoStore, indexer storage.VideoIndexer, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if err := indexer.EnsureIndex(ctx); err != nil {
		return 0, err
	}

	corpus, err := videos.ListCorpus(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list videos: %w", err)
	}

	for start := 0; start < len(corpus); start += batchSize {
		end := min(start+batchSize, len(corpus))
		if err := indexer.IndexBulk(ctx, corpus[start:end]); err != nil {
			return start, fmt.Errorf("failed to index batch %d-%d: %w", start, end, err)
		}
		slog.Info("Indexed batch", "from", start, "to", end, "total", len(corpus))
	}

	return len(corpus), nil
}

var _ storage.VideoIndexer = (*es.Indexer)(nil)
