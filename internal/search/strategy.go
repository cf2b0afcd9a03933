package search

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/video-hunter/internal/embedding"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

var (
	ErrEmptyCorpus        = errors.New("search: corpus is empty")
	ErrNoEmbeddings       = errors.New("search: no videos with embeddings")
	ErrIndexNotConfigured = errors.New("search: full-text index is not configured")
	ErrEmbeddingsDisabled = errors.New("search: embedding store is not configured")
)

// Strategy ranks videos for one query.
type Strategy interface {
	Algorithm() Algorithm
	Execute(ctx context.Context, q Query) (*Result, error)
}

// Collaborators are the services strategies read from. Only Videos is required.
type Collaborators struct {
	Videos     storage.VideoStore
	Index      storage.FullTextIndex
	Embeddings storage.EmbeddingStore
	Vectors    storage.VectorSearcher
	Embedder   QueryEmbedder
}

type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) (*embedding.Vec, error)
}
