package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

const semanticThreshold = 0.1

// EmbeddingSimilarity searches only videos that carry a title embedding.
//
// Without a query embedder it scores them with TF-IDF over title and
// description. With one it ranks by cosine similarity of the stored vectors.
// Both modes drop matches at or below a similarity of 0.1.
type EmbeddingSimilarity struct {
	embeddings storage.EmbeddingStore
	corpus     *CorpusIndex

	vectors  storage.VectorSearcher
	embedder QueryEmbedder
}

func NewEmbeddingSimilarity(embeddings storage.EmbeddingStore, opts ...CorpusOption) *EmbeddingSimilarity {
	s := &EmbeddingSimilarity{embeddings: embeddings}
	if embeddings != nil {
		load := func(ctx context.Context) ([]domain.Video, error) {
			return embeddings.ListWithEmbedding(ctx, storage.TitleEmbedding)
		}
		opts = append([]CorpusOption{WithDocument(domain.Video.TitleDocument), WithEmptyError(ErrNoEmbeddings)}, opts...)
		s.corpus = NewCorpusIndex(string(Semantic), load, opts...)
	}
	return s
}

// WithVectors switches the strategy to genuine embedding distance.
func (s *EmbeddingSimilarity) WithVectors(vectors storage.VectorSearcher, embedder QueryEmbedder) *EmbeddingSimilarity {
	s.vectors = vectors
	s.embedder = embedder
	return s
}

func (s *EmbeddingSimilarity) Algorithm() Algorithm {
	return Semantic
}

func (s *EmbeddingSimilarity) Execute(ctx context.Context, q Query) (*Result, error) {
	if s.embeddings == nil {
		return nil, apperr.NewStrategy(string(Semantic), apperr.KindCollaboratorUnavailable, ErrEmbeddingsDisabled)
	}
	if s.vectors != nil && s.embedder != nil {
		return s.executeVector(ctx, q)
	}

	res, err := s.corpus.Rank(ctx, q, semanticThreshold)
	if err != nil {
		if corpusErrorKind(err) == apperr.KindDataAbsent {
			slog.Warn("No title embeddings stored", "query", q.Text)
		}
		return nil, apperr.NewStrategy(string(Semantic), corpusErrorKind(err), err)
	}
	return res, nil
}

func (s *EmbeddingSimilarity) executeVector(ctx context.Context, q Query) (*Result, error) {
	n, err := s.embeddings.CountWithEmbedding(ctx, storage.TitleEmbedding)
	if err != nil {
		return nil, apperr.NewStrategy(string(Semantic), apperr.KindCollaboratorUnavailable, err)
	}
	if n == 0 {
		slog.Warn("No title embeddings stored", "query", q.Text)
		return nil, apperr.NewStrategy(string(Semantic), apperr.KindDataAbsent, ErrNoEmbeddings)
	}

	vec, err := s.embedder.EmbedQuery(ctx, q.Text)
	if err != nil {
		return nil, apperr.NewStrategy(string(Semantic), apperr.KindCollaboratorUnavailable, fmt.Errorf("embed query: %w", err))
	}

	videos, total, err := s.vectors.NearestByVector(ctx, storage.VectorQuery{
		EmbeddingType: storage.TitleEmbedding,
		Vector:        vec.Embedding,
		MinSimilarity: semanticThreshold,
		Limit:         q.Limit,
		Offset:        q.Offset,
	})
	if err != nil {
		return nil, apperr.NewStrategy(string(Semantic), apperr.KindCollaboratorUnavailable, err)
	}

	return newResult(videos, total, q.Offset), nil
}
