package search

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// LexicalSimilarity ranks the whole corpus by TF-IDF cosine similarity to the
// query. Only videos with a positive similarity are counted.
type LexicalSimilarity struct {
	corpus *CorpusIndex
}

func NewLexicalSimilarity(videos storage.VideoStore, opts ...CorpusOption) *LexicalSimilarity {
	return &LexicalSimilarity{corpus: NewCorpusIndex(string(TFIDF), videos.ListCorpus, opts...)}
}

func (s *LexicalSimilarity) Algorithm() Algorithm {
	return TFIDF
}

func (s *LexicalSimilarity) Execute(ctx context.Context, q Query) (*Result, error) {
	res, err := s.corpus.Rank(ctx, q, 0)
	if err != nil {
		return nil, apperr.NewStrategy(string(TFIDF), corpusErrorKind(err), err)
	}
	return res, nil
}

// Corpus exposes the underlying index so callers can invalidate it.
func (s *LexicalSimilarity) Corpus() *CorpusIndex {
	return s.corpus
}
