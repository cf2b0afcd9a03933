package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/tfidf"
)

type CorpusLoader func(ctx context.Context) ([]domain.Video, error)

// CorpusIndex holds a fitted TF-IDF model over a video corpus and rebuilds it
// once it is older than the refresh interval. A zero interval rebuilds on every call.
type CorpusIndex struct {
	name     string
	load     CorpusLoader
	document func(domain.Video) string
	refresh  time.Duration
	empty    error
	now      func() time.Time

	mu       sync.Mutex
	snapshot *corpusSnapshot
	builtAt  time.Time
}

type corpusSnapshot struct {
	videos []domain.Video
	model  *tfidf.Model
}

type CorpusOption func(*CorpusIndex)

// WithRefreshInterval sets how long a fitted model is reused.
func WithRefreshInterval(d time.Duration) CorpusOption {
	return func(c *CorpusIndex) { c.refresh = d }
}

// WithDocument changes which video text is vectorized.
func WithDocument(fn func(domain.Video) string) CorpusOption {
	return func(c *CorpusIndex) { c.document = fn }
}

// WithEmptyError sets the error reported when the loader returns no videos.
func WithEmptyError(err error) CorpusOption {
	return func(c *CorpusIndex) { c.empty = err }
}

func withClock(now func() time.Time) CorpusOption {
	return func(c *CorpusIndex) { c.now = now }
}

func NewCorpusIndex(name string, load CorpusLoader, opts ...CorpusOption) *CorpusIndex {
	c := &CorpusIndex{
		name:     name,
		load:     load,
		document: domain.Video.Document,
		empty:    ErrEmptyCorpus,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CorpusIndex) current(ctx context.Context) (*corpusSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.refresh > 0 && c.now().Sub(c.builtAt) < c.refresh {
		return c.snapshot, nil
	}

	videos, err := c.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s corpus: %w", c.name, err)
	}
	if len(videos) == 0 {
		return nil, c.empty
	}

	docs := make([]string, len(videos))
	for i, v := range videos {
		docs[i] = c.document(v)
	}
	model, err := tfidf.Fit(docs)
	if err != nil {
		return nil, err
	}

	slog.Debug("Rebuilt corpus index", "corpus", c.name, "documents", model.Len(), "terms", model.VocabularySize())

	c.snapshot = &corpusSnapshot{videos: videos, model: model}
	c.builtAt = c.now()
	return c.snapshot, nil
}

// Rank returns one page of videos scoring above threshold and the number of such videos.
func (c *CorpusIndex) Rank(ctx context.Context, q Query, threshold float64) (*Result, error) {
	snap, err := c.current(ctx)
	if err != nil {
		return nil, err
	}

	matches := snap.model.Rank(q.Text, threshold)
	page := paginate(matches, q.Offset, q.Limit)

	hits := make([]Hit, len(page))
	for i, m := range page {
		hits[i] = Hit{Video: snap.videos[m.Index], Score: m.Score, Rank: q.Offset + i + 1}
	}
	return &Result{Hits: hits, Total: len(matches)}, nil
}

// Invalidate drops the fitted model so the next call rebuilds it.
func (c *CorpusIndex) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

func corpusErrorKind(err error) apperr.Kind {
	switch {
	case errors.Is(err, ErrEmptyCorpus), errors.Is(err, ErrNoEmbeddings):
		return apperr.KindDataAbsent
	case errors.Is(err, tfidf.ErrEmptyVocabulary):
		return apperr.KindComputationFailure
	default:
		return apperr.KindCollaboratorUnavailable
	}
}
