package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

// Store keeps the corpus in memory and evaluates the same match predicate as PostgreSQL.
type Store struct {
	storageLock sync.RWMutex
	order       []string
	videos      map[string]domain.Video
	comments    map[string][]float64
	embeddings  map[string]map[string]struct{}
	logs        []domain.SearchLog
}

func NewStore() *Store {
	return &Store{
		videos:     make(map[string]domain.Video),
		comments:   make(map[string][]float64),
		embeddings: make(map[string]map[string]struct{}),
	}
}

func (s *Store) SaveBulk(_ context.Context, videos []domain.Video) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, v := range videos {
		if _, ok := s.videos[v.ID]; !ok {
			s.order = append(s.order, v.ID)
		}
		s.videos[v.ID] = v
	}
	slog.Debug("Saved videos to in-memory storage", "count", len(videos))

	return nil
}

// AddComments appends comment sentiment scores for a video.
func (s *Store) AddComments(id string, sentiments ...float64) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.comments[id] = append(s.comments[id], sentiments...)
}

// AddEmbedding marks a video as carrying an embedding of the given type.
func (s *Store) AddEmbedding(id, embeddingType string) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	if s.embeddings[id] == nil {
		s.embeddings[id] = make(map[string]struct{})
	}
	s.embeddings[id][embeddingType] = struct{}{}
}

func (s *Store) SearchByPredicate(ctx context.Context, q storage.MatchQuery) ([]domain.ScoredVideo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	var matches []domain.ScoredVideo
	for _, id := range s.order {
		v := s.videos[id]
		m := v.MatchTerm(q.Term)
		if !m.Any() {
			continue
		}
		sv := domain.ScoredVideo{Video: v}
		if q.Weights != nil {
			sv.Score = q.Weights.Score(m)
		}
		matches = append(matches, sv)
	}
	s.storageLock.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.PublishedBefore(b.Video) || b.PublishedBefore(a.Video) {
			return a.PublishedBefore(b.Video)
		}
		return a.ID < b.ID
	})

	if q.Offset >= len(matches) {
		return []domain.ScoredVideo{}, nil
	}
	end := len(matches)
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return matches[q.Offset:end], nil
}

func (s *Store) CountByPredicate(ctx context.Context, term string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	n := 0
	for _, v := range s.videos {
		if v.MatchTerm(term).Any() {
			n++
		}
	}
	return n, nil
}

func (s *Store) HydrateByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	videos := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.videos[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (s *Store) AggregateSentiment(ctx context.Context, ids []string) (map[string]domain.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make(map[string]domain.Sentiment, len(ids))
	for _, id := range ids {
		scores := s.comments[id]
		if len(scores) == 0 {
			continue
		}
		var sum float64
		for _, sc := range scores {
			sum += sc
		}
		out[id] = domain.Sentiment{Mean: sum / float64(len(scores)), Count: int64(len(scores))}
	}
	return out, nil
}

func (s *Store) ListCorpus(ctx context.Context) ([]domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	videos := make([]domain.Video, 0, len(s.order))
	for _, id := range s.order {
		videos = append(videos, s.videos[id])
	}
	return videos, nil
}

func (s *Store) ListWithEmbedding(ctx context.Context, embeddingType string) ([]domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var videos []domain.Video
	for _, id := range s.order {
		if _, ok := s.embeddings[id][embeddingType]; ok {
			videos = append(videos, s.videos[id])
		}
	}
	return videos, nil
}

func (s *Store) CountWithEmbedding(ctx context.Context, embeddingType string) (int, error) {
	videos, err := s.ListWithEmbedding(ctx, embeddingType)
	return len(videos), err
}

func (s *Store) LogSearch(_ context.Context, entry domain.SearchLog) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.logs = append(s.logs, entry)
	return nil
}

// SearchLogs returns a copy of the recorded search log.
func (s *Store) SearchLogs() []domain.SearchLog {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return append([]domain.SearchLog(nil), s.logs...)
}

// Healthy always reports true.
func (s *Store) Healthy(context.Context) bool {
	return true
}
