package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/internal/storage"
)

const videoColumns = `
	v.video_yid,
	v.title,
	v.description,
	v.published_at,
	c.title,
	COALESCE((v.statistics ->> 'view_count')::bigint, 0),
	COALESCE((v.statistics ->> 'like_count')::bigint, 0),
	COALESCE((v.statistics ->> 'comment_count')::bigint, 0),
	COALESCE(v.tags, '{}'),
	v.thumbnails,
	v.privacy_status,
	v.license,
	v.embeddable,
	v.made_for_kids,
	v.recording_location,
	v.recording_date,
	v.localizations,
	COALESCE(v.topic_categories, '{}'),
	COALESCE(v.relevant_topic_ids, '{}')`

const videoFrom = `
	FROM yt2.videos v
	JOIN yt2.channels c ON v.channel_id = c.id`

// matchPredicate expects the ILIKE pattern as $1.
const matchPredicate = `
	v.title ILIKE $1
	OR v.description ILIKE $1
	OR EXISTS (SELECT 1 FROM unnest(v.tags) AS tag WHERE tag ILIKE $1)`

type VideoStore struct {
	db *pgxpool.Pool
}

func NewVideoStore(pool *ConnectionPool) *VideoStore {
	return &VideoStore{db: pool.GetConn()}
}

func (s *VideoStore) SearchByPredicate(ctx context.Context, q storage.MatchQuery) ([]domain.ScoredVideo, error) {
	var (
		cmd  string
		args []any
	)
	if q.Weights == nil {
		cmd = `SELECT ` + videoColumns + `, 0::float8 AS score` + videoFrom + `
			WHERE ` + matchPredicate + `
			ORDER BY v.published_at DESC NULLS LAST, v.video_yid
			LIMIT $2 OFFSET $3`
		args = []any{likePattern(q.Term), q.Limit, q.Offset}
	} else {
		cmd = `SELECT ` + videoColumns + `,
				(CASE WHEN v.title ILIKE $1 THEN $2::float8 ELSE 0 END
				+ CASE WHEN EXISTS (SELECT 1 FROM unnest(v.tags) AS tag WHERE tag ILIKE $1) THEN $3::float8 ELSE 0 END
				+ CASE WHEN v.description ILIKE $1 THEN $4::float8 ELSE 0 END) AS score` + videoFrom + `
			WHERE ` + matchPredicate + `
			ORDER BY score DESC, v.published_at DESC NULLS LAST, v.video_yid
			LIMIT $5 OFFSET $6`
		args = []any{likePattern(q.Term), q.Weights.Title, q.Weights.Tags, q.Weights.Description, q.Limit, q.Offset}
	}

	rows, err := s.db.Query(ctx, cmd, args...)
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.ScoredVideo, 0, q.Limit)
	for rows.Next() {
		var sv domain.ScoredVideo
		if err := scanVideo(rows, &sv.Video, &sv.Score); err != nil {
			return nil, err
		}
		videos = append(videos, sv)
	}
	return videos, rows.Err()
}

func (s *VideoStore) CountByPredicate(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM yt2.videos v WHERE `+matchPredicate, likePattern(term)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return n, nil
}

func (s *VideoStore) HydrateByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.list(ctx, `SELECT `+videoColumns+videoFrom+` WHERE v.video_yid = ANY($1)`, ids)
}

func (s *VideoStore) AggregateSentiment(ctx context.Context, ids []string) (map[string]domain.Sentiment, error) {
	out := make(map[string]domain.Sentiment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT v.video_yid,
		       COALESCE(AVG(cm.sentiment_score), 0)::float8,
		       COUNT(cm.id)
		FROM yt2.videos v
		LEFT JOIN yt2.comments cm ON cm.video_id = v.id
		WHERE v.video_yid = ANY($1)
		GROUP BY v.video_yid`, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate sentiment: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id string
			s  domain.Sentiment
		)
		if err := rows.Scan(&id, &s.Mean, &s.Count); err != nil {
			return nil, fmt.Errorf("scan sentiment: %w", err)
		}
		out[id] = s
	}
	return out, rows.Err()
}

func (s *VideoStore) ListCorpus(ctx context.Context) ([]domain.Video, error) {
	return s.list(ctx, `SELECT `+videoColumns+videoFrom+` ORDER BY v.id`)
}

func (s *VideoStore) list(ctx context.Context, cmd string, args ...any) ([]domain.Video, error) {
	rows, err := s.db.Query(ctx, cmd, args...)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := scanVideo(rows, &v); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func scanVideo(row pgx.Row, v *domain.Video, extra ...any) error {
	dest := []any{
		&v.ID,
		&v.Title,
		&v.Description,
		&v.PublishedAt,
		&v.ChannelName,
		&v.ViewCount,
		&v.LikeCount,
		&v.CommentCount,
		&v.Tags,
		&v.Thumbnails,
		&v.PrivacyStatus,
		&v.License,
		&v.Embeddable,
		&v.MadeForKids,
		&v.RecordingLocation,
		&v.RecordingDate,
		&v.Localizations,
		&v.TopicCategories,
		&v.RelevantTopicIDs,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return fmt.Errorf("failed to scan video: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a literal term into a substring ILIKE pattern.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
