package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"clip_collector/internal/domain"
)

// VideoStore persists long-form videos and shorts. The two kinds live in
// disjoint tables fed by disjoint playlists, but share one schema and one
// upsert path.
type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

func tableFor(kind domain.VideoKind) (string, error) {
	switch kind {
	case domain.KindVideo:
		return "videos", nil
	case domain.KindShort:
		return "shorts", nil
	default:
		return "", fmt.Errorf("unknown video kind %q", kind)
	}
}

// ExistingIDs returns which of the given video IDs are already stored for
// the kind. Sync uses this to find its boundary page.
func (s *VideoStore) ExistingIDs(ctx context.Context, kind domain.VideoKind, ids []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(ids) == 0 {
		return result, nil
	}

	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT video_id FROM %s WHERE video_id = ANY($1)`, table)
	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}
	return result, rows.Err()
}

// UpsertBatch writes a page of videos in a single statement. Redelivery of
// the same IDs refreshes the mutable columns and never moves a video
// between tables.
func (s *VideoStore) UpsertBatch(ctx context.Context, kind domain.VideoKind, videos []domain.Video) error {
	if len(videos) == 0 {
		return nil
	}

	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	const cols = 6
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(` (video_id, channel_id, title, description, published_at, thumbnail_url) VALUES `)
	args := make([]interface{}, 0, len(videos)*cols)

	for i, v := range videos {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*cols + j + 1))
		}
		sb.WriteString(")")
		args = append(args, v.ID, v.ChannelID, v.Title, v.Description, v.PublishedAt, v.ThumbnailURL)
	}

	sb.WriteString(` ON CONFLICT (video_id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		published_at = EXCLUDED.published_at,
		thumbnail_url = EXCLUDED.thumbnail_url,
		updated_at = NOW()`)

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// Upsert writes a single video, the webhook path's unit of work.
func (s *VideoStore) Upsert(ctx context.Context, kind domain.VideoKind, video domain.Video) error {
	return s.UpsertBatch(ctx, kind, []domain.Video{video})
}
