package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"clip_collector/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// UpsertBatch writes a batch of channels in one statement, so the batch is
// applied all-or-nothing. The channel_id never changes on conflict; every
// other column takes the fresh values.
func (s *ChannelStore) UpsertBatch(ctx context.Context, channels []domain.Channel) error {
	if len(channels) == 0 {
		return nil
	}

	const cols = 7
	var sb strings.Builder
	sb.WriteString(`INSERT INTO channels (
		channel_id, channel_name, subscriber_count, video_count,
		thumbnail_url, videos_playlist_id, shorts_playlist_id
	) VALUES `)
	args := make([]interface{}, 0, len(channels)*cols)

	for i, ch := range channels {
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
		args = append(args,
			ch.ID, ch.Name, ch.SubscriberCount, ch.VideoCount,
			ch.ThumbnailURL, ch.VideosPlaylistID, ch.ShortsPlaylistID,
		)
	}

	sb.WriteString(` ON CONFLICT (channel_id) DO UPDATE SET
		channel_name = EXCLUDED.channel_name,
		subscriber_count = EXCLUDED.subscriber_count,
		video_count = EXCLUDED.video_count,
		thumbnail_url = EXCLUDED.thumbnail_url,
		videos_playlist_id = EXCLUDED.videos_playlist_id,
		shorts_playlist_id = EXCLUDED.shorts_playlist_id,
		last_updated = NOW()`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// GetByID returns nil without error when the channel is not tracked.
func (s *ChannelStore) GetByID(ctx context.Context, channelID string) (*domain.Channel, error) {
	var ch domain.Channel
	query := `
		SELECT channel_id, channel_name, subscriber_count, video_count,
		       thumbnail_url, is_verified, videos_playlist_id, shorts_playlist_id,
		       created_at, last_updated
		FROM channels
		WHERE channel_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ch, query, channelID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetAllWithPlaylistIDs returns the channels eligible for playlist sync.
func (s *ChannelStore) GetAllWithPlaylistIDs(ctx context.Context) ([]domain.Channel, error) {
	query := `
		SELECT channel_id, channel_name, subscriber_count, video_count,
		       thumbnail_url, is_verified, videos_playlist_id, shorts_playlist_id,
		       created_at, last_updated
		FROM channels
		WHERE videos_playlist_id IS NOT NULL AND shorts_playlist_id IS NOT NULL
		ORDER BY channel_id`

	var channels []domain.Channel
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels, query)
	return channels, err
}

// DeleteInactive removes channels whose newest stored video or short is
// older than cutoff, including channels with nothing stored at all.
// Dependent rows go with them via the FK cascade.
func (s *ChannelStore) DeleteInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM channels c
		WHERE NOT EXISTS (
			SELECT 1 FROM videos v
			WHERE v.channel_id = c.channel_id AND v.published_at >= $1
		)
		AND NOT EXISTS (
			SELECT 1 FROM shorts sh
			WHERE sh.channel_id = c.channel_id AND sh.published_at >= $1
		)`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByIDs removes the given channels and, via cascade, their videos.
func (s *ChannelStore) DeleteByIDs(ctx context.Context, channelIDs []string) (int64, error) {
	if len(channelIDs) == 0 {
		return 0, nil
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM channels WHERE channel_id = ANY($1)`, pq.Array(channelIDs))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
