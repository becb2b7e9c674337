package domain

import "time"

// VideoKind selects which table a video lands in. The kind is decided once,
// at ingestion time, and never changes on re-observation.
type VideoKind string

const (
	KindVideo VideoKind = "video"
	KindShort VideoKind = "short"
)

// ShortMaxDuration is the upper bound for classifying a single fetched video
// as a short on the webhook path. Playlist-based ingestion does not need it
// because the long-form and short-form playlists are disjoint.
const ShortMaxDuration = 3 * time.Minute

// KindForDuration classifies a video by its runtime.
func KindForDuration(d time.Duration) VideoKind {
	if d > 0 && d <= ShortMaxDuration {
		return KindShort
	}
	return KindVideo
}

type Video struct {
	ID           string    `db:"video_id"`
	ChannelID    string    `db:"channel_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	PublishedAt  time.Time `db:"published_at"`
	ThumbnailURL *string   `db:"thumbnail_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
