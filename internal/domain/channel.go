package domain

import "time"

// Channel is a tracked content source on the video platform. The platform
// channel ID is the primary key and never changes once a row exists.
type Channel struct {
	ID               string    `db:"channel_id"`
	Name             string    `db:"channel_name"`
	SubscriberCount  int64     `db:"subscriber_count"`
	VideoCount       int64     `db:"video_count"`
	ThumbnailURL     *string   `db:"thumbnail_url"`
	Verified         bool      `db:"is_verified"`
	VideosPlaylistID *string   `db:"videos_playlist_id"`
	ShortsPlaylistID *string   `db:"shorts_playlist_id"`
	CreatedAt        time.Time `db:"created_at"`
	LastUpdated      time.Time `db:"last_updated"`
}

// HasPlaylistIDs reports whether both derived playlist identifiers are set.
// They are derived together, so either both are present or both are absent.
func (c *Channel) HasPlaylistIDs() bool {
	return c.VideosPlaylistID != nil && c.ShortsPlaylistID != nil
}
