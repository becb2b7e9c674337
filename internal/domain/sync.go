package domain

import "time"

// DiscoveryStats holds statistics about one discovery run.
type DiscoveryStats struct {
	Keywords        int
	PagesSearched   int
	ChannelsFound   int
	ChannelsMatched int
	Skipped         int
	Errors          int
	QuotaUsed       int
	Duration        time.Duration
}

// SyncStats holds statistics about one full playlist sync run.
type SyncStats struct {
	Channels  int
	Pages     int
	NewVideos int
	NewShorts int
	Errors    int
	Duration  time.Duration
}

// CleanupStats holds statistics about one inactivity-cleanup pass.
type CleanupStats struct {
	Deleted  int64
	Duration time.Duration
}
