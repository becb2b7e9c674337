package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"clip_collector/internal/config"
	"clip_collector/internal/domain"
	"clip_collector/internal/filter"
)

// SyncService scans every tracked channel's upload playlists for new
// content. Pagination per playlist stops at the sync boundary: the first
// page on which every item is already stored. The platform returns items
// newest first, so everything past that page has been seen in an earlier
// run.
type SyncService struct {
	client    PlatformClient
	channels  ChannelStore
	videos    VideoStore
	filter    *filter.Engine
	publisher Publisher
	logger    *slog.Logger
	cfg       config.SyncConfig
}

func NewSyncService(
	client PlatformClient,
	channels ChannelStore,
	videos VideoStore,
	filterEngine *filter.Engine,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		client:    client,
		channels:  channels,
		videos:    videos,
		filter:    filterEngine,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
		cfg:       cfg,
	}
}

// syncCounters is shared by the goroutines of one run.
type syncCounters struct {
	mu        sync.Mutex
	pages     int
	newVideos int
	newShorts int
	errors    int
}

func (c *syncCounters) addPage() {
	c.mu.Lock()
	c.pages++
	c.mu.Unlock()
}

func (c *syncCounters) addNew(kind domain.VideoKind, n int) {
	c.mu.Lock()
	if kind == domain.KindShort {
		c.newShorts += n
	} else {
		c.newVideos += n
	}
	c.mu.Unlock()
}

func (c *syncCounters) addError() {
	c.mu.Lock()
	c.errors++
	c.mu.Unlock()
}

// SyncAll runs the incremental scan over every channel with resolved
// playlist IDs, in fixed-size concurrent batches with a cooldown between
// batches to stay friendly with the platform's rate limiting. One
// channel's failure never takes down the batch.
func (s *SyncService) SyncAll(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()

	channels, err := s.channels.GetAllWithPlaylistIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}

	s.logger.Info("starting sync",
		"channels", len(channels),
		"batch_size", s.cfg.BatchSize,
		"cooldown", s.cfg.BatchCooldown,
	)

	counters := &syncCounters{}
	limiter := rate.NewLimiter(rate.Every(s.cfg.BatchCooldown), 1)

	for start := 0; start < len(channels); start += s.cfg.BatchSize {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		end := min(start+s.cfg.BatchSize, len(channels))
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			ch := channels[i]
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := s.syncChannel(ctx, ch, counters); err != nil {
					s.logger.Error("channel sync failed", "channel_id", ch.ID, "error", err)
					counters.addError()
				}
			}()
		}
		wg.Wait()
	}

	stats := &domain.SyncStats{
		Channels:  len(channels),
		Pages:     counters.pages,
		NewVideos: counters.newVideos,
		NewShorts: counters.newShorts,
		Errors:    counters.errors,
		Duration:  time.Since(startTime),
	}

	s.logger.Info("sync completed",
		"channels", stats.Channels,
		"pages", stats.Pages,
		"new_videos", stats.NewVideos,
		"new_shorts", stats.NewShorts,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) syncChannel(ctx context.Context, ch domain.Channel, counters *syncCounters) error {
	if !ch.HasPlaylistIDs() {
		return fmt.Errorf("channel %s is missing playlist IDs", ch.ID)
	}

	if err := s.syncPlaylist(ctx, ch, domain.KindVideo, *ch.VideosPlaylistID, counters); err != nil {
		return fmt.Errorf("videos playlist: %w", err)
	}
	if err := s.syncPlaylist(ctx, ch, domain.KindShort, *ch.ShortsPlaylistID, counters); err != nil {
		return fmt.Errorf("shorts playlist: %w", err)
	}
	return nil
}

func (s *SyncService) syncPlaylist(ctx context.Context, ch domain.Channel, kind domain.VideoKind, playlistID string, counters *syncCounters) error {
	pageToken := ""

	for {
		page, err := s.client.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			return nil
		}
		counters.addPage()

		ids := make([]string, len(page.Items))
		for i, item := range page.Items {
			ids[i] = item.VideoID
		}

		existing, err := s.videos.ExistingIDs(ctx, kind, ids)
		if err != nil {
			return err
		}

		// Sync boundary: a page with zero unseen items means everything
		// older has been scanned before.
		if len(existing) == len(page.Items) {
			return nil
		}

		var fresh []domain.Video
		for _, item := range page.Items {
			if _, ok := existing[item.VideoID]; ok {
				continue
			}
			if !s.filter.RelevantVideo(item.Description) {
				continue
			}
			v := domain.Video{
				ID:          item.VideoID,
				ChannelID:   ch.ID,
				Title:       item.Title,
				Description: item.Description,
				PublishedAt: item.PublishedAt,
			}
			if item.ThumbnailURL != "" {
				thumb := item.ThumbnailURL
				v.ThumbnailURL = &thumb
			}
			fresh = append(fresh, v)
		}

		if len(fresh) > 0 {
			if err := s.videos.UpsertBatch(ctx, kind, fresh); err != nil {
				return err
			}
			counters.addNew(kind, len(fresh))

			if s.publisher != nil {
				for i := range fresh {
					if err := s.publisher.PublishVideo(ctx, kind, &fresh[i], true); err != nil {
						s.logger.Error("publish failed", "video_id", fresh[i].ID, "error", err)
					}
				}
			}
		}

		if page.NextPageToken == "" {
			return nil
		}
		pageToken = page.NextPageToken
	}
}

// CleanupInactive deletes channels with nothing newer than the retention
// window; the schema cascades their videos and shorts away with them.
func (s *SyncService) CleanupInactive(ctx context.Context) (*domain.CleanupStats, error) {
	startTime := time.Now()
	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)

	deleted, err := s.channels.DeleteInactive(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete inactive channels: %w", err)
	}

	stats := &domain.CleanupStats{Deleted: deleted, Duration: time.Since(startTime)}
	s.logger.Info("cleanup completed", "deleted", deleted, "cutoff", cutoff)
	return stats, nil
}
