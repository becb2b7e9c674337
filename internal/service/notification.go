package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"

	"clip_collector/internal/domain"
)

// atomFeed is the push-notification payload: an Atom feed carrying at
// most one entry per delivery.
type atomFeed struct {
	XMLName xml.Name   `xml:"feed"`
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	VideoID   string `xml:"videoId"`
	ChannelID string `xml:"channelId"`
	Title     string `xml:"title"`
}

// NotificationService ingests push notifications for channels already in
// the catalog. Feeds referencing unknown channels are dropped so the
// catalog never grows from pushed data, only from discovery.
type NotificationService struct {
	client    PlatformClient
	channels  ChannelStore
	videos    VideoStore
	publisher Publisher
	logger    *slog.Logger
}

func NewNotificationService(
	client PlatformClient,
	channels ChannelStore,
	videos VideoStore,
	publisher Publisher,
	logger *slog.Logger,
) *NotificationService {
	return &NotificationService{
		client:    client,
		channels:  channels,
		videos:    videos,
		publisher: publisher,
		logger:    logger.With("component", "notification"),
	}
}

// Process handles one verified notification body. Deleted videos and
// videos from untracked channels are silently dropped.
func (s *NotificationService) Process(ctx context.Context, body []byte) error {
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}
	if len(feed.Entries) == 0 {
		// Deletion notices carry no entry.
		s.logger.Debug("notification without entry, skipping")
		return nil
	}

	entry := feed.Entries[0]
	if entry.VideoID == "" || entry.ChannelID == "" {
		return fmt.Errorf("feed entry missing identifiers")
	}

	channel, err := s.channels.GetByID(ctx, entry.ChannelID)
	if err != nil {
		return fmt.Errorf("lookup channel %s: %w", entry.ChannelID, err)
	}
	if channel == nil {
		s.logger.Debug("notification for untracked channel", "channel_id", entry.ChannelID)
		return nil
	}

	detail, err := s.client.FetchVideoDetails(ctx, entry.VideoID)
	if err != nil {
		return fmt.Errorf("fetch video %s: %w", entry.VideoID, err)
	}
	if detail == nil {
		// Already deleted or private by the time we looked it up.
		s.logger.Debug("notified video not found", "video_id", entry.VideoID)
		return nil
	}

	kind := domain.KindForDuration(detail.Duration)
	video := domain.Video{
		ID:          detail.ID,
		ChannelID:   channel.ID,
		Title:       detail.Title,
		Description: detail.Description,
		PublishedAt: detail.PublishedAt,
	}
	if detail.ThumbnailURL != "" {
		thumb := detail.ThumbnailURL
		video.ThumbnailURL = &thumb
	}

	if err := s.videos.Upsert(ctx, kind, video); err != nil {
		return fmt.Errorf("store video %s: %w", video.ID, err)
	}

	s.logger.Info("notification processed",
		"video_id", video.ID,
		"channel_id", channel.ID,
		"kind", kind,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishVideo(ctx, kind, &video, true); err != nil {
			s.logger.Error("publish failed", "video_id", video.ID, "error", err)
		}
	}
	return nil
}
