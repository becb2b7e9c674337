package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clip_collector/internal/config"
	"clip_collector/internal/domain"
	"clip_collector/internal/filter"
	"clip_collector/internal/quota"
	"clip_collector/internal/source/youtube"
)

// upsertChunkSize caps rows per INSERT so a very large discovery run stays
// under the driver's parameter limit; the chunks still commit as one
// transaction.
const upsertChunkSize = 200

// DiscoveryService bootstraps and refreshes the channel catalog: keyword
// search, ID aggregation, detail enrichment, classification, persistence.
type DiscoveryService struct {
	client    PlatformClient
	channels  ChannelStore
	filter    *filter.Engine
	txManager TransactionManager
	governor  *quota.Governor
	logger    *slog.Logger
	cfg       config.DiscoveryConfig
}

func NewDiscoveryService(
	client PlatformClient,
	channels ChannelStore,
	filterEngine *filter.Engine,
	txManager TransactionManager,
	governor *quota.Governor,
	logger *slog.Logger,
	cfg config.DiscoveryConfig,
) *DiscoveryService {
	return &DiscoveryService{
		client:    client,
		channels:  channels,
		filter:    filterEngine,
		txManager: txManager,
		governor:  governor,
		logger:    logger.With("component", "discovery"),
		cfg:       cfg,
	}
}

// Run executes one full discovery pass. Keyword errors are isolated; a run
// under quota pressure persists whatever it already found.
func (s *DiscoveryService) Run(ctx context.Context) (*domain.DiscoveryStats, error) {
	startTime := time.Now()
	stats := &domain.DiscoveryStats{Keywords: len(s.cfg.Keywords)}
	usedBefore := s.governor.Used()

	s.logger.Info("starting discovery",
		"keywords", len(s.cfg.Keywords),
		"max_search_pages", s.cfg.MaxSearchPages,
	)

	channelIDs := s.searchPhase(ctx, stats)
	stats.ChannelsFound = len(channelIDs)

	matched := s.enrichPhase(ctx, channelIDs, stats)
	stats.ChannelsMatched = len(matched)

	if len(matched) > 0 {
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			for start := 0; start < len(matched); start += upsertChunkSize {
				end := min(start+upsertChunkSize, len(matched))
				if err := s.channels.UpsertBatch(txCtx, matched[start:end]); err != nil {
					return fmt.Errorf("upsert channels: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return stats, err
		}
	}

	stats.QuotaUsed = s.governor.Used() - usedBefore
	stats.Duration = time.Since(startTime)

	s.logger.Info("discovery completed",
		"found", stats.ChannelsFound,
		"matched", stats.ChannelsMatched,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"quota_used", stats.QuotaUsed,
		"duration", stats.Duration,
	)

	return stats, nil
}

// searchPhase paginates every keyword and aggregates channel IDs into a
// deduplicating set, preserving first-seen order for deterministic batching.
func (s *DiscoveryService) searchPhase(ctx context.Context, stats *domain.DiscoveryStats) []string {
	seen := make(map[string]struct{})
	var ordered []string

	for _, keyword := range s.cfg.Keywords {
		if s.governor.Remaining() < youtube.SearchCost {
			s.logger.Warn("quota exhausted, stopping search phase", "remaining", s.governor.Remaining())
			break
		}

		pageToken := ""
		for page := 0; page < s.cfg.MaxSearchPages; page++ {
			result, err := s.client.SearchChannels(ctx, keyword, pageToken)
			if err != nil {
				s.logger.Error("search failed", "keyword", keyword, "page", page, "error", err)
				stats.Errors++
				break
			}
			stats.PagesSearched++

			for _, id := range result.ChannelIDs {
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					ordered = append(ordered, id)
				}
			}

			if result.NextPageToken == "" {
				break
			}
			pageToken = result.NextPageToken
		}
	}

	return ordered
}

// enrichPhase fetches details in maximal batches, derives the playlist IDs
// and keeps only channels whose name matches the niche.
func (s *DiscoveryService) enrichPhase(ctx context.Context, channelIDs []string, stats *domain.DiscoveryStats) []domain.Channel {
	var matched []domain.Channel

	for start := 0; start < len(channelIDs); start += youtube.MaxIDsPerDetailsCall {
		end := min(start+youtube.MaxIDsPerDetailsCall, len(channelIDs))

		details, err := s.client.FetchChannelDetails(ctx, channelIDs[start:end])
		if err != nil {
			s.logger.Error("detail fetch failed", "batch_start", start, "error", err)
			stats.Errors++
			continue
		}

		for _, d := range details {
			videosID, shortsID, ok := domain.DerivePlaylistIDs(d.ID)
			if !ok {
				s.logger.Warn("unexpected channel ID shape, skipping", "channel_id", d.ID)
				stats.Skipped++
				continue
			}

			if !s.filter.RelevantChannel(d.Name) {
				stats.Skipped++
				continue
			}

			ch := domain.Channel{
				ID:               d.ID,
				Name:             d.Name,
				SubscriberCount:  d.SubscriberCount,
				VideoCount:       d.VideoCount,
				VideosPlaylistID: &videosID,
				ShortsPlaylistID: &shortsID,
			}
			if d.ThumbnailURL != "" {
				thumb := d.ThumbnailURL
				ch.ThumbnailURL = &thumb
			}
			matched = append(matched, ch)
		}
	}

	return matched
}
