// Package youtube is a typed client for the platform's Data API v3,
// restricted to the four operations the collector needs. Every call is
// charged through the quota governor before it goes on the wire; when the
// budget cannot cover a call the client returns an empty result instead of
// an error, so a run under quota pressure still flushes what it found.
// The client does no retries. Transport and API errors propagate unmodified.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clip_collector/internal/quota"
)

const (
	defaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	maxResultsPerPage = 50

	// MaxIDsPerDetailsCall is the platform's batch limit for a channel
	// details lookup. Cost is per call, not per ID, so callers should fill
	// batches to the brim.
	MaxIDsPerDetailsCall = 50

	// Quota units charged per call.
	SearchCost        = 100
	DetailsCost       = 1
	PlaylistItemsCost = 1
	VideoDetailsCost  = 1
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	governor   *quota.Governor
	logger     *slog.Logger
}

func NewClient(cfg Config, governor *quota.Governor, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		governor:   governor,
		logger:     logger.With("component", "youtube"),
	}
}

// SearchChannels runs one page of a keyword channel search.
func (c *Client) SearchChannels(ctx context.Context, query, pageToken string) (SearchPage, error) {
	if !c.governor.Reserve(SearchCost) {
		c.logger.Warn("quota exhausted, skipping search", "query", query, "remaining", c.governor.Remaining())
		return SearchPage{}, nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "channel")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResultsPerPage))
	params.Set("relevanceLanguage", "zh-Hant")
	params.Set("order", "relevance")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return SearchPage{}, fmt.Errorf("search channels %q: %w", query, err)
	}

	page := SearchPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.ID.ChannelID != "" {
			page.ChannelIDs = append(page.ChannelIDs, item.ID.ChannelID)
		}
	}
	return page, nil
}

// FetchChannelDetails looks up metadata for up to MaxIDsPerDetailsCall
// channels in one charged call. Chunking is the caller's job.
func (c *Client) FetchChannelDetails(ctx context.Context, ids []string) ([]ChannelDetail, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerDetailsCall {
		return nil, fmt.Errorf("details batch of %d exceeds limit of %d", len(ids), MaxIDsPerDetailsCall)
	}

	if !c.governor.Reserve(DetailsCost) {
		c.logger.Warn("quota exhausted, skipping channel details", "ids", len(ids))
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch channel details: %w", err)
	}

	details := make([]ChannelDetail, 0, len(resp.Items))
	for _, item := range resp.Items {
		details = append(details, ChannelDetail{
			ID:                item.ID,
			Name:              item.Snippet.Title,
			SubscriberCount:   parseCount(item.Statistics.SubscriberCount),
			VideoCount:        parseCount(item.Statistics.VideoCount),
			ThumbnailURL:      item.Snippet.Thumbnails.bestURL(),
			UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
		})
	}
	return details, nil
}

// ListPlaylistItems fetches one page of a playlist, newest first.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (PlaylistPage, error) {
	if !c.governor.Reserve(PlaylistItemsCost) {
		c.logger.Warn("quota exhausted, skipping playlist page", "playlist_id", playlistID)
		return PlaylistPage{}, nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(maxResultsPerPage))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp playlistItemsResponse
	if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
		return PlaylistPage{}, fmt.Errorf("list playlist %s: %w", playlistID, err)
	}

	page := PlaylistPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Snippet.ResourceID.VideoID == "" {
			continue
		}
		page.Items = append(page.Items, PlaylistVideo{
			VideoID:      item.Snippet.ResourceID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			PublishedAt:  parseTime(item.Snippet.PublishedAt),
			ThumbnailURL: item.Snippet.Thumbnails.bestURL(),
		})
	}
	return page, nil
}

// FetchVideoDetails looks up a single video. It returns nil when the video
// no longer exists on the platform.
func (c *Client) FetchVideoDetails(ctx context.Context, videoID string) (*VideoDetail, error) {
	if !c.governor.Reserve(VideoDetailsCost) {
		c.logger.Warn("quota exhausted, skipping video details", "video_id", videoID)
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", videoID)

	var resp videoListResponse
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	return &VideoDetail{
		ID:           item.ID,
		ChannelID:    item.Snippet.ChannelID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  parseTime(item.Snippet.PublishedAt),
		ThumbnailURL: item.Snippet.Thumbnails.bestURL(),
		Duration:     parseISODuration(item.ContentDetails.Duration),
	}, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseCount tolerates the API returning statistics as strings; hidden or
// absent counters come back as zero.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
