package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"clip_collector/internal/config"
	"clip_collector/internal/domain"
	"clip_collector/internal/filter"
	"clip_collector/internal/service/mocks"
	"clip_collector/internal/source/youtube"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client    *mocks.MockPlatformClient
	channels  *mocks.MockChannelStore
	videos    *mocks.MockVideoStore
	publisher *mocks.MockPublisher

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockPlatformClient(s.ctrl)
	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{
		BatchSize:     2,
		BatchCooldown: time.Millisecond,
		RetentionDays: 180,
	}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		s.client,
		s.channels,
		s.videos,
		filter.New(),
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func trackedChannel(i int) domain.Channel {
	id := testChannelID(i)
	videosID := "UULF" + id[2:]
	shortsID := "UUSH" + id[2:]
	return domain.Channel{
		ID:               id,
		Name:             "Hololive clips " + id,
		VideosPlaylistID: &videosID,
		ShortsPlaylistID: &shortsID,
	}
}

func playlistItem(videoID string, published time.Time) youtube.PlaylistVideo {
	return youtube.PlaylistVideo{
		VideoID:      videoID,
		Title:        "clip " + videoID,
		Description:  "#hololive 翻譯 " + videoID,
		PublishedAt:  published,
		ThumbnailURL: "https://img.example/" + videoID,
	}
}

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *SyncServiceTestSuite) TestSyncAll_StopsAtFirstFullySeenPage() {
	ctx := context.Background()
	ch := trackedChannel(1)
	now := time.Now()

	s.channels.EXPECT().GetAllWithPlaylistIDs(ctx).Return([]domain.Channel{ch}, nil)

	// Videos playlist: pages one and two carry unseen items, page three
	// is fully seen. The page-four token must never be followed.
	page1 := youtube.PlaylistPage{
		Items:         []youtube.PlaylistVideo{playlistItem("vidA", now), playlistItem("vidB", now)},
		NextPageToken: "p2",
	}
	page2 := youtube.PlaylistPage{
		Items:         []youtube.PlaylistVideo{playlistItem("vidC", now)},
		NextPageToken: "p3",
	}
	page3 := youtube.PlaylistPage{
		Items:         []youtube.PlaylistVideo{playlistItem("vidD", now), playlistItem("vidE", now)},
		NextPageToken: "p4",
	}

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.VideosPlaylistID, "").Return(page1, nil)
	s.videos.EXPECT().ExistingIDs(ctx, domain.KindVideo, []string{"vidA", "vidB"}).Return(idSet(), nil)
	s.videos.EXPECT().UpsertBatch(ctx, domain.KindVideo, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.VideoKind, videos []domain.Video) error {
			s.Len(videos, 2)
			s.Equal(ch.ID, videos[0].ChannelID)
			return nil
		},
	)

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.VideosPlaylistID, "p2").Return(page2, nil)
	s.videos.EXPECT().ExistingIDs(ctx, domain.KindVideo, []string{"vidC"}).Return(idSet(), nil)
	s.videos.EXPECT().UpsertBatch(ctx, domain.KindVideo, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.VideoKind, videos []domain.Video) error {
			s.Len(videos, 1)
			return nil
		},
	)
	s.publisher.EXPECT().PublishVideo(ctx, domain.KindVideo, gomock.Any(), true).Return(nil).Times(3)

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.VideosPlaylistID, "p3").Return(page3, nil)
	s.videos.EXPECT().ExistingIDs(ctx, domain.KindVideo, []string{"vidD", "vidE"}).Return(idSet("vidD", "vidE"), nil)

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.ShortsPlaylistID, "").Return(youtube.PlaylistPage{}, nil)

	stats, err := s.service.SyncAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Channels)
	s.Equal(3, stats.Pages)
	s.Equal(3, stats.NewVideos)
	s.Equal(0, stats.NewShorts)
	s.Equal(0, stats.Errors)
}

func (s *SyncServiceTestSuite) TestSyncAll_DropsOffTopicVideos() {
	ctx := context.Background()
	ch := trackedChannel(2)
	now := time.Now()

	offTopic := playlistItem("vidOff", now)
	offTopic.Description = "unrelated gaming stream"

	s.channels.EXPECT().GetAllWithPlaylistIDs(ctx).Return([]domain.Channel{ch}, nil)

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.VideosPlaylistID, "").Return(
		youtube.PlaylistPage{Items: []youtube.PlaylistVideo{playlistItem("vidOn", now), offTopic}}, nil,
	)
	s.videos.EXPECT().ExistingIDs(ctx, domain.KindVideo, []string{"vidOn", "vidOff"}).Return(idSet(), nil)
	s.videos.EXPECT().UpsertBatch(ctx, domain.KindVideo, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.VideoKind, videos []domain.Video) error {
			s.Len(videos, 1)
			s.Equal("vidOn", videos[0].ID)
			return nil
		},
	)
	s.publisher.EXPECT().PublishVideo(ctx, domain.KindVideo, gomock.Any(), true).Return(nil)

	s.client.EXPECT().ListPlaylistItems(ctx, *ch.ShortsPlaylistID, "").Return(youtube.PlaylistPage{}, nil)

	stats, err := s.service.SyncAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.NewVideos)
}

func (s *SyncServiceTestSuite) TestSyncAll_ChannelFailureIsIsolated() {
	ctx := context.Background()
	broken := trackedChannel(3)
	healthy := trackedChannel(4)
	now := time.Now()

	s.channels.EXPECT().GetAllWithPlaylistIDs(ctx).Return([]domain.Channel{broken, healthy}, nil)

	s.client.EXPECT().ListPlaylistItems(ctx, *broken.VideosPlaylistID, "").Return(
		youtube.PlaylistPage{}, errors.New("upstream 500"),
	)

	s.client.EXPECT().ListPlaylistItems(ctx, *healthy.VideosPlaylistID, "").Return(youtube.PlaylistPage{}, nil)
	s.client.EXPECT().ListPlaylistItems(ctx, *healthy.ShortsPlaylistID, "").Return(
		youtube.PlaylistPage{Items: []youtube.PlaylistVideo{playlistItem("shortA", now)}}, nil,
	)
	s.videos.EXPECT().ExistingIDs(ctx, domain.KindShort, []string{"shortA"}).Return(idSet(), nil)
	s.videos.EXPECT().UpsertBatch(ctx, domain.KindShort, gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishVideo(ctx, domain.KindShort, gomock.Any(), true).Return(nil)

	stats, err := s.service.SyncAll(ctx)

	s.NoError(err)
	s.Equal(2, stats.Channels)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.NewShorts)
}

func (s *SyncServiceTestSuite) TestCleanupInactive() {
	ctx := context.Background()

	s.channels.EXPECT().DeleteInactive(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)
			s.WithinDuration(expected, cutoff, time.Minute)
			return 3, nil
		},
	)

	stats, err := s.service.CleanupInactive(ctx)

	s.NoError(err)
	s.Equal(int64(3), stats.Deleted)
}
