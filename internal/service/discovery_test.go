package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"clip_collector/internal/config"
	"clip_collector/internal/domain"
	"clip_collector/internal/filter"
	"clip_collector/internal/quota"
	"clip_collector/internal/service/mocks"
	"clip_collector/internal/source/youtube"
)

type DiscoveryServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client    *mocks.MockPlatformClient
	channels  *mocks.MockChannelStore
	txManager *mocks.MockTransactionManager

	governor *quota.Governor
	service  *DiscoveryService
	cfg      config.DiscoveryConfig
	logger   *slog.Logger
}

func (s *DiscoveryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockPlatformClient(s.ctrl)
	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.cfg = config.DiscoveryConfig{
		Keywords:       []string{"hololive clips", "hololive translation"},
		MaxSearchPages: 2,
	}
	s.governor = quota.NewGovernor(10000)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDiscoveryService(
		s.client,
		s.channels,
		filter.New(),
		s.txManager,
		s.governor,
		s.logger,
		s.cfg,
	)
}

func (s *DiscoveryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDiscoveryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscoveryServiceTestSuite))
}

func testChannelID(i int) string {
	return fmt.Sprintf("UC%022d", i)
}

func testDetail(id string) youtube.ChannelDetail {
	return youtube.ChannelDetail{
		ID:              id,
		Name:            "Hololive clips " + id,
		SubscriberCount: 1200,
		VideoCount:      40,
		ThumbnailURL:    "https://img.example/" + id,
	}
}

func detailsFor(ids []string) []youtube.ChannelDetail {
	details := make([]youtube.ChannelDetail, len(ids))
	for i, id := range ids {
		details[i] = testDetail(id)
	}
	return details
}

func (s *DiscoveryServiceTestSuite) TestRun_DeduplicatesAndBatchesDetails() {
	ctx := context.Background()

	allIDs := make([]string, 70)
	for i := range allIDs {
		allIDs[i] = testChannelID(i)
	}

	// First keyword paginates twice, second keyword overlaps the tail.
	s.client.EXPECT().SearchChannels(ctx, "hololive clips", "").Return(
		youtube.SearchPage{ChannelIDs: allIDs[0:40], NextPageToken: "p2"}, nil,
	)
	s.client.EXPECT().SearchChannels(ctx, "hololive clips", "p2").Return(
		youtube.SearchPage{ChannelIDs: allIDs[40:60]}, nil,
	)
	s.client.EXPECT().SearchChannels(ctx, "hololive translation", "").Return(
		youtube.SearchPage{ChannelIDs: allIDs[50:70]}, nil,
	)

	s.client.EXPECT().FetchChannelDetails(ctx, allIDs[0:50]).Return(detailsFor(allIDs[0:50]), nil)
	s.client.EXPECT().FetchChannelDetails(ctx, allIDs[50:70]).Return(detailsFor(allIDs[50:70]), nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.channels.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, channels []domain.Channel) error {
			s.Len(channels, 70)
			s.Equal(allIDs[0], channels[0].ID)
			s.Require().NotNil(channels[0].VideosPlaylistID)
			s.Equal("UULF"+allIDs[0][2:], *channels[0].VideosPlaylistID)
			return nil
		},
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Keywords)
	s.Equal(3, stats.PagesSearched)
	s.Equal(70, stats.ChannelsFound)
	s.Equal(70, stats.ChannelsMatched)
	s.Equal(0, stats.Skipped)
	s.Equal(0, stats.Errors)
}

func (s *DiscoveryServiceTestSuite) TestRun_SkipsMalformedAndIrrelevant() {
	ctx := context.Background()

	goodID := testChannelID(1)
	offTopicID := testChannelID(2)
	ids := []string{"badly-shaped-id", offTopicID, goodID}

	s.client.EXPECT().SearchChannels(ctx, "hololive clips", "").Return(
		youtube.SearchPage{ChannelIDs: ids}, nil,
	)
	s.client.EXPECT().SearchChannels(ctx, "hololive translation", "").Return(
		youtube.SearchPage{}, nil,
	)

	offTopic := testDetail(offTopicID)
	offTopic.Name = "Cooking Daily"

	s.client.EXPECT().FetchChannelDetails(ctx, ids).Return(
		[]youtube.ChannelDetail{testDetail("badly-shaped-id"), offTopic, testDetail(goodID)}, nil,
	)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.channels.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, channels []domain.Channel) error {
			s.Len(channels, 1)
			s.Equal(goodID, channels[0].ID)
			return nil
		},
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(3, stats.ChannelsFound)
	s.Equal(1, stats.ChannelsMatched)
	s.Equal(2, stats.Skipped)
}

func (s *DiscoveryServiceTestSuite) TestRun_KeywordErrorIsolated() {
	ctx := context.Background()
	goodID := testChannelID(7)

	s.client.EXPECT().SearchChannels(ctx, "hololive clips", "").Return(
		youtube.SearchPage{}, errors.New("upstream 500"),
	)
	s.client.EXPECT().SearchChannels(ctx, "hololive translation", "").Return(
		youtube.SearchPage{ChannelIDs: []string{goodID}}, nil,
	)

	s.client.EXPECT().FetchChannelDetails(ctx, []string{goodID}).Return(
		[]youtube.ChannelDetail{testDetail(goodID)}, nil,
	)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.channels.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.ChannelsMatched)
}

func (s *DiscoveryServiceTestSuite) TestRun_QuotaTooLowForSearch() {
	ctx := context.Background()

	s.service = NewDiscoveryService(
		s.client,
		s.channels,
		filter.New(),
		s.txManager,
		quota.NewGovernor(youtube.SearchCost-1),
		s.logger,
		s.cfg,
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.PagesSearched)
	s.Equal(0, stats.ChannelsFound)
}
