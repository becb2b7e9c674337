package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"clip_collector/internal/domain"
	"clip_collector/internal/source/youtube"
)

type ChannelStore interface {
	UpsertBatch(ctx context.Context, channels []domain.Channel) error
	GetByID(ctx context.Context, channelID string) (*domain.Channel, error)
	GetAllWithPlaylistIDs(ctx context.Context) ([]domain.Channel, error)
	DeleteInactive(ctx context.Context, cutoff time.Time) (int64, error)
}

type VideoStore interface {
	ExistingIDs(ctx context.Context, kind domain.VideoKind, ids []string) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, kind domain.VideoKind, videos []domain.Video) error
	Upsert(ctx context.Context, kind domain.VideoKind, video domain.Video) error
}

type PlatformClient interface {
	SearchChannels(ctx context.Context, query, pageToken string) (youtube.SearchPage, error)
	FetchChannelDetails(ctx context.Context, ids []string) ([]youtube.ChannelDetail, error)
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (youtube.PlaylistPage, error)
	FetchVideoDetails(ctx context.Context, videoID string) (*youtube.VideoDetail, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishVideo(ctx context.Context, kind domain.VideoKind, video *domain.Video, isNew bool) error
	Close() error
}
