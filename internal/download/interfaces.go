package download

import (
	"context"

	"github.com/ytget/vidkit/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	SetNoCheckCertificate(enabled bool)
	DownloadVideo(ctx context.Context, url string, opts VideoOptions) (*model.DownloadTask, error)
	DownloadAudio(ctx context.Context, url string, opts AudioOptions) (*model.DownloadTask, error)
	DownloadPlaylist(ctx context.Context, playlist *model.Playlist, opts PlaylistOptions) (*model.PlaylistReport, error)
}

var _ Downloader = (*Service)(nil)
