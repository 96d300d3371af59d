package transcode

import (
	"context"

	"github.com/ytget/vidkit/internal/model"
)

// Transcoder defines the interface for the transcode service.
type Transcoder interface {
	SetUpdateCallback(func(*model.TranscodeTask))
	Convert(ctx context.Context, opts ConvertOptions) (*model.TranscodeTask, error)
	Clip(ctx context.Context, opts ClipOptions) (*model.TranscodeTask, error)
}

var _ Transcoder = (*Service)(nil)
