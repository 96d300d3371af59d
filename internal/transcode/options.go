package transcode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/floostack/transcoder/ffmpeg"

	"github.com/ytget/vidkit/internal/config"
)

// ConvertedSuffix is appended to the input stem when no output path is given
const ConvertedSuffix = "_converted"

// ConvertOptions configures a format/resolution conversion
type ConvertOptions struct {
	Input        string
	Output       string // derived from Input when empty
	Format       string // target container (mp4, webm, mkv, avi)
	Resolution   string // "WxH" (e.g. 1280x720), optional
	VideoCodec   string // defaults to libx264
	AudioCodec   string // defaults to aac
	VideoBitrate string // e.g. "2M", optional
	AudioBitrate string // defaults to 192k
}

// ClipOptions configures a stream-copy clip extraction
type ClipOptions struct {
	Input    string
	Output   string
	Start    string // "HH:MM:SS" or seconds
	Duration string // seconds; exactly one of Duration/End must be set
	End      string // "HH:MM:SS" or seconds
}

// OutputPath returns the explicit output path, or "<stem>_converted.<format>"
// in the current directory when none was given.
func (o ConvertOptions) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	base := filepath.Base(o.Input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ConvertedSuffix + "." + o.Format
}

// scaleFilter turns a "WxH" resolution into an ffmpeg scale filter expression
func scaleFilter(resolution string) (string, error) {
	parts := strings.Split(resolution, "x")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid resolution %q, expected WIDTHxHEIGHT", resolution)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid resolution width %q: %w", parts[0], err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid resolution height %q: %w", parts[1], err)
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("resolution dimensions must be positive, got %dx%d", width, height)
	}

	return fmt.Sprintf("scale=%d:%d", width, height), nil
}

// buildConvertOptions maps ConvertOptions onto the engine configuration
func buildConvertOptions(o ConvertOptions) (*ffmpeg.Options, error) {
	if o.VideoCodec == "" {
		o.VideoCodec = config.DefaultVideoCodec
	}
	if o.AudioCodec == "" {
		o.AudioCodec = config.DefaultAudioCodec
	}
	if o.AudioBitrate == "" {
		o.AudioBitrate = config.DefaultAudioBitrate
	}

	overwrite := true
	opts := &ffmpeg.Options{
		VideoCodec:   &o.VideoCodec,
		AudioCodec:   &o.AudioCodec,
		AudioBitrate: &o.AudioBitrate,
		Overwrite:    &overwrite,
	}

	if o.VideoBitrate != "" {
		opts.VideoBitRate = &o.VideoBitrate
	}

	if o.Resolution != "" {
		filter, err := scaleFilter(o.Resolution)
		if err != nil {
			return nil, err
		}
		opts.VideoFilter = &filter
	}

	return opts, nil
}

// buildClipOptions maps ClipOptions onto a stream-copy engine configuration.
// Exactly one of Duration/End must be supplied.
func buildClipOptions(o ClipOptions) (*ffmpeg.Options, error) {
	if o.Start == "" {
		return nil, errors.New("start time is required")
	}
	if (o.Duration == "") == (o.End == "") {
		return nil, errors.New("exactly one of duration or end time must be specified")
	}

	overwrite := true
	opts := &ffmpeg.Options{
		SeekTime:  &o.Start,
		Overwrite: &overwrite,
		// Copy streams without re-encoding
		ExtraArgs: map[string]interface{}{"-c": "copy"},
	}

	if o.Duration != "" {
		opts.Duration = &o.Duration
	} else {
		opts.ExtraArgs["-to"] = o.End
	}

	return opts, nil
}
