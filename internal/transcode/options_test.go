package transcode

import (
	"strings"
	"testing"

	"github.com/ytget/vidkit/internal/config"
)

func TestConvertOptions_OutputPath(t *testing.T) {
	tests := []struct {
		input    string
		output   string
		format   string
		expected string
	}{
		{"/path/to/video.mov", "", "mp4", "video_converted.mp4"},
		{"clip.avi", "", "webm", "clip_converted.webm"},
		{"/no/ext/file", "", "mkv", "file_converted.mkv"},
		{"/path/to/video.mov", "/out/result.mp4", "mp4", "/out/result.mp4"},
	}

	for _, test := range tests {
		opts := ConvertOptions{Input: test.input, Output: test.output, Format: test.format}
		result := opts.OutputPath()
		if result != test.expected {
			t.Errorf("OutputPath() with input=%s output=%s = %s, expected %s",
				test.input, test.output, result, test.expected)
		}
	}
}

func TestScaleFilter(t *testing.T) {
	tests := []struct {
		resolution string
		expected   string
		wantErr    bool
	}{
		{"1280x720", "scale=1280:720", false},
		{"1920x1080", "scale=1920:1080", false},
		{"640x480", "scale=640:480", false},
		{"1280", "", true},
		{"1280x720x3", "", true},
		{"widexhigh", "", true},
		{"0x720", "", true},
		{"-1280x720", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := scaleFilter(test.resolution)
		if test.wantErr {
			if err == nil {
				t.Errorf("scaleFilter(%q) expected error, got %q", test.resolution, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("scaleFilter(%q) unexpected error: %v", test.resolution, err)
			continue
		}
		if result != test.expected {
			t.Errorf("scaleFilter(%q) = %q, expected %q", test.resolution, result, test.expected)
		}
	}
}

func TestBuildConvertOptions_Defaults(t *testing.T) {
	opts, err := buildConvertOptions(ConvertOptions{Input: "in.mov", Format: "mp4"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.VideoCodec == nil || *opts.VideoCodec != config.DefaultVideoCodec {
		t.Errorf("Expected default video codec %s", config.DefaultVideoCodec)
	}
	if opts.AudioCodec == nil || *opts.AudioCodec != config.DefaultAudioCodec {
		t.Errorf("Expected default audio codec %s", config.DefaultAudioCodec)
	}
	if opts.AudioBitrate == nil || *opts.AudioBitrate != config.DefaultAudioBitrate {
		t.Errorf("Expected default audio bitrate %s", config.DefaultAudioBitrate)
	}
	if opts.VideoBitRate != nil {
		t.Error("Expected video bitrate to be unset by default")
	}
	if opts.VideoFilter != nil {
		t.Error("Expected video filter to be unset without resolution")
	}
	if opts.Overwrite == nil || !*opts.Overwrite {
		t.Error("Expected overwrite to be enabled")
	}
}

func TestBuildConvertOptions_ScaleFilter(t *testing.T) {
	opts, err := buildConvertOptions(ConvertOptions{
		Input:      "input.mov",
		Format:     "mp4",
		Resolution: "1280x720",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.VideoFilter == nil || *opts.VideoFilter != "scale=1280:720" {
		t.Fatalf("Expected scale filter 'scale=1280:720', got %v", opts.VideoFilter)
	}
	if *opts.VideoCodec != "libx264" || *opts.AudioCodec != "aac" {
		t.Errorf("Expected default codecs libx264/aac, got %s/%s", *opts.VideoCodec, *opts.AudioCodec)
	}
}

func TestBuildConvertOptions_InvalidResolution(t *testing.T) {
	_, err := buildConvertOptions(ConvertOptions{
		Input:      "input.mov",
		Format:     "mp4",
		Resolution: "bogus",
	})
	if err == nil {
		t.Fatal("Expected error for malformed resolution, got nil")
	}
}

func TestBuildConvertOptions_VideoBitrate(t *testing.T) {
	opts, err := buildConvertOptions(ConvertOptions{
		Input:        "input.mov",
		Format:       "mp4",
		VideoBitrate: "2M",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if opts.VideoBitRate == nil || *opts.VideoBitRate != "2M" {
		t.Errorf("Expected video bitrate 2M, got %v", opts.VideoBitRate)
	}
}

func TestBuildClipOptions_StreamCopy(t *testing.T) {
	opts, err := buildClipOptions(ClipOptions{
		Input:    "input.mp4",
		Output:   "out.mp4",
		Start:    "00:00:10",
		Duration: "5",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.SeekTime == nil || *opts.SeekTime != "00:00:10" {
		t.Errorf("Expected seek time 00:00:10, got %v", opts.SeekTime)
	}
	if opts.Duration == nil || *opts.Duration != "5" {
		t.Errorf("Expected duration 5, got %v", opts.Duration)
	}
	if codec, ok := opts.ExtraArgs["-c"]; !ok || codec != "copy" {
		t.Errorf("Expected stream copy (-c copy), got %v", opts.ExtraArgs)
	}
	if _, ok := opts.ExtraArgs["-to"]; ok {
		t.Error("Expected no end time when duration is set")
	}
}

func TestBuildClipOptions_EndTime(t *testing.T) {
	opts, err := buildClipOptions(ClipOptions{
		Input:  "input.mp4",
		Output: "out.mp4",
		Start:  "10",
		End:    "00:00:20",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if end, ok := opts.ExtraArgs["-to"]; !ok || end != "00:00:20" {
		t.Errorf("Expected end time 00:00:20, got %v", opts.ExtraArgs)
	}
	if opts.Duration != nil {
		t.Error("Expected no duration when end time is set")
	}
}

func TestBuildClipOptions_BoundValidation(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		end      string
	}{
		{"neither duration nor end", "", ""},
		{"both duration and end", "5", "00:00:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildClipOptions(ClipOptions{
				Input:    "input.mp4",
				Output:   "out.mp4",
				Start:    "0",
				Duration: tt.duration,
				End:      tt.end,
			})
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), "exactly one") {
				t.Errorf("Expected 'exactly one' error, got: %v", err)
			}
		})
	}
}

func TestBuildClipOptions_MissingStart(t *testing.T) {
	_, err := buildClipOptions(ClipOptions{Input: "input.mp4", Output: "out.mp4", Duration: "5"})
	if err == nil {
		t.Fatal("Expected error for missing start time, got nil")
	}
}
