package download

import (
	"testing"

	"github.com/ytget/vidkit/internal/config"
)

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		quality  config.VideoQuality
		expected string
	}{
		{config.QualityBest, "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
		{config.Quality1080p, "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080]"},
		{config.Quality720p, "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720]"},
		{config.Quality480p, "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480]"},
		{config.Quality360p, "bestvideo[height<=360][ext=mp4]+bestaudio[ext=m4a]/best[height<=360]"},
		// Unknown tiers fall back to best
		{config.VideoQuality("4k"), "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
		{config.VideoQuality(""), "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
	}

	for _, test := range tests {
		result := FormatSelector(test.quality)
		if result != test.expected {
			t.Errorf("FormatSelector(%q) = %q, expected %q", test.quality, result, test.expected)
		}
	}
}

func TestFormatSelector_Deterministic(t *testing.T) {
	for _, quality := range config.VideoQualities {
		tier := config.VideoQuality(quality)
		first := FormatSelector(tier)
		for i := 0; i < 3; i++ {
			if FormatSelector(tier) != first {
				t.Fatalf("FormatSelector(%q) is not deterministic", quality)
			}
		}
	}
}

func TestAudioSelector(t *testing.T) {
	if AudioSelector != "bestaudio/best" {
		t.Errorf("AudioSelector = %q, expected %q", AudioSelector, "bestaudio/best")
	}
}
