package download

import "github.com/ytget/vidkit/internal/config"

// AudioSelector is the yt-dlp format selector used for audio-only downloads
const AudioSelector = "bestaudio/best"

// bestSelector is the fallback for unknown quality tiers
const bestSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// qualitySelectors maps quality tiers to yt-dlp format selector expressions
var qualitySelectors = map[config.VideoQuality]string{
	config.QualityBest:  bestSelector,
	config.Quality1080p: "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080]",
	config.Quality720p:  "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720]",
	config.Quality480p:  "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480]",
	config.Quality360p:  "bestvideo[height<=360][ext=mp4]+bestaudio[ext=m4a]/best[height<=360]",
}

// FormatSelector returns the yt-dlp format selector for a quality tier.
// Unknown tiers fall back to the best-quality selector.
func FormatSelector(quality config.VideoQuality) string {
	if selector, ok := qualitySelectors[quality]; ok {
		return selector
	}
	return bestSelector
}
