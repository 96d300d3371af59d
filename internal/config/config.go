package config

// Quality tiers for video downloads
type VideoQuality string

const (
	QualityBest  VideoQuality = "best"
	Quality1080p VideoQuality = "1080p"
	Quality720p  VideoQuality = "720p"
	Quality480p  VideoQuality = "480p"
	Quality360p  VideoQuality = "360p"
)

// Default output directories
const (
	DefaultVideoDir    = "downloads"
	DefaultAudioDir    = "downloads/audio"
	DefaultPlaylistDir = "downloads/playlists"
)

// Default format and codec settings
const (
	DefaultVideoFormat   = "mp4"
	DefaultConvertFormat = "mp4"
	DefaultAudioFormat   = "mp3"
	DefaultAudioQuality  = "192"
	DefaultVideoCodec    = "libx264"
	DefaultAudioCodec    = "aac"
	DefaultAudioBitrate  = "192k"
)

// Enumerated flag choices
var (
	VideoQualities = []string{"best", "1080p", "720p", "480p", "360p"}
	VideoFormats   = []string{"mp4", "webm", "mkv"}
	ConvertFormats = []string{"mp4", "webm", "mkv", "avi"}
	AudioFormats   = []string{"mp3", "m4a", "wav", "flac", "opus"}
	AudioQualities = []string{"320", "256", "192", "128", "96"}
)

// IsValidChoice reports whether value is one of the enumerated choices
func IsValidChoice(value string, choices []string) bool {
	for _, choice := range choices {
		if value == choice {
			return true
		}
	}
	return false
}
