package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/vidkit/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
)

// Playlist title derivation
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// PlaylistResolver resolves a playlist URL into its entries
type PlaylistResolver struct {
	timeout time.Duration
}

// NewPlaylistResolver creates a new playlist resolver
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for resolve operations
func (r *PlaylistResolver) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Resolve fetches the playlist item list and returns a populated playlist
func (r *PlaylistResolver) Resolve(ctx context.Context, url string) (*model.Playlist, error) {
	if !r.isValidPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID := r.extractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := &model.Playlist{
		ID:    playlistID,
		Title: DefaultPlaylistName,
		URL:   url,
	}
	for _, it := range items {
		playlist.AddEntry(&model.PlaylistEntry{
			ID:     it.VideoID,
			Title:  it.Title,
			URL:    fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Status: model.EntryStatusPending,
		})
	}

	playlist.Title = r.extractPlaylistTitle(playlist.Entries)

	return playlist, nil
}

// extractPlaylistTitle generates a title for the playlist based on its entries
func (r *PlaylistResolver) extractPlaylistTitle(entries []*model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		firstTitle := entries[0].Title
		commonPrefix := r.findCommonPrefix(firstTitle, entries[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func (r *PlaylistResolver) findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}

// isValidPlaylistURL checks if the URL is a valid YouTube playlist URL
func (r *PlaylistResolver) isValidPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// extractPlaylistID extracts the playlist ID from various URL formats
func (r *PlaylistResolver) extractPlaylistID(url string) string {
	if strings.Contains(url, PlaylistParam) {
		parts := strings.Split(url, PlaylistParam)
		if len(parts) > 1 {
			playlistPart := parts[1]
			if strings.Contains(playlistPart, ParamSeparator) {
				playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
			}
			return playlistPart
		}
	}
	return ""
}
