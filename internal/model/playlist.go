package model

import "fmt"

// EntryStatus represents the status of a single video in a playlist
type EntryStatus string

const (
	EntryStatusPending     EntryStatus = "pending"
	EntryStatusDownloading EntryStatus = "downloading"
	EntryStatusCompleted   EntryStatus = "completed"
	EntryStatusError       EntryStatus = "error"
)

// PlaylistEntry represents a single video in a playlist
type PlaylistEntry struct {
	Index      int    // 1-based position within the playlist
	ID         string // video ID
	Title      string
	URL        string
	Status     EntryStatus
	Error      string // failure reason, set when Status is EntryStatusError
	OutputPath string // path to downloaded file
}

// Playlist represents a resolved playlist and its videos
type Playlist struct {
	ID      string
	Title   string
	URL     string
	Entries []*PlaylistEntry
}

// AddEntry appends an entry and assigns its 1-based index
func (p *Playlist) AddEntry(entry *PlaylistEntry) {
	entry.Index = len(p.Entries) + 1
	p.Entries = append(p.Entries, entry)
}

// Range returns the entries with 1-based inclusive indices [start, end].
// An end of 0 means "through the last entry". Start values past the end of
// the playlist yield an error; an end beyond the playlist is clamped.
func (p *Playlist) Range(start, end int) ([]*PlaylistEntry, error) {
	if start < 1 {
		return nil, fmt.Errorf("start index must be at least 1, got %d", start)
	}
	if end != 0 && end < start {
		return nil, fmt.Errorf("end index %d is before start index %d", end, start)
	}
	if start > len(p.Entries) {
		return nil, fmt.Errorf("start index %d exceeds playlist length %d", start, len(p.Entries))
	}
	if end == 0 || end > len(p.Entries) {
		end = len(p.Entries)
	}
	return p.Entries[start-1 : end], nil
}

// CompletedCount returns the number of successfully downloaded entries
func (p *Playlist) CompletedCount() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.Status == EntryStatusCompleted {
			count++
		}
	}
	return count
}

// PlaylistReport summarizes the outcome of a playlist download batch
type PlaylistReport struct {
	Title      string
	Requested  int // entries selected by the index range
	Downloaded int // entries that completed successfully
	Failed     int // entries that errored and were skipped
}
