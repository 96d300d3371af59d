// Package ui renders task progress on the terminal. Progress lines are
// rewritten in place with a carriage return; Done terminates the line so
// the final report starts on its own row.
package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/vidkit/internal/model"
)

// ProgressPrinter writes single-line progress updates to a terminal
type ProgressPrinter struct {
	w io.Writer

	mu      sync.Mutex
	printed bool
}

// NewProgressPrinter creates a printer writing to w
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

// UpdateDownload renders the state of a download task
func (p *ProgressPrinter) UpdateDownload(task *model.DownloadTask) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("Progress: %d%%", task.Percent)
	if task.Speed != "" {
		line += fmt.Sprintf(" at %s", task.Speed)
	}
	if task.ETASec > 0 {
		line += fmt.Sprintf(", ETA %s", task.GetETAString())
	}
	fmt.Fprintf(p.w, "\r%-60s", line)
	p.printed = true
}

// UpdateTranscode renders the state of a transcode task
func (p *ProgressPrinter) UpdateTranscode(task *model.TranscodeTask) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "\r%-60s", fmt.Sprintf("Progress: %d%%", task.Percent))
	p.printed = true
}

// Done terminates the progress line if one was printed
func (p *ProgressPrinter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.printed {
		fmt.Fprintln(p.w)
		p.printed = false
	}
}
