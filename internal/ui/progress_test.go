package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ytget/vidkit/internal/model"
)

func TestProgressPrinter_UpdateDownload(t *testing.T) {
	var buf bytes.Buffer
	printer := NewProgressPrinter(&buf)

	printer.UpdateDownload(&model.DownloadTask{Percent: 42, Speed: "1.5MB/s", ETASec: 90})

	out := buf.String()
	if !strings.Contains(out, "Progress: 42%") {
		t.Errorf("Expected percent in output, got %q", out)
	}
	if !strings.Contains(out, "1.5MB/s") {
		t.Errorf("Expected speed in output, got %q", out)
	}
	if !strings.Contains(out, "01:30") {
		t.Errorf("Expected ETA in output, got %q", out)
	}
	if !strings.HasPrefix(out, "\r") {
		t.Error("Expected progress line to start with carriage return")
	}
}

func TestProgressPrinter_Done(t *testing.T) {
	var buf bytes.Buffer
	printer := NewProgressPrinter(&buf)

	// Done without updates must not emit anything
	printer.Done()
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}

	printer.UpdateTranscode(&model.TranscodeTask{Percent: 10})
	printer.Done()
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Expected Done to terminate the line with a newline")
	}

	// A second Done is a no-op
	before := buf.Len()
	printer.Done()
	if buf.Len() != before {
		t.Error("Expected repeated Done to be a no-op")
	}
}
