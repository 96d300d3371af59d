package download

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/vidkit/internal/config"
	"github.com/ytget/vidkit/internal/model"
)

// DefaultOutputTemplate is the yt-dlp output filename template
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// ProgressInterval is how often yt-dlp progress updates are sampled
const ProgressInterval = 500 * time.Millisecond

// TaskIDPrefix prefixes generated download task IDs
const TaskIDPrefix = "download-"

// VideoOptions configures a single-video download
type VideoOptions struct {
	Quality        config.VideoQuality
	Format         string // target container (mp4, webm, mkv)
	OutputTemplate string // yt-dlp filename template, defaults to DefaultOutputTemplate
}

// AudioOptions configures an audio-only download
type AudioOptions struct {
	Format         string // target codec (mp3, m4a, wav, flac, opus)
	Quality        string // bitrate in kbps (320, 256, 192, 128, 96)
	OutputTemplate string
}

// PlaylistOptions configures a playlist download batch
type PlaylistOptions struct {
	Start     int // first video number, 1-based
	End       int // last video number inclusive, 0 means the whole tail
	AudioOnly bool
	Quality   config.VideoQuality
	Format    string
}

// Service handles download operations
type Service struct {
	outputDir          string
	noCheckCertificate bool
	onUpdate           func(*model.DownloadTask) // callback for progress rendering
}

// NewService creates a new download service writing into outputDir
func NewService(outputDir string) *Service {
	return &Service{outputDir: outputDir}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// SetNoCheckCertificate disables TLS certificate validation for fetches
func (s *Service) SetNoCheckCertificate(enabled bool) {
	s.noCheckCertificate = enabled
}

// DownloadVideo downloads a single video and reports the finished task.
// The returned task is populated even on failure so callers can inspect it.
func (s *Service) DownloadVideo(ctx context.Context, url string, opts VideoOptions) (*model.DownloadTask, error) {
	dl := s.newCommand(opts.OutputTemplate).
		Format(FormatSelector(opts.Quality)).
		MergeOutputFormat(opts.Format).
		RecodeVideo(opts.Format)

	return s.run(ctx, url, dl)
}

// DownloadAudio downloads the audio stream of a video and extracts it to the
// requested codec and bitrate.
func (s *Service) DownloadAudio(ctx context.Context, url string, opts AudioOptions) (*model.DownloadTask, error) {
	dl := s.newCommand(opts.OutputTemplate).
		Format(AudioSelector).
		ExtractAudio().
		AudioFormat(opts.Format).
		AudioQuality(opts.Quality + "K")

	return s.run(ctx, url, dl)
}

// DownloadPlaylist downloads the entries of a resolved playlist within the
// requested index range. Item failures are recorded and skipped; they never
// abort the batch.
func (s *Service) DownloadPlaylist(ctx context.Context, playlist *model.Playlist, opts PlaylistOptions) (*model.PlaylistReport, error) {
	entries, err := playlist.Range(opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	report := &model.PlaylistReport{
		Title:     playlist.Title,
		Requested: len(entries),
	}

	for _, entry := range entries {
		entry.Status = model.EntryStatusDownloading
		template := fmt.Sprintf("%d - %s", entry.Index, DefaultOutputTemplate)

		var task *model.DownloadTask
		var dlErr error
		if opts.AudioOnly {
			task, dlErr = s.DownloadAudio(ctx, entry.URL, AudioOptions{
				Format:         config.DefaultAudioFormat,
				Quality:        config.DefaultAudioQuality,
				OutputTemplate: template,
			})
		} else {
			task, dlErr = s.DownloadVideo(ctx, entry.URL, VideoOptions{
				Quality:        opts.Quality,
				Format:         opts.Format,
				OutputTemplate: template,
			})
		}

		if dlErr != nil {
			entry.Status = model.EntryStatusError
			entry.Error = dlErr.Error()
			report.Failed++
			log.Printf("Skipping playlist entry %d (%s): %v", entry.Index, entry.ID, dlErr)
			continue
		}

		entry.Status = model.EntryStatusCompleted
		entry.OutputPath = task.OutputPath
		report.Downloaded++
	}

	return report, nil
}

// newCommand builds the yt-dlp invocation shared by all download kinds
func (s *Service) newCommand(outputTemplate string) *ytdlp.Command {
	if outputTemplate == "" {
		outputTemplate = DefaultOutputTemplate
	}

	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		Output(s.outputDir + "/" + outputTemplate)

	if s.noCheckCertificate {
		dl = dl.NoCheckCertificates()
	}
	return dl
}

// run executes the configured command for url and finalizes the task state
func (s *Service) run(ctx context.Context, url string, dl *ytdlp.Command) (*model.DownloadTask, error) {
	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       url,
		Status:    model.TaskStatusStarting,
		Progress:  0.0,
		Percent:   0,
		ETASec:    -1,
		StartedAt: time.Now(),
	}

	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		s.updateTaskProgress(task, &update)
	})

	task.Status = model.TaskStatusRunning
	s.notifyUpdate(task)

	result, err := dl.Run(ctx, url)

	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		s.notifyUpdate(task)
		return task, err
	}

	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100

	if result != nil {
		info, infoErr := result.GetExtractedInfo()
		if infoErr == nil && len(info) > 0 {
			if info[0].Title != nil && task.Title == "" {
				task.Title = *info[0].Title
			}
			if info[0].Filename != nil {
				task.OutputPath = *info[0].Filename
			}
		}
	}

	s.notifyUpdate(task)
	return task, nil
}

// updateTaskProgress updates task progress from yt-dlp info
func (s *Service) updateTaskProgress(task *model.DownloadTask, update *ytdlp.ProgressUpdate) {
	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	eta := update.ETA()
	if eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
