package transcode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/google/uuid"

	"github.com/ytget/vidkit/internal/model"
	"github.com/ytget/vidkit/internal/platform"
)

// Engine binaries resolved from PATH by default
const (
	DefaultFfmpegBinPath  = "ffmpeg"
	DefaultFfprobeBinPath = "ffprobe"
)

// TaskIDPrefix prefixes generated transcode task IDs
const TaskIDPrefix = "transcode-"

// Config locates the engine binaries
type Config struct {
	FfmpegBinPath  string
	FfprobeBinPath string
}

// DefaultConfig returns a config resolving binaries from PATH
func DefaultConfig() Config {
	return Config{
		FfmpegBinPath:  DefaultFfmpegBinPath,
		FfprobeBinPath: DefaultFfprobeBinPath,
	}
}

// Service handles transcode operations
type Service struct {
	cfg      Config
	onUpdate func(*model.TranscodeTask) // callback for progress rendering
}

// NewService creates a new transcode service
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.TranscodeTask)) {
	s.onUpdate = callback
}

// Convert re-encodes the input into the requested container, codecs, and
// resolution. The input must exist and the options must validate before the
// engine is invoked.
func (s *Service) Convert(ctx context.Context, opts ConvertOptions) (*model.TranscodeTask, error) {
	if !platform.FileExists(opts.Input) {
		return nil, fmt.Errorf("input file '%s' not found", opts.Input)
	}

	ffOpts, err := buildConvertOptions(opts)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, opts.Input, opts.OutputPath(), ffOpts)
}

// Clip extracts a time range from the input by stream copy, bounded by the
// start time and exactly one of duration or end time.
func (s *Service) Clip(ctx context.Context, opts ClipOptions) (*model.TranscodeTask, error) {
	ffOpts, err := buildClipOptions(opts)
	if err != nil {
		return nil, err
	}

	if !platform.FileExists(opts.Input) {
		return nil, fmt.Errorf("input file '%s' not found", opts.Input)
	}

	return s.run(ctx, opts.Input, opts.Output, ffOpts)
}

// run invokes ffmpeg and drains its progress channel into the task
func (s *Service) run(ctx context.Context, input, output string, ffOpts *ffmpeg.Options) (*model.TranscodeTask, error) {
	task := &model.TranscodeTask{
		ID:         generateTaskID(),
		InputPath:  input,
		OutputPath: output,
		Status:     model.TaskStatusStarting,
		StartedAt:  time.Now(),
	}
	s.notifyUpdate(task)

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(output)); err != nil {
		return s.fail(task, fmt.Errorf("failed to create output directory: %w", err))
	}

	trans := ffmpeg.
		New(&ffmpeg.Config{
			ProgressEnabled: true,
			FfmpegBinPath:   s.cfg.FfmpegBinPath,
			FfprobeBinPath:  s.cfg.FfprobeBinPath,
		}).
		Input(input).
		Output(output).
		WithContext(&ctx)

	progressChannel, err := trans.Start(ffOpts)
	if err != nil {
		return s.fail(task, err)
	}

	task.Status = model.TaskStatusRunning
	s.notifyUpdate(task)

	for prog := range progressChannel {
		percent := prog.GetProgress()
		if percent > 100 {
			percent = 100
		}
		task.Progress = percent / 100.0
		task.Percent = int(percent)
		s.notifyUpdate(task)
	}

	// The engine library only reports start-up failures; ffmpeg dying mid-run
	// closes the progress channel without an error. Verify the output exists
	// before declaring success.
	info, statErr := os.Stat(output)
	if statErr != nil || info.Size() == 0 {
		return s.fail(task, fmt.Errorf("ffmpeg exited without producing output file '%s'", output))
	}

	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)

	return task, nil
}

// fail marks the task as errored and returns the original error
func (s *Service) fail(task *model.TranscodeTask, err error) (*model.TranscodeTask, error) {
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)
	return task, err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.TranscodeTask) {
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
