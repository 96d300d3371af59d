package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ytget/vidkit/internal/cli"
	"github.com/ytget/vidkit/internal/config"
	"github.com/ytget/vidkit/internal/download"
	"github.com/ytget/vidkit/internal/model"
	"github.com/ytget/vidkit/internal/platform"
	"github.com/ytget/vidkit/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("download-playlist", flag.ExitOnError)
	var (
		output     string
		quality    string
		format     string
		audioOnly  bool
		start      int
		end        int
		noCheckTLS bool
	)
	fs.StringVar(&output, "o", config.DefaultPlaylistDir, "Output directory")
	fs.StringVar(&output, "output", config.DefaultPlaylistDir, "Output directory")
	fs.StringVar(&quality, "q", string(config.QualityBest), "Video quality (best, 1080p, 720p, 480p, 360p)")
	fs.StringVar(&quality, "quality", string(config.QualityBest), "Video quality (best, 1080p, 720p, 480p, 360p)")
	fs.StringVar(&format, "f", config.DefaultVideoFormat, "Output format (mp4, webm, mkv)")
	fs.StringVar(&format, "format", config.DefaultVideoFormat, "Output format (mp4, webm, mkv)")
	fs.BoolVar(&audioOnly, "a", false, "Download audio only")
	fs.BoolVar(&audioOnly, "audio-only", false, "Download audio only")
	fs.IntVar(&start, "s", 1, "Playlist video to start at (1-based)")
	fs.IntVar(&start, "start", 1, "Playlist video to start at (1-based)")
	fs.IntVar(&end, "e", 0, "Playlist video to end at (0 means the last one)")
	fs.IntVar(&end, "end", 0, "Playlist video to end at (0 means the last one)")
	fs.BoolVar(&noCheckTLS, "no-check-certificate", false, "Skip SSL certificate verification (use if you get SSL errors)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: download-playlist [options] URL")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Download entire playlists or a range of their videos.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
	}

	url, rest := cli.SplitPositional(args)
	fs.Parse(rest)
	if url == "" {
		if fs.NArg() < 1 {
			fs.Usage()
			return 1
		}
		url = fs.Arg(0)
	}

	if !config.IsValidChoice(quality, config.VideoQualities) {
		fmt.Fprintf(os.Stderr, "Error: Invalid quality %q, choose one of %v\n", quality, config.VideoQualities)
		return 1
	}
	if !config.IsValidChoice(format, config.VideoFormats) {
		fmt.Fprintf(os.Stderr, "Error: Invalid format %q, choose one of %v\n", format, config.VideoFormats)
		return 1
	}

	if err := platform.CreateDirectoryIfNotExists(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		return 1
	}

	ctx := context.Background()

	fmt.Printf("Resolving playlist: %s\n", url)
	playlist, err := platform.NewPlaylistResolver().Resolve(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading playlist: %v\n", err)
		return 1
	}
	fmt.Printf("Found %d videos in playlist: %s\n", len(playlist.Entries), playlist.Title)

	service := download.NewService(output)
	service.SetNoCheckCertificate(noCheckTLS)

	printer := ui.NewProgressPrinter(os.Stdout)
	service.SetUpdateCallback(func(task *model.DownloadTask) {
		if task.Status == model.TaskStatusRunning {
			printer.UpdateDownload(task)
		}
	})

	report, err := service.DownloadPlaylist(ctx, playlist, download.PlaylistOptions{
		Start:     start,
		End:       end,
		AudioOnly: audioOnly,
		Quality:   config.VideoQuality(quality),
		Format:    format,
	})
	printer.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading playlist: %v\n", err)
		return 1
	}

	fmt.Printf("Successfully downloaded playlist: %s\n", report.Title)
	fmt.Printf("Total videos downloaded: %d\n", report.Downloaded)
	return 0
}
