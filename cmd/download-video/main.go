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
	fs := flag.NewFlagSet("download-video", flag.ExitOnError)
	var (
		output     string
		quality    string
		format     string
		noCheckTLS bool
	)
	fs.StringVar(&output, "o", config.DefaultVideoDir, "Output directory")
	fs.StringVar(&output, "output", config.DefaultVideoDir, "Output directory")
	fs.StringVar(&quality, "q", string(config.QualityBest), "Video quality (best, 1080p, 720p, 480p, 360p)")
	fs.StringVar(&quality, "quality", string(config.QualityBest), "Video quality (best, 1080p, 720p, 480p, 360p)")
	fs.StringVar(&format, "f", config.DefaultVideoFormat, "Output format (mp4, webm, mkv)")
	fs.StringVar(&format, "format", config.DefaultVideoFormat, "Output format (mp4, webm, mkv)")
	fs.BoolVar(&noCheckTLS, "no-check-certificate", false, "Skip SSL certificate verification (use if you get SSL errors)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: download-video [options] URL")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Download videos in various quality options.")
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

	service := download.NewService(output)
	service.SetNoCheckCertificate(noCheckTLS)

	printer := ui.NewProgressPrinter(os.Stdout)
	service.SetUpdateCallback(func(task *model.DownloadTask) {
		if task.Status == model.TaskStatusRunning {
			printer.UpdateDownload(task)
		}
	})

	fmt.Printf("Downloading video from: %s\n", url)

	task, err := service.DownloadVideo(context.Background(), url, download.VideoOptions{
		Quality: config.VideoQuality(quality),
		Format:  format,
	})
	printer.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading video: %v\n", err)
		return 1
	}

	fmt.Printf("Successfully downloaded: %s\n", task.GetDisplayTitle())
	return 0
}
