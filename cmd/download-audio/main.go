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
	fs := flag.NewFlagSet("download-audio", flag.ExitOnError)
	var (
		output     string
		format     string
		quality    string
		noCheckTLS bool
	)
	fs.StringVar(&output, "o", config.DefaultAudioDir, "Output directory")
	fs.StringVar(&output, "output", config.DefaultAudioDir, "Output directory")
	fs.StringVar(&format, "f", config.DefaultAudioFormat, "Audio format (mp3, m4a, wav, flac, opus)")
	fs.StringVar(&format, "format", config.DefaultAudioFormat, "Audio format (mp3, m4a, wav, flac, opus)")
	fs.StringVar(&quality, "q", config.DefaultAudioQuality, "Audio quality in kbps (320, 256, 192, 128, 96)")
	fs.StringVar(&quality, "quality", config.DefaultAudioQuality, "Audio quality in kbps (320, 256, 192, 128, 96)")
	fs.BoolVar(&noCheckTLS, "no-check-certificate", false, "Skip SSL certificate verification (use if you get SSL errors)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: download-audio [options] URL")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Extract audio tracks from videos.")
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

	if !config.IsValidChoice(format, config.AudioFormats) {
		fmt.Fprintf(os.Stderr, "Error: Invalid format %q, choose one of %v\n", format, config.AudioFormats)
		return 1
	}
	if !config.IsValidChoice(quality, config.AudioQualities) {
		fmt.Fprintf(os.Stderr, "Error: Invalid quality %q, choose one of %v\n", quality, config.AudioQualities)
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

	fmt.Printf("Downloading audio from: %s\n", url)

	task, err := service.DownloadAudio(context.Background(), url, download.AudioOptions{
		Format:  format,
		Quality: quality,
	})
	printer.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading audio: %v\n", err)
		return 1
	}

	fmt.Printf("Successfully extracted audio: %s\n", task.GetDisplayTitle())
	return 0
}
