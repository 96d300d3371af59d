package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ytget/vidkit/internal/cli"
	"github.com/ytget/vidkit/internal/config"
	"github.com/ytget/vidkit/internal/model"
	"github.com/ytget/vidkit/internal/transcode"
	"github.com/ytget/vidkit/internal/ui"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	if isHelp(args[0]) {
		printUsage()
		return
	}

	switch args[0] {
	case "convert":
		os.Exit(convertCmd(args[1:]))
	case "clip":
		os.Exit(clipCmd(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func convertCmd(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var (
		output     string
		format     string
		resolution string
		vcodec     string
		acodec     string
		vbitrate   string
		abitrate   string
	)
	fs.StringVar(&output, "o", "", "Output file path")
	fs.StringVar(&output, "output", "", "Output file path")
	fs.StringVar(&format, "f", config.DefaultConvertFormat, "Output format (mp4, webm, mkv, avi)")
	fs.StringVar(&format, "format", config.DefaultConvertFormat, "Output format (mp4, webm, mkv, avi)")
	fs.StringVar(&resolution, "r", "", "Output resolution (e.g., 1920x1080, 1280x720)")
	fs.StringVar(&resolution, "resolution", "", "Output resolution (e.g., 1920x1080, 1280x720)")
	fs.StringVar(&vcodec, "vcodec", config.DefaultVideoCodec, "Video codec")
	fs.StringVar(&acodec, "acodec", config.DefaultAudioCodec, "Audio codec")
	fs.StringVar(&vbitrate, "vbitrate", "", "Video bitrate (e.g., 2M)")
	fs.StringVar(&abitrate, "abitrate", config.DefaultAudioBitrate, "Audio bitrate")

	input, rest := cli.SplitPositional(args)
	fs.Parse(rest)
	if input == "" {
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: Input video file is required")
			return 1
		}
		input = fs.Arg(0)
	}

	if !config.IsValidChoice(format, config.ConvertFormats) {
		fmt.Fprintf(os.Stderr, "Error: Invalid format %q, choose one of %v\n", format, config.ConvertFormats)
		return 1
	}

	opts := transcode.ConvertOptions{
		Input:        input,
		Output:       output,
		Format:       format,
		Resolution:   resolution,
		VideoCodec:   vcodec,
		AudioCodec:   acodec,
		VideoBitrate: vbitrate,
		AudioBitrate: abitrate,
	}

	service := transcode.NewService(transcode.DefaultConfig())
	printer := ui.NewProgressPrinter(os.Stdout)
	service.SetUpdateCallback(func(task *model.TranscodeTask) {
		if task.Status == model.TaskStatusRunning {
			printer.UpdateTranscode(task)
		}
	})

	fmt.Printf("Converting: %s -> %s\n", input, opts.OutputPath())

	task, err := service.Convert(context.Background(), opts)
	printer.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting video: %v\n", err)
		return 1
	}

	fmt.Printf("Successfully converted to: %s\n", task.OutputPath)
	return 0
}

func clipCmd(args []string) int {
	fs := flag.NewFlagSet("clip", flag.ExitOnError)
	var (
		output   string
		start    string
		duration string
		end      string
	)
	fs.StringVar(&output, "o", "", "Output file path (required)")
	fs.StringVar(&output, "output", "", "Output file path (required)")
	fs.StringVar(&start, "s", "", "Start time (HH:MM:SS or seconds, required)")
	fs.StringVar(&start, "start", "", "Start time (HH:MM:SS or seconds, required)")
	fs.StringVar(&duration, "d", "", "Duration in seconds")
	fs.StringVar(&duration, "duration", "", "Duration in seconds")
	fs.StringVar(&end, "e", "", "End time (HH:MM:SS or seconds)")
	fs.StringVar(&end, "end", "", "End time (HH:MM:SS or seconds)")

	input, rest := cli.SplitPositional(args)
	fs.Parse(rest)
	if input == "" {
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: Input video file is required")
			return 1
		}
		input = fs.Arg(0)
	}

	if output == "" {
		fmt.Fprintln(os.Stderr, "Error: Output file path is required")
		return 1
	}
	if start == "" {
		fmt.Fprintln(os.Stderr, "Error: Start time is required")
		return 1
	}

	service := transcode.NewService(transcode.DefaultConfig())
	printer := ui.NewProgressPrinter(os.Stdout)
	service.SetUpdateCallback(func(task *model.TranscodeTask) {
		if task.Status == model.TaskStatusRunning {
			printer.UpdateTranscode(task)
		}
	})

	fmt.Printf("Extracting clip from: %s\n", input)

	task, err := service.Clip(context.Background(), transcode.ClipOptions{
		Input:    input,
		Output:   output,
		Start:    start,
		Duration: duration,
		End:      end,
	})
	printer.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting clip: %v\n", err)
		return 1
	}

	fmt.Printf("Successfully extracted clip to: %s\n", task.OutputPath)
	return 0
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func printUsage() {
	out := os.Stderr
	fmt.Fprintln(out, "Usage: convert-video <command> [options] INPUT")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Convert videos using FFmpeg.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  convert   Convert video format/resolution")
	fmt.Fprintln(out, "  clip      Extract a clip from video (stream copy)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  convert-video convert input.mov -f mp4 -r 1280x720")
	fmt.Fprintln(out, "  convert-video clip input.mp4 -o out.mp4 -s 00:00:10 -d 5")
}
