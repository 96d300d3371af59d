// Package transcode drives ffmpeg (via github.com/floostack/transcoder) for
// the convert and clip commands. Option builders translate validated CLI
// options into the engine's configuration; validation failures happen before
// the engine is ever invoked.
package transcode
