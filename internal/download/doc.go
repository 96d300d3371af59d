// Package download drives yt-dlp (via github.com/lrstanley/go-ytdlp) for the
// download commands. It maps quality tiers to yt-dlp format selectors, builds
// the engine configuration, and forwards progress updates to a callback. All
// operations are synchronous; one engine invocation runs at a time.
package download
