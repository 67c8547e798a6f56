package platform

// Package platform contains OS/platform integration and external tooling glue:
// yt-dlp output parsing, scratch directories for downloads, playlist listing,
// and OS open/reveal.
