package download

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDownload matches every failure reported by yt-dlp itself: network
// blocks, geo restrictions, private videos and login walls
var ErrDownload = errors.New("yt-dlp download error")

// User-facing messages
const (
	FetchBlockedMessage    = "⚠ Unable to fetch video info. The video might be geo-blocked or private."
	DownloadBlockedMessage = "⚠ Unable to download. This video may be blocked in this region or require login."
	fetchGenericPrefix     = "⚠ Error: "
	downloadGenericPrefix  = "⚠ An error occurred: "
)

const ytdlpErrorPrefix = "ERROR:"

// DownloadError is returned when yt-dlp ran and exited with a failure
type DownloadError struct {
	URL      string
	ExitCode int
	Message  string // last ERROR: line printed by yt-dlp
	Err      error
}

func (e *DownloadError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("yt-dlp failed for %s (exit code %d): %s", e.URL, e.ExitCode, msg)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDownload) true for every DownloadError
func (e *DownloadError) Is(target error) bool {
	return target == ErrDownload
}

// IsDownloadError reports whether err is the yt-dlp failure kind
func IsDownloadError(err error) bool {
	return errors.Is(err, ErrDownload)
}

// FetchFailureMessage returns the text shown when metadata lookup fails
func FetchFailureMessage(err error) string {
	if IsDownloadError(err) {
		return FetchBlockedMessage
	}
	return fetchGenericPrefix + errorText(err)
}

// DownloadFailureMessage returns the text shown when a download fails
func DownloadFailureMessage(err error) string {
	if IsDownloadError(err) {
		return DownloadBlockedMessage
	}
	return downloadGenericPrefix + errorText(err)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// lastErrorLine picks the reason yt-dlp gave for failing
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ytdlpErrorPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, ytdlpErrorPrefix))
		}
		if last == "" {
			last = line
		}
	}
	return last
}
