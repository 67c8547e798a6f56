package media

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Executable and I/O constants
const (
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
)

// ErrFFmpegMissing means yt-dlp cannot merge streams or transcode audio
var ErrFFmpegMissing = errors.New("ffmpeg not found in PATH")

// FFmpeg probes the ffmpeg and ffprobe executables
type FFmpeg struct {
	lookPath func(file string) (string, error)
	output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewFFmpeg creates a prober backed by the executables in PATH
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		lookPath: exec.LookPath,
		output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// CheckFFmpeg reports whether ffmpeg is installed
func (f *FFmpeg) CheckFFmpeg() error {
	if _, err := f.lookPath(FFmpegCommand); err != nil {
		return fmt.Errorf("%w: %v", ErrFFmpegMissing, err)
	}
	return nil
}

// Duration returns the play time of a media file using ffprobe
func (f *FFmpeg) Duration(ctx context.Context, filePath string) (time.Duration, error) {
	output, err := f.output(ctx, FFprobeCommand, BuildFFprobeArgs(filePath)...)
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	return parseDuration(string(output))
}

// BuildFFprobeArgs builds the ffprobe arguments that print only the duration
func BuildFFprobeArgs(filePath string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		filePath,
	}
}

func parseDuration(raw string) (time.Duration, error) {
	durationStr := strings.TrimSpace(raw)
	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative duration: %s", durationStr)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
