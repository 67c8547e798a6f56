package media

import (
	"context"
	"time"
)

// Prober inspects the local ffmpeg toolchain that yt-dlp relies on for
// merging streams and extracting audio.
type Prober interface {
	CheckFFmpeg() error
	Duration(ctx context.Context, filePath string) (time.Duration, error)
}
