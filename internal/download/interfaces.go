package download

import (
	"context"
	"io"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/clippy/internal/model"
)

// Extractor is the media-extraction collaborator. A single call either
// resolves metadata (SkipDownload) or downloads the requested option.
type Extractor interface {
	Extract(ctx context.Context, url string, opts Options) (*model.VideoInfo, error)
}

// Options mirrors the yt-dlp options the app sets
type Options struct {
	Format            string // selector, empty for yt-dlp's default
	OutputTemplate    string
	SkipDownload      bool
	ExtractAudio      bool
	AudioFormat       string
	AudioQuality      string
	MergeOutputFormat string
	NoPlaylist        bool
	Continue          bool
	Progress          func(Progress)
}

// Progress is a single progress report from the collaborator
type Progress struct {
	Status          ytdlp.ProgressStatus
	Title           string
	DownloadedBytes int64
	TotalBytes      int64
	Started         time.Time
	ETA             time.Duration
}

// Finished reports whether yt-dlp finished transferring the current file
func (p Progress) Finished() bool {
	return p.Status.IsCompletedType() && p.Status != ytdlp.ProgressStatusError
}

// Percent returns the transferred share in the 0..100 range
func (p Progress) Percent() float64 {
	if p.TotalBytes <= 0 {
		return 0
	}
	percent := float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// Request describes one download
type Request struct {
	URL            string
	Selector       string
	OutputTemplate string
	Merge          bool // selector pairs a video-only stream with audio
	ExtractAudio   bool
	AudioFormat    string
	AudioQuality   string
	Continue       bool
	Progress       func(Progress)
}

// Artifact is a finished file handed to the user
type Artifact struct {
	Name     string
	Path     string
	MimeType string
	Size     int64
}

// Deliverer offers a finished file to the user, typically through a save
// dialog. The reader is only valid until the call returns.
type Deliverer func(artifact Artifact, content io.Reader) error

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	SetMergeOutputFormat(format string)
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	ResolveSelector(ctx context.Context, url, formatID string) (string, bool, error)
	Download(ctx context.Context, req Request) (*model.DownloadTask, error)
	DownloadAndOffer(ctx context.Context, req Request, deliver Deliverer) (*model.DownloadTask, error)
}
