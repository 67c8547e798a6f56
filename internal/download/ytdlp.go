package download

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/alessio/shellescape"
	"github.com/lrstanley/go-ytdlp"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/clippy/internal/model"
	"github.com/ytget/clippy/internal/platform"
)

// DefaultProgressInterval throttles progress callbacks
const DefaultProgressInterval = 500 * time.Millisecond

// MovedPathPrint makes yt-dlp print the final path once post-processing
// has moved the file into place
const MovedPathPrint = "after_move:filepath"

// ErrExtractorMissing is returned when the yt-dlp executable cannot be run
var ErrExtractorMissing = errors.New("yt-dlp executable not found")

// YTDLP runs the yt-dlp executable
type YTDLP struct {
	proxy            string
	progressInterval time.Duration
}

// NewYTDLP creates an extractor backed by the yt-dlp binary in PATH
func NewYTDLP() *YTDLP {
	return &YTDLP{progressInterval: DefaultProgressInterval}
}

// SetProxy routes yt-dlp traffic through the given proxy URL
func (y *YTDLP) SetProxy(proxy string) {
	y.proxy = proxy
}

// Extract runs yt-dlp once. Metadata is read from the JSON document yt-dlp
// prints: --dump-single-json for lookups, --print-json after downloads.
func (y *YTDLP) Extract(ctx context.Context, url string, opts Options) (*model.VideoInfo, error) {
	dl := y.command(opts)

	if opts.Progress != nil {
		report := opts.Progress
		dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
			report(progressFromUpdate(update))
		})
	}

	result, err := dl.Run(ctx, url)
	if result != nil {
		log.WithField("exit_code", result.ExitCode).
			Debugf("ran %s", shellescape.QuoteCommand(append([]string{result.Executable}, result.Args...)))
	}
	if err != nil {
		return nil, classifyRunError(url, result, err)
	}

	info, err := platform.ParseVideoInfo(result.Stdout)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// command translates Options into yt-dlp flags
func (y *YTDLP) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New()

	if opts.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if y.proxy != "" {
		dl = dl.Proxy(y.proxy)
	}
	if opts.Format != "" {
		dl = dl.Format(opts.Format)
	}

	if opts.SkipDownload {
		return dl.SkipDownload().DumpSingleJSON()
	}

	dl = dl.PrintJSON().Print(MovedPathPrint)
	if opts.OutputTemplate != "" {
		dl = dl.Output(opts.OutputTemplate)
	}
	if opts.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		dl = dl.ExtractAudio()
		if opts.AudioFormat != "" {
			dl = dl.AudioFormat(opts.AudioFormat)
		}
		if opts.AudioQuality != "" {
			dl = dl.AudioQuality(opts.AudioQuality)
		}
	}
	if opts.Continue {
		dl = dl.Continue()
	}
	return dl
}

// classifyRunError maps go-ytdlp failures onto the app's failure kinds
func classifyRunError(url string, result *ytdlp.Result, err error) error {
	if exitErr, ok := ytdlp.IsExitCodeError(err); ok {
		dlErr := &DownloadError{URL: url, Err: exitErr}
		if result != nil {
			dlErr.ExitCode = result.ExitCode
			dlErr.Message = lastErrorLine(result.Stderr)
		}
		return dlErr
	}
	if _, ok := ytdlp.IsMisconfigError(err); ok || errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrExtractorMissing, err)
	}
	return fmt.Errorf("failed to run yt-dlp: %w", err)
}

func progressFromUpdate(update ytdlp.ProgressUpdate) Progress {
	p := Progress{
		Status:          update.Status,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Started:         update.Started,
	}
	if !update.Started.IsZero() {
		p.ETA = update.ETA()
	}
	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}
	return p
}
