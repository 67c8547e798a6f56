package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/model"
)

const finalizingMessage = "Download finished, finalizing..."

// terminalProgress renders yt-dlp progress reports as a byte progress bar.
// Merged downloads transfer several files, each gets its own bar.
type terminalProgress struct {
	mu       sync.Mutex
	out      io.Writer
	bar      *progressbar.ProgressBar
	finished bool
}

func newTerminalProgress(out io.Writer) *terminalProgress {
	return &terminalProgress{out: out}
}

// Report consumes one progress report
func (tp *terminalProgress) Report(p download.Progress) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if p.Finished() {
		if tp.finished {
			return
		}
		if tp.bar != nil {
			_ = tp.bar.Set64(p.DownloadedBytes)
			_ = tp.bar.Finish()
			tp.bar = nil
		}
		fmt.Fprintln(tp.out)
		fmt.Fprintln(tp.out, finalizingMessage)
		tp.finished = true
		return
	}

	tp.finished = false
	if tp.bar == nil {
		tp.bar = tp.newBar(p.TotalBytes)
	}
	if p.TotalBytes > 0 && tp.bar.GetMax64() != p.TotalBytes {
		tp.bar.ChangeMax64(p.TotalBytes)
	}
	if p.ETA > 0 {
		tp.bar.Describe("ETA " + model.FormatClock(int(p.ETA.Seconds())))
	}
	_ = tp.bar.Set64(p.DownloadedBytes)
}

// Close drops an unfinished bar after a failure
func (tp *terminalProgress) Close() {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if tp.bar != nil {
		_ = tp.bar.Exit()
		fmt.Fprintln(tp.out)
		tp.bar = nil
	}
}

func (tp *terminalProgress) newBar(total int64) *progressbar.ProgressBar {
	if total <= 0 {
		total = -1
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(tp.out),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetPredictTime(false),
	)
}
