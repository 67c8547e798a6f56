package download

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ytget/clippy/internal/model"
)

// fakeExtractor stands in for yt-dlp. On download calls it writes files into
// the directory of the output template before reporting its outcome.
type fakeExtractor struct {
	mu       sync.Mutex
	info     *model.VideoInfo
	err      error
	files    map[string]int
	reported string // file name reported back as the saved path
	progress []Progress
	calls    []Options
}

func (f *fakeExtractor) Extract(ctx context.Context, url string, opts Options) (*model.VideoInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, opts)
	f.mu.Unlock()

	for _, p := range f.progress {
		if opts.Progress != nil {
			opts.Progress(p)
		}
	}

	dir := filepath.Dir(opts.OutputTemplate)
	if !opts.SkipDownload {
		for name, size := range f.files {
			if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644); err != nil {
				return nil, err
			}
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	info := *f.info
	if !opts.SkipDownload && f.reported != "" {
		info.Filename = filepath.Join(dir, f.reported)
	}
	return &info, nil
}

func (f *fakeExtractor) lastCall() Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

type fakeProber struct {
	checks    int
	checkErr  error
	durations []string
}

func (p *fakeProber) CheckFFmpeg() error {
	p.checks++
	return p.checkErr
}

func (p *fakeProber) Duration(ctx context.Context, filePath string) (time.Duration, error) {
	p.durations = append(p.durations, filePath)
	return 3 * time.Minute, nil
}

func ptr[T any](v T) *T { return &v }

func sampleInfo() *model.VideoInfo {
	return &model.VideoInfo{
		ID:       "abc123",
		Title:    "Sample Clip",
		Uploader: "Uploader",
		Duration: ptr(180.0),
		Formats: []model.Format{
			{FormatID: "140", Ext: "m4a", ACodec: "mp4a.40.2", VCodec: "none", FileSize: ptr(int64(2048))},
			{FormatID: "18", Ext: "mp4", ACodec: "mp4a.40.2", VCodec: "avc1", Height: ptr(360)},
			{FormatID: "137", Ext: "mp4", ACodec: "none", VCodec: "avc1", Height: ptr(1080)},
		},
	}
}
