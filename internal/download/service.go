package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/clippy/internal/media"
	"github.com/ytget/clippy/internal/model"
	"github.com/ytget/clippy/internal/platform"
)

// ScratchOutputTemplate names files inside a scratch directory
const ScratchOutputTemplate = "%(title)s.%(ext)s"

// DefaultMergeOutputFormat is the container merged streams are written to
const DefaultMergeOutputFormat = "mp4"

// Service handles metadata lookups and downloads
type Service struct {
	extractor         Extractor
	prober            media.Prober
	mergeOutputFormat string

	// mu guards task fields while yt-dlp reports progress
	mu       sync.Mutex
	onUpdate func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service
func NewService(extractor Extractor) *Service {
	return &Service{
		extractor:         extractor,
		mergeOutputFormat: DefaultMergeOutputFormat,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// SetProber enables the ffmpeg checks around merges and audio extraction
func (s *Service) SetProber(prober media.Prober) {
	s.prober = prober
}

// SetMergeOutputFormat sets the container merged downloads are written to
func (s *Service) SetMergeOutputFormat(format string) {
	if format == "" {
		format = DefaultMergeOutputFormat
	}
	s.mergeOutputFormat = format
}

// FetchInfo resolves metadata and the option list without downloading
func (s *Service) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	info, err := s.extractor.Extract(ctx, url, Options{
		SkipDownload: true,
		NoPlaylist:   true,
	})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("no metadata returned for %s", url)
	}
	if info.Duration != nil {
		log.WithField("url", url).Debugf("fetched %q, %d formats, %.0fs", info.Title, len(info.Formats), *info.Duration)
	}
	return info, nil
}

// ResolveSelector applies the merge policy to an option id typed by the
// user. Ids missing from the option list are passed through untouched.
func (s *Service) ResolveSelector(ctx context.Context, url, formatID string) (string, bool, error) {
	formatID = strings.TrimSpace(formatID)
	if formatID == "" {
		return "", false, nil
	}

	info, err := s.FetchInfo(ctx, url)
	if err != nil {
		return "", false, err
	}

	f, ok := info.FindFormat(formatID)
	if !ok {
		log.WithField("format_id", formatID).Debug("format not in option list, passing through")
		return formatID, false, nil
	}
	return f.Selector(), f.NeedsAudioMerge(), nil
}

// Download saves the requested option to req.OutputTemplate
func (s *Service) Download(ctx context.Context, req Request) (*model.DownloadTask, error) {
	if err := platform.EnsureOutputDir(req.OutputTemplate); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	task := s.newTask(req)
	info, err := s.run(ctx, task, req)
	if err != nil {
		s.finish(task, err)
		return task, err
	}

	path := resolveOutputPath(info.Filename, req)
	s.setOutput(task, info, path)
	s.logAudioDuration(ctx, req, path)
	s.finish(task, nil)
	return task, nil
}

// DownloadAndOffer downloads into a scratch directory, hands the file to
// deliver and removes the scratch directory whatever the outcome
func (s *Service) DownloadAndOffer(ctx context.Context, req Request, deliver Deliverer) (*model.DownloadTask, error) {
	dir, err := platform.NewScratchDir()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := platform.RemoveScratchDir(dir); err != nil {
			log.WithError(err).Warn("failed to clean up scratch directory")
		}
	}()

	req.OutputTemplate = filepath.Join(dir, ScratchOutputTemplate)
	req.Continue = false

	task := s.newTask(req)
	info, err := s.run(ctx, task, req)
	if err != nil {
		s.finish(task, err)
		return task, err
	}

	path, err := locateArtifact(dir, info.Filename)
	if err != nil {
		s.finish(task, err)
		return task, err
	}
	s.setOutput(task, info, path)

	if err := s.offer(task, req, path, deliver); err != nil {
		s.finish(task, err)
		return task, err
	}

	s.finish(task, nil)
	return task, nil
}

func (s *Service) offer(task *model.DownloadTask, req Request, path string, deliver Deliverer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open downloaded file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file: %w", err)
	}

	s.setStatus(task, model.TaskStatusDelivering)

	artifact := Artifact{
		Name:     filepath.Base(path),
		Path:     path,
		MimeType: model.ArtifactMimeType(req.Selector, req.Merge),
		Size:     stat.Size(),
	}
	if err := deliver(artifact, file); err != nil {
		return fmt.Errorf("failed to deliver %s: %w", artifact.Name, err)
	}
	return nil
}

// resolveOutputPath finds the saved file. Older yt-dlp builds without the
// moved-path print report the name before audio conversion.
func resolveOutputPath(reported string, req Request) string {
	if found, err := platform.FindFileWithFallback(reported); err == nil {
		return found
	}
	if req.ExtractAudio && req.AudioFormat != "" && reported != "" {
		converted := strings.TrimSuffix(reported, filepath.Ext(reported)) + "." + req.AudioFormat
		if found, err := platform.FindFileWithFallback(converted); err == nil {
			return found
		}
	}
	return reported
}

// locateArtifact prefers the path yt-dlp reported, as long as it lives in dir
func locateArtifact(dir, reported string) (string, error) {
	if reported != "" && strings.HasPrefix(filepath.Clean(reported), filepath.Clean(dir)) {
		if _, err := os.Stat(reported); err == nil {
			return reported, nil
		}
	}
	return platform.FindDownloadedFile(dir)
}

// run invokes the collaborator for a download request
func (s *Service) run(ctx context.Context, task *model.DownloadTask, req Request) (*model.VideoInfo, error) {
	opts := Options{
		Format:         req.Selector,
		OutputTemplate: req.OutputTemplate,
		NoPlaylist:     true,
		Continue:       req.Continue,
		ExtractAudio:   req.ExtractAudio,
		AudioFormat:    req.AudioFormat,
		AudioQuality:   req.AudioQuality,
		Progress: func(p Progress) {
			s.updateTaskProgress(task, p)
			if req.Progress != nil {
				req.Progress(p)
			}
		},
	}
	if req.Merge || strings.Contains(req.Selector, "+") {
		opts.MergeOutputFormat = s.mergeOutputFormat
	}
	if s.prober != nil && (opts.MergeOutputFormat != "" || opts.ExtractAudio) {
		if err := s.prober.CheckFFmpeg(); err != nil {
			log.WithError(err).Warn("ffmpeg is required to merge streams or extract audio")
		}
	}

	s.setStatus(task, model.TaskStatusDownloading)

	info, err := s.extractor.Extract(ctx, req.URL, opts)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("no metadata returned for %s", req.URL)
	}
	return info, nil
}

func (s *Service) logAudioDuration(ctx context.Context, req Request, path string) {
	if s.prober == nil || !req.ExtractAudio || path == "" {
		return
	}
	d, err := s.prober.Duration(ctx, path)
	if err != nil {
		log.WithError(err).Debug("failed to probe audio duration")
		return
	}
	log.WithField("file", path).Debugf("audio duration %s", model.FormatClock(int(d.Seconds())))
}

func (s *Service) newTask(req Request) *model.DownloadTask {
	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       req.URL,
		Selector:  req.Selector,
		Status:    model.TaskStatusStarting,
		ETASec:    -1,
		StartedAt: time.Now(),
	}

	s.notifyUpdate(task)
	return task
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.mu.Lock()
	task.Status = status
	s.mu.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) setOutput(task *model.DownloadTask, info *model.VideoInfo, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.OutputPath = path
	if info.Title != "" {
		task.Title = info.Title
	}
	if stat, err := os.Stat(path); err == nil {
		task.FileSize = stat.Size()
	}
}

func (s *Service) finish(task *model.DownloadTask, err error) {
	s.mu.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
		task.ETASec = -1
	}
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).WithField("task", task.ID).Error("download failed")
	} else {
		log.WithField("task", task.ID).Infof("saved %s", task.OutputPath)
	}
	s.notifyUpdate(task)
}

// updateTaskProgress updates task progress from a yt-dlp report
func (s *Service) updateTaskProgress(task *model.DownloadTask, p Progress) {
	s.mu.Lock()

	if p.TotalBytes > 0 {
		percent := p.Percent()
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	if !p.Started.IsZero() {
		elapsed := time.Since(p.Started)
		if elapsed.Seconds() > 0 && p.DownloadedBytes > 0 {
			bytesPerSecond := float64(p.DownloadedBytes) / elapsed.Seconds()
			task.Speed = humanize.Bytes(uint64(bytesPerSecond)) + "/s"
		}
	}

	if p.ETA > 0 {
		task.ETASec = int(p.ETA.Seconds())
	}

	if p.Title != "" && task.Title == "" {
		task.Title = p.Title
	}
	s.mu.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
