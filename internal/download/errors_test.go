package download

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureMessages(t *testing.T) {
	blocked := &DownloadError{URL: testURL, ExitCode: 1, Message: "Video unavailable"}
	wrapped := fmt.Errorf("fetch: %w", blocked)
	generic := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		fetch    string
		download string
	}{
		{
			name:     "download failure",
			err:      blocked,
			fetch:    "⚠ Unable to fetch video info. The video might be geo-blocked or private.",
			download: "⚠ Unable to download. This video may be blocked in this region or require login.",
		},
		{
			name:     "wrapped download failure",
			err:      wrapped,
			fetch:    FetchBlockedMessage,
			download: DownloadBlockedMessage,
		},
		{
			name:     "generic failure",
			err:      generic,
			fetch:    "⚠ Error: connection reset",
			download: "⚠ An error occurred: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fetch, FetchFailureMessage(tt.err))
			assert.Equal(t, tt.download, DownloadFailureMessage(tt.err))
		})
	}
}

func TestDownloadError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &DownloadError{URL: testURL, ExitCode: 1, Message: "Private video", Err: cause}

	assert.ErrorIs(t, err, ErrDownload)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Private video")
	assert.Contains(t, err.Error(), "exit code 1")

	var target *DownloadError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &target))
	assert.Equal(t, testURL, target.URL)

	noMessage := &DownloadError{URL: testURL, ExitCode: 2, Err: cause}
	assert.Contains(t, noMessage.Error(), "exit status 1")

	assert.False(t, IsDownloadError(errors.New("other")))
	assert.False(t, IsDownloadError(nil))
}

func TestLastErrorLine(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		expected string
	}{
		{
			name:     "last error wins",
			stderr:   "WARNING: something\nERROR: first\nERROR: [youtube] abc: Video unavailable\n",
			expected: "[youtube] abc: Video unavailable",
		},
		{
			name:     "no error prefix",
			stderr:   "WARNING: something\nTraceback\n\n",
			expected: "Traceback",
		},
		{
			name:     "empty",
			stderr:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lastErrorLine(tt.stderr))
		})
	}
}

func TestClassifyRunError(t *testing.T) {
	result := &ytdlp.Result{ExitCode: 1, Stderr: "WARNING: slow\nERROR: [youtube] abc: Private video\n"}
	err := classifyRunError(testURL, result, &ytdlp.ErrExitCode{})

	var dlErr *DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.Equal(t, 1, dlErr.ExitCode)
	assert.Equal(t, "[youtube] abc: Private video", dlErr.Message)
	assert.True(t, IsDownloadError(err))

	missing := classifyRunError(testURL, nil, &exec.Error{Name: "yt-dlp", Err: exec.ErrNotFound})
	assert.ErrorIs(t, missing, ErrExtractorMissing)
	assert.False(t, IsDownloadError(missing))
	assert.Equal(t, "⚠ Error: "+missing.Error(), FetchFailureMessage(missing))

	other := classifyRunError(testURL, nil, errors.New("signal: killed"))
	assert.False(t, IsDownloadError(other))
	assert.NotErrorIs(t, other, ErrExtractorMissing)
}

func TestProgress(t *testing.T) {
	assert.False(t, Progress{}.Finished())
	assert.False(t, Progress{DownloadedBytes: 10, TotalBytes: 10, Status: ytdlp.ProgressStatusDownloading}.Finished())
	assert.False(t, Progress{Status: ytdlp.ProgressStatusError}.Finished())
	assert.True(t, Progress{DownloadedBytes: 10, TotalBytes: 10, Status: ytdlp.ProgressStatusFinished}.Finished())

	assert.Equal(t, 0.0, Progress{DownloadedBytes: 5}.Percent())
	assert.Equal(t, 50.0, Progress{DownloadedBytes: 5, TotalBytes: 10}.Percent())
	assert.Equal(t, 100.0, Progress{DownloadedBytes: 12, TotalBytes: 10}.Percent())
}
