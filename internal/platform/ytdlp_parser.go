package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ytget/clippy/internal/model"
)

// ErrNoInfoJSON is returned when yt-dlp output carries no info document
var ErrNoInfoJSON = errors.New("no info JSON in yt-dlp output")

// ytdlpInfo mirrors the subset of yt-dlp's info dict the app reads.
// Numbers are pointers because yt-dlp emits null for unknown values.
type ytdlpInfo struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Uploader           string             `json:"uploader"`
	Duration           *float64           `json:"duration"`
	WebpageURL         string             `json:"webpage_url"`
	Formats            []ytdlpFormat      `json:"formats"`
	Filename           string             `json:"_filename"`
	FilenameAlt        string             `json:"filename"`
	RequestedDownloads []ytdlpDownloadRef `json:"requested_downloads"`
}

type ytdlpFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	ACodec         *string  `json:"acodec"`
	VCodec         *string  `json:"vcodec"`
	FormatNote     string   `json:"format_note"`
	Height         *float64 `json:"height"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
}

type ytdlpDownloadRef struct {
	FilePath string `json:"filepath"`
	Filename string `json:"_filename"`
}

// ParseVideoInfo decodes the info document yt-dlp prints with
// --dump-single-json or --print-json. Progress and log lines around it are
// skipped; when several documents are present the last one wins. A plain
// line after the document is the final path printed by
// --print after_move:filepath and overrides the pre-download file name.
func ParseVideoInfo(output string) (*model.VideoInfo, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	idx := lastJSONLine(lines)
	if idx < 0 {
		return nil, ErrNoInfoJSON
	}

	var raw ytdlpInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(lines[idx])), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	info := &model.VideoInfo{
		ID:         raw.ID,
		Title:      raw.Title,
		Uploader:   raw.Uploader,
		Duration:   raw.Duration,
		WebpageURL: raw.WebpageURL,
		Formats:    make([]model.Format, 0, len(raw.Formats)),
		Filename:   raw.filename(),
	}
	if moved := movedPath(lines[idx+1:]); moved != "" {
		info.Filename = moved
	}

	for _, f := range raw.Formats {
		info.Formats = append(info.Formats, model.Format{
			FormatID:       f.FormatID,
			Ext:            f.Ext,
			ACodec:         codecValue(f.ACodec),
			VCodec:         codecValue(f.VCodec),
			FormatNote:     f.FormatNote,
			Height:         intValue(f.Height),
			FileSize:       int64Value(f.FileSize),
			FileSizeApprox: int64Value(f.FileSizeApprox),
		})
	}

	return info, nil
}

// filename prefers the post-processed path of the requested download, which
// reflects merges and audio extraction
func (i *ytdlpInfo) filename() string {
	for _, rd := range i.RequestedDownloads {
		if rd.FilePath != "" {
			return rd.FilePath
		}
		if rd.Filename != "" {
			return rd.Filename
		}
	}
	if i.Filename != "" {
		return i.Filename
	}
	return i.FilenameAlt
}

func lastJSONLine(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "{") {
			return i
		}
	}
	return -1
}

// movedPath returns the last bare line, skipping "[extractor]" style logs
func movedPath(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "[") || line == "NA" {
			continue
		}
		return line
	}
	return ""
}

// codecValue keeps an unset codec empty; only yt-dlp's explicit "none"
// marks a missing track
func codecValue(codec *string) string {
	if codec == nil {
		return ""
	}
	return *codec
}

func intValue(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

func int64Value(v *float64) *int64 {
	if v == nil {
		return nil
	}
	n := int64(math.Round(*v))
	return &n
}
