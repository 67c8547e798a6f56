package model

import (
	"fmt"
	"strings"
)

// CodecNone is the value yt-dlp reports for a missing audio or video track
const CodecNone = "none"

// Selector building blocks understood by yt-dlp
const (
	BestVideoSelector = "bestvideo"
	BestAudioSelector = "bestaudio"
	BestSelector      = "best"
)

// Artifact MIME hints
const (
	MimeVideoMP4    = "video/mp4"
	MimeOctetStream = "application/octet-stream"
)

// VideoInfo is the metadata record yt-dlp reports for a single URL
type VideoInfo struct {
	ID         string
	Title      string
	Uploader   string
	Duration   *float64 // seconds, nil when unknown (live streams)
	WebpageURL string
	Formats    []Format
	Filename   string // set by yt-dlp after a download
}

// Format is one downloadable encoding option of a video
type Format struct {
	FormatID       string
	Ext            string
	ACodec         string
	VCodec         string
	FormatNote     string
	Height         *int
	FileSize       *int64
	FileSizeApprox *int64
}

// HasVideo reports whether the option is known to carry a video track
func (f Format) HasVideo() bool {
	return codecPresent(f.VCodec)
}

// HasAudio reports whether the option is known to carry an audio track
func (f Format) HasAudio() bool {
	return codecPresent(f.ACodec)
}

// IsVideo reports whether the option belongs to the video list. Only an
// explicit "none" excludes it; generic extractors often leave codecs unset.
func (f Format) IsVideo() bool {
	return !isNone(f.VCodec)
}

// IsAudio reports whether the option belongs to the audio list
func (f Format) IsAudio() bool {
	return isNone(f.VCodec) && !isNone(f.ACodec)
}

// NeedsAudioMerge reports whether downloading this option alone would
// produce a silent file
func (f Format) NeedsAudioMerge() bool {
	return f.HasVideo() && !f.HasAudio()
}

// Size returns the exact size when known, the approximate one otherwise
func (f Format) Size() *int64 {
	if f.FileSize != nil {
		return f.FileSize
	}
	return f.FileSizeApprox
}

// HeightLabel returns "<height>p", or "?p" when the height is unknown
func (f Format) HeightLabel() string {
	if f.Height == nil || *f.Height == 0 {
		return "?p"
	}
	return fmt.Sprintf("%dp", *f.Height)
}

// Selector returns the yt-dlp format selector for downloading this option
func (f Format) Selector() string {
	return FormatSelector(f.FormatID, f.NeedsAudioMerge())
}

// codecPresent treats both an empty value and "none" as a missing track
func codecPresent(codec string) bool {
	return strings.TrimSpace(codec) != "" && !isNone(codec)
}

func isNone(codec string) bool {
	return strings.TrimSpace(codec) == CodecNone
}

// ClassifyFormats splits options into the video and audio lists shown to the
// user, keeping yt-dlp's order. Options reported with "none" for both tracks
// (storyboards) are dropped.
func ClassifyFormats(formats []Format) (video, audio []Format) {
	for _, f := range formats {
		switch {
		case f.IsVideo():
			video = append(video, f)
		case f.IsAudio():
			audio = append(audio, f)
		}
	}
	return video, audio
}

// FindFormat returns the option with the given id
func (vi *VideoInfo) FindFormat(formatID string) (Format, bool) {
	for _, f := range vi.Formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return Format{}, false
}

// FormatSelector builds the selector passed to yt-dlp. With merge set the
// chosen stream is paired with the best audio stream, falling back to the
// best single file when no pairing is possible.
func FormatSelector(formatID string, merge bool) string {
	formatID = strings.TrimSpace(formatID)
	if formatID == "" {
		return ""
	}
	if merge {
		return formatID + "+" + BestAudioSelector + "/" + BestSelector
	}
	return formatID
}

// BestQualitySelector is the selector behind the one-click best download
func BestQualitySelector() string {
	return FormatSelector(BestVideoSelector, true)
}

// ArtifactMimeType hints the content type of a downloaded file
func ArtifactMimeType(selector string, merged bool) string {
	if merged || strings.Contains(selector, "video") {
		return MimeVideoMP4
	}
	return MimeOctetStream
}
