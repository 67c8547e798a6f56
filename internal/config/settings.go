package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clippy/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyMergeOutputFormat  = "merge_output_format"
	KeyAudioFormat        = "audio_format"
	KeyAudioQuality       = "audio_quality"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values shared by the desktop app and the CLI
const (
	DefaultMergeOutputFormat  = "mp4"
	DefaultAudioFormat        = "mp3"
	DefaultAudioQuality       = "192"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false

	DefaultOutputTemplate = "downloads/%(title)s.%(ext)s"
	DefaultFormatLimit    = 20
)

// Choices offered in the settings dialog
var (
	MergeOutputFormats = []string{"mp4", "mkv", "webm"}
	AudioFormats       = []string{"mp3", "m4a", "opus", "flac", "wav"}
	AudioQualities     = []string{"128", "192", "256", "320"}
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the folder the save dialog opens in
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMergeOutputFormat returns the container merged streams are written to
func (s *Settings) GetMergeOutputFormat() string {
	return s.stringWithDefault(KeyMergeOutputFormat, DefaultMergeOutputFormat)
}

// SetMergeOutputFormat sets the merge container
func (s *Settings) SetMergeOutputFormat(format string) {
	if !contains(MergeOutputFormats, format) {
		format = DefaultMergeOutputFormat
	}
	s.app.Preferences().SetString(KeyMergeOutputFormat, format)
}

// GetAudioFormat returns the codec used for audio extraction
func (s *Settings) GetAudioFormat() string {
	return s.stringWithDefault(KeyAudioFormat, DefaultAudioFormat)
}

// SetAudioFormat sets the audio extraction codec
func (s *Settings) SetAudioFormat(format string) {
	if !contains(AudioFormats, format) {
		format = DefaultAudioFormat
	}
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetAudioQuality returns the preferred audio bitrate in kbit/s
func (s *Settings) GetAudioQuality() string {
	return s.stringWithDefault(KeyAudioQuality, DefaultAudioQuality)
}

// SetAudioQuality sets the preferred audio bitrate
func (s *Settings) SetAudioQuality(quality string) {
	if !contains(AudioQualities, quality) {
		quality = DefaultAudioQuality
	}
	s.app.Preferences().SetString(KeyAudioQuality, quality)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.stringWithDefault(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal saved files in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved files
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func (s *Settings) stringWithDefault(key, fallback string) string {
	value := s.app.Preferences().String(key)
	if value == "" {
		s.app.Preferences().SetString(key, fallback)
		return fallback
	}
	return value
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
