package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestChoiceSettings(t *testing.T) {
	tests := []struct {
		name     string
		get      func(*Settings) string
		set      func(*Settings, string)
		fallback string
		valid    string
	}{
		{"merge output format", (*Settings).GetMergeOutputFormat, (*Settings).SetMergeOutputFormat, DefaultMergeOutputFormat, "mkv"},
		{"audio format", (*Settings).GetAudioFormat, (*Settings).SetAudioFormat, DefaultAudioFormat, "opus"},
		{"audio quality", (*Settings).GetAudioQuality, (*Settings).SetAudioQuality, DefaultAudioQuality, "320"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewSettings(test.NewApp())

			if got := tt.get(settings); got != tt.fallback {
				t.Errorf("Expected default %s, got %s", tt.fallback, got)
			}

			tt.set(settings, tt.valid)
			if got := tt.get(settings); got != tt.valid {
				t.Errorf("Expected %s, got %s", tt.valid, got)
			}

			// Unknown values fall back to the default
			tt.set(settings, "bogus")
			if got := tt.get(settings); got != tt.fallback {
				t.Errorf("Expected fallback %s, got %s", tt.fallback, got)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
