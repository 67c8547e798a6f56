package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clippy/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onLanguage   func(lang string)

	// UI components
	downloadDirEntry   *widget.Entry
	mergeFormatSelect  *widget.Select
	audioFormatSelect  *widget.Select
	audioQualitySelect *widget.Select
	languageSelect     *widget.Select
	autoRevealCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onLanguage is called
// after saving when the language changed.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onLanguage func(lang string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onLanguage:   onLanguage,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.mergeFormatSelect = widget.NewSelect(config.MergeOutputFormats, nil)
	sd.audioFormatSelect = widget.NewSelect(config.AudioFormats, nil)
	sd.audioQualitySelect = widget.NewSelect(config.AudioQualities, nil)

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(loc.GetText(KeyAutoReveal), nil)

	form := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyDownloadDirectory), downloadDirRow),
		widget.NewFormItem(loc.GetText(KeyMergeFormat), sd.mergeFormatSelect),
		widget.NewFormItem(loc.GetText(KeyAudioFormat), sd.audioFormatSelect),
		widget.NewFormItem(loc.GetText(KeyAudioQuality), sd.audioQualitySelect),
		widget.NewFormItem(loc.GetText(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(form, widget.NewSeparator(), sd.autoRevealCheck)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.mergeFormatSelect.SetSelected(sd.settings.GetMergeOutputFormat())
	sd.audioFormatSelect.SetSelected(sd.settings.GetAudioFormat())
	sd.audioQualitySelect.SetSelected(sd.settings.GetAudioQuality())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the dialog values
func (sd *SettingsDialog) apply() {
	if dir := cleanText(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	if sd.mergeFormatSelect.Selected != "" {
		sd.settings.SetMergeOutputFormat(sd.mergeFormatSelect.Selected)
	}
	if sd.audioFormatSelect.Selected != "" {
		sd.settings.SetAudioFormat(sd.audioFormatSelect.Selected)
	}
	if sd.audioQualitySelect.Selected != "" {
		sd.settings.SetAudioQuality(sd.audioQualitySelect.Selected)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	lang := sd.languageSelect.Selected
	if lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		if sd.onLanguage != nil {
			sd.onLanguage(lang)
		}
	}
}
