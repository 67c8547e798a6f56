package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/clippy/internal/config"
	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/model"
	"github.com/ytget/clippy/internal/platform"
)

// errSaveCancelled is returned when the user closes the save dialog
var errSaveCancelled = errors.New("save cancelled")

// saveFunc writes a finished file to a location picked by the user and
// returns that location
type saveFunc func(artifact download.Artifact, content io.Reader) (string, error)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization

	urlEntry     *widget.Entry
	fetchBtn     *widget.Button
	bestBtn      *widget.Button
	audioBtn     *widget.Button
	settingsBtn  *widget.Button
	titleLabel   *widget.Label
	messageLabel *widget.Label
	spinner      *widget.ProgressBarInfinite
	formats      *widget.Accordion
	videoItem    *widget.AccordionItem
	audioItem    *widget.AccordionItem
	statusRow    *TaskRow

	mu         sync.Mutex
	busy       bool
	currentURL string
	info       *model.VideoInfo

	save     saveFunc
	runAsync func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		runAsync:     func(f func()) { go f() },
	}
	ui.save = ui.saveWithDialog

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetch), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.bestBtn = widget.NewButton(IconRocket+" "+ui.localization.GetText(KeyBestQuality), ui.onBestQualityClick)
	ui.bestBtn.Importance = widget.HighImportance
	ui.bestBtn.Disable()

	ui.audioBtn = widget.NewButton(IconMusic+" "+ui.localization.GetText(KeyExtractAudio), ui.onExtractAudioClick)
	ui.audioBtn.Disable()

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	urlRow := container.NewBorder(nil, nil, left, ui.fetchBtn, ui.urlEntry)

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Stop()
	ui.spinner.Hide()

	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Wrapping = fyne.TextWrapWord
	ui.messageLabel.Hide()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	top := container.NewVBox(
		urlRow,
		container.NewHBox(ui.bestBtn, ui.audioBtn),
		ui.spinner,
		ui.messageLabel,
		ui.titleLabel,
	)

	ui.videoItem = widget.NewAccordionItem(IconVideo+" "+ui.localization.GetText(KeyVideoFormats), container.NewVBox())
	ui.audioItem = widget.NewAccordionItem(IconMusic+" "+ui.localization.GetText(KeyAudioFormats), container.NewVBox())
	ui.formats = widget.NewAccordion(ui.videoItem, ui.audioItem)
	ui.formats.MultiOpen = true
	ui.formats.Hide()

	ui.statusRow = NewTaskRow(ui.localization)
	ui.statusRow.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	ui.statusRow.Hide()

	content := container.NewBorder(
		top,          // top
		ui.statusRow, // bottom
		nil,          // left
		nil,          // right
		container.NewVScroll(ui.formats),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.fetchBtn.SetText(ui.localization.GetText(KeyFetch))
	ui.bestBtn.SetText(IconRocket + " " + ui.localization.GetText(KeyBestQuality))
	ui.audioBtn.SetText(IconMusic + " " + ui.localization.GetText(KeyExtractAudio))
	ui.videoItem.Title = IconVideo + " " + ui.localization.GetText(KeyVideoFormats)
	ui.audioItem.Title = IconMusic + " " + ui.localization.GetText(KeyAudioFormats)
	ui.statusRow.RefreshTexts()

	ui.mu.Lock()
	info := ui.info
	ui.mu.Unlock()
	if info != nil {
		ui.showFormats(info)
	}
	ui.formats.Refresh()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onFetchClick resolves the option list of the entered URL
func (ui *RootUI) onFetchClick() {
	urlText := cleanText(ui.urlEntry.Text)
	if urlText == "" {
		ui.showMessage(ui.localization.GetText(KeyPleaseEnterURL), widget.WarningImportance)
		return
	}
	if err := ui.validateURL(urlText); err != nil {
		ui.showMessage(ui.localization.GetText(KeyInvalidURL)+": "+err.Error(), widget.WarningImportance)
		return
	}
	if !ui.begin() {
		return
	}

	log.WithField("url", urlText).Info("fetching formats")
	ui.setWorking(true, ui.localization.GetText(KeyFetchingFormats))
	ui.runAsync(func() { ui.fetch(urlText) })
}

// fetch runs off the UI goroutine
func (ui *RootUI) fetch(urlText string) {
	info, err := ui.downloadSvc.FetchInfo(context.Background(), urlText)

	ui.mu.Lock()
	ui.busy = false
	if err == nil {
		ui.info = info
		ui.currentURL = urlText
	} else {
		ui.info = nil
		ui.currentURL = ""
	}
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.setWorking(false, "")
		if err != nil {
			log.WithError(err).Warn("fetch failed")
			ui.clearFormats()
			ui.showMessage(download.FetchFailureMessage(err), widget.DangerImportance)
			return
		}
		ui.showFormats(info)
	})
}

// showFormats renders the video and audio option cards
func (ui *RootUI) showFormats(info *model.VideoInfo) {
	video, audio := model.ClassifyFormats(info.Formats)

	ui.videoItem.Detail = newFormatGrid(video, false, ui.localization, ui.onFormatDownload)
	ui.audioItem.Detail = newFormatGrid(audio, true, ui.localization, ui.onFormatDownload)

	ui.titleLabel.SetText(info.Title)
	ui.formats.Show()
	ui.formats.Open(0)
	ui.formats.Close(1)
	ui.formats.Refresh()

	ui.bestBtn.Enable()
	ui.audioBtn.Enable()
}

func (ui *RootUI) clearFormats() {
	ui.videoItem.Detail = container.NewVBox()
	ui.audioItem.Detail = container.NewVBox()
	ui.titleLabel.SetText("")
	ui.formats.Hide()
	ui.bestBtn.Disable()
	ui.audioBtn.Disable()
}

func (ui *RootUI) onBestQualityClick() {
	ui.startDownload(download.Request{
		Selector: model.BestQualitySelector(),
		Merge:    true,
	})
}

func (ui *RootUI) onFormatDownload(f model.Format) {
	ui.startDownload(download.Request{
		Selector: f.Selector(),
		Merge:    f.NeedsAudioMerge(),
	})
}

func (ui *RootUI) onExtractAudioClick() {
	ui.startDownload(download.Request{
		Selector:     model.BestAudioSelector,
		ExtractAudio: true,
		AudioFormat:  ui.settings.GetAudioFormat(),
		AudioQuality: ui.settings.GetAudioQuality(),
	})
}

// startDownload downloads the selection for the fetched URL and offers the
// result through the save dialog
func (ui *RootUI) startDownload(req download.Request) {
	ui.mu.Lock()
	req.URL = ui.currentURL
	ui.mu.Unlock()
	if req.URL == "" {
		return
	}
	if !ui.begin() {
		return
	}

	log.WithField("selector", req.Selector).Info("starting download")
	ui.downloadSvc.SetMergeOutputFormat(ui.settings.GetMergeOutputFormat())
	ui.setWorking(true, ui.localization.GetText(KeyDownloading))
	ui.runAsync(func() { ui.download(req) })
}

// download runs off the UI goroutine
func (ui *RootUI) download(req download.Request) {
	var savedPath string
	task, err := ui.downloadSvc.DownloadAndOffer(context.Background(), req, func(a download.Artifact, r io.Reader) error {
		path, err := ui.save(a, r)
		savedPath = path
		return err
	})

	ui.mu.Lock()
	ui.busy = false
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.setWorking(false, "")

		switch {
		case errors.Is(err, errSaveCancelled):
			ui.showMessage(ui.localization.GetText(KeySaveCancelled), widget.MediumImportance)
		case err != nil:
			log.WithError(err).Warn("download failed")
			ui.showMessage(download.DownloadFailureMessage(err), widget.DangerImportance)
		default:
			ui.showMessage(ui.localization.GetText(KeySavedTo)+": "+savedPath, widget.SuccessImportance)
		}

		if task == nil {
			return
		}
		shown := *task
		shown.OutputPath = savedPath
		ui.statusRow.UpdateTask(&shown)
		ui.statusRow.Show()

		if err == nil {
			ui.onDownloadCompleted(&shown)
		}
	})
}

// begin marks the UI busy, refusing to start a second call
func (ui *RootUI) begin() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if ui.busy {
		return false
	}
	ui.busy = true
	return true
}

// setWorking toggles the indeterminate progress bar and the action buttons
func (ui *RootUI) setWorking(working bool, message string) {
	if working {
		ui.fetchBtn.Disable()
		ui.bestBtn.Disable()
		ui.audioBtn.Disable()
		ui.urlEntry.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
		ui.showMessage(message, widget.MediumImportance)
		return
	}

	ui.spinner.Stop()
	ui.spinner.Hide()
	ui.fetchBtn.Enable()
	ui.urlEntry.Enable()

	ui.mu.Lock()
	hasInfo := ui.info != nil
	ui.mu.Unlock()
	if hasInfo {
		ui.bestBtn.Enable()
		ui.audioBtn.Enable()
	}
	if message == "" {
		ui.messageLabel.Hide()
	}
}

func (ui *RootUI) showMessage(message string, importance widget.Importance) {
	ui.messageLabel.Importance = importance
	ui.messageLabel.SetText(message)
	ui.messageLabel.Show()
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	snapshot := *task
	fyne.Do(func() {
		ui.statusRow.UpdateTask(&snapshot)
		ui.statusRow.Show()
	})
}

func (ui *RootUI) onDownloadCompleted(task *model.DownloadTask) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: task.GetDisplayTitle(),
	})

	if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
		ui.onRevealFile(task.OutputPath)
	}
}

// saveWithDialog asks for a destination and copies the file there. It blocks
// until the user picks a location or cancels.
func (ui *RootUI) saveWithDialog(artifact download.Artifact, content io.Reader) (string, error) {
	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)

	fyne.Do(func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				done <- result{err: err}
				return
			}
			if writer == nil {
				done <- result{err: errSaveCancelled}
				return
			}
			go func() {
				_, copyErr := io.Copy(writer, content)
				if closeErr := writer.Close(); copyErr == nil {
					copyErr = closeErr
				}
				done <- result{path: writer.URI().Path(), err: copyErr}
			}()
		}, ui.window)

		d.SetFileName(artifact.Name)
		if dir, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetDownloadDirectory())); err == nil {
			d.SetLocation(dir)
		}
		d.Show()
	})

	res := <-done
	if res.err == nil {
		log.WithFields(log.Fields{"file": res.path, "mime": artifact.MimeType, "size": artifact.Size}).Info("file saved")
	}
	return res.path, res.err
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange).Show()
}

// onRevealFile reveals a saved file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.WithError(err).Warn("failed to reveal file")
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile opens a saved file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.WithError(err).Warn("failed to open file")
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onCopyPath copies the saved file path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	ui.window.Clipboard().SetContent(filePath)
	ui.showToast(ui.localization.GetText(KeyPathCopied))
}

// showToast shows a short-lived popup over the window
func (ui *RootUI) showToast(message string) {
	popup := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popup.Show()
	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}
