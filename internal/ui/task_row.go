package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/clippy/internal/model"
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
)

// TaskRow shows the state of the latest download and actions on the saved file
type TaskRow struct {
	widget.BaseWidget

	task         *model.DownloadTask
	localization *Localization

	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	speedEtaLabel *widget.Label

	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open file with default app
	copyBtn   *widget.Button

	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewTaskRow creates an empty status row
func NewTaskRow(localization *Localization) *TaskRow {
	tr := &TaskRow{localization: localization}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onReveal, onOpen, onCopyPath func(filePath string)) {
	tr.onReveal = onReveal
	tr.onOpen = onOpen
	tr.onCopyPath = onCopyPath
}

// UpdateTask renders a snapshot of the task
func (tr *TaskRow) UpdateTask(task *model.DownloadTask) {
	if task == nil {
		return
	}
	snapshot := *task
	snapshot.Title = cleanText(snapshot.Title)
	tr.task = &snapshot
	tr.updateFromTask()
	tr.Refresh()
}

// Task returns the task currently shown
func (tr *TaskRow) Task() *model.DownloadTask {
	return tr.task
}

// RefreshTexts re-applies localized button labels
func (tr *TaskRow) RefreshTexts() {
	tr.revealBtn.SetText(tr.localization.GetText(KeyReveal))
	tr.openBtn.SetText(tr.localization.GetText(KeyOpen))
	tr.copyBtn.SetText(tr.localization.GetText(KeyCopyPath))
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.progressLabel = widget.NewLabel("")
	tr.progressLabel.Alignment = fyne.TextAlignTrailing
	tr.speedEtaLabel = widget.NewLabel("")
	tr.speedEtaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.revealBtn = widget.NewButton(tr.localization.GetText(KeyReveal), func() {
		tr.withOutputPath(tr.onReveal)
	})
	tr.openBtn = widget.NewButton(tr.localization.GetText(KeyOpen), func() {
		tr.withOutputPath(tr.onOpen)
	})
	tr.copyBtn = widget.NewButton(tr.localization.GetText(KeyCopyPath), func() {
		tr.withOutputPath(tr.onCopyPath)
	})
}

func (tr *TaskRow) withOutputPath(action func(string)) {
	if action == nil || !tr.hasLocalFile() {
		log.Debug("no saved file for the current task")
		return
	}
	action(tr.task.OutputPath)
}

// hasLocalFile reports whether OutputPath points at a saved file
func (tr *TaskRow) hasLocalFile() bool {
	if tr.task == nil || tr.task.Status != model.TaskStatusCompleted {
		return false
	}
	p := tr.task.OutputPath
	return p != "" && !strings.HasPrefix(p, "http") && (strings.Contains(p, "/") || strings.Contains(p, "\\"))
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	if tr.task == nil {
		tr.titleLabel.SetText("")
		tr.statusLabel.SetText("")
		tr.progressLabel.SetText("")
		tr.speedEtaLabel.SetText("")
		tr.updateButtons()
		return
	}

	tr.titleLabel.SetText(tr.task.GetDisplayTitle())

	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	case model.TaskStatusDownloading:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + tr.task.Status.String())
	case model.TaskStatusDelivering:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconSaving + " " + tr.task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	tr.progressLabel.SetText(progressText(tr.task))
	tr.speedEtaLabel.SetText(speedEtaText(tr.task))
	tr.updateButtons()
}

func (tr *TaskRow) updateButtons() {
	if tr.hasLocalFile() {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
		tr.copyBtn.Enable()
		return
	}
	tr.revealBtn.Disable()
	tr.openBtn.Disable()
	tr.copyBtn.Disable()
}

func progressText(task *model.DownloadTask) string {
	if task.Status.IsFinished() {
		return ""
	}
	percent := task.Percent
	if percent <= 0 && task.Progress > 0 {
		percent = int(task.Progress * MaxProgressPercent)
	}
	if percent < 0 {
		percent = 0
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}
	return fmt.Sprintf(ProgressLabelFormat, percent)
}

func speedEtaText(task *model.DownloadTask) string {
	switch {
	case task.Status == model.TaskStatusError:
		return task.LastError
	case task.Status.IsActive():
		text := task.Speed
		if task.ETASec > 0 {
			if text != "" {
				text += MiddleDotSeparator
			}
			text += task.GetETAString()
		}
		if text == "" {
			text = DashPlaceholder
		}
		return text
	}
	return ""
}

// cleanText flattens control characters that break single-line labels
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		container.NewHBox(
			fixedWidth(SpeedLabelWidth, tr.speedEtaLabel),
			fixedWidth(PercentLabelWidth, tr.progressLabel),
		),
	)
	actions := container.NewHBox(tr.revealBtn, tr.openBtn, tr.copyBtn)
	right := container.NewBorder(nil, nil, nil, actions, info)

	return widget.NewSimpleRenderer(container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, right, tr.titleLabel),
	))
}
