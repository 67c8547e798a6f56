package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clippy/internal/model"
)

// newFormatCard renders one encoding option with its Download action.
// Video cards show the height, audio cards show "Audio Only".
func newFormatCard(f model.Format, audio bool, localization *Localization, onDownload func(model.Format)) *widget.Card {
	subtitle := f.HeightLabel()
	if audio {
		subtitle = localization.GetText(KeyAudioOnly)
	}

	sizeLabel := widget.NewLabel(model.HumanSize(f.Size()))
	sizeLabel.Alignment = fyne.TextAlignCenter

	btn := widget.NewButton(localization.GetText(KeyDownload), func() {
		onDownload(f)
	})
	btn.Importance = widget.HighImportance

	return widget.NewCard(f.Ext, subtitle, container.NewVBox(sizeLabel, btn))
}

// newFormatGrid lays cards out in a fixed number of columns
func newFormatGrid(formats []model.Format, audio bool, localization *Localization, onDownload func(model.Format)) *fyne.Container {
	if len(formats) == 0 {
		return container.NewVBox(widget.NewLabel(localization.GetText(KeyNoFormats)))
	}

	cards := make([]fyne.CanvasObject, 0, len(formats))
	for _, f := range formats {
		cards = append(cards, newFormatCard(f, audio, localization, onDownload))
	}
	return container.NewGridWithColumns(FormatGridColumns, cards...)
}
