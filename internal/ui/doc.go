// Package ui contains the Fyne-based desktop user interface. It fetches the
// option list of a URL, renders video and audio options as cards and offers
// each finished download through a save dialog. All UI strings are localized
// via Localization.
package ui
