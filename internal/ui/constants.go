package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRocket   = "🚀"
	IconVideo    = "🎥"
	IconMusic    = "🎵"
	IconError    = "❌"
	IconPlay     = "▶"
	IconSaving   = "💾"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	FormatGridColumns = 3

	StatusLabelWidth  float32 = 84
	SpeedLabelWidth   float32 = 120
	PercentLabelWidth float32 = 48

	LogoSize float32 = 32

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)

// Toast behavior
const (
	ToastAutoHide = 3 * time.Second
)
