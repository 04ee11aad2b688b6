package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Display mode labels shown in the mode selector
const (
	ModeLabelCircular = "Circular ring"
	ModeLabelBar      = "Progress bar"
)

// Layout sizing (cards / lists)
const (
	CardMinWidth  float32 = 400
	CardMinHeight float32 = 96

	RingDiameter   float32 = 72
	RingInnerRatio         = 0.68
)

// Dialog sizing
const (
	SettingsDialogWidth  = 360
	SettingsDialogHeight = 320
)

// Countdown refresh cadence
const (
	TickInterval = time.Second
)
