package model

// DisplayMode selects which progress visualization renders. It applies to
// all trackers at once and is persisted together with the collection.
type DisplayMode string

const (
	// ModeCircular renders progress as a filling ring
	ModeCircular DisplayMode = "circular"

	// ModeBar renders progress as a horizontal bar
	ModeBar DisplayMode = "bar"
)

// DefaultMode is the visualization used when nothing is persisted yet.
const DefaultMode = ModeCircular

// String returns the string representation of DisplayMode
func (m DisplayMode) String() string {
	return string(m)
}

// IsValid returns true if the mode is one of the two recognized values
func (m DisplayMode) IsValid() bool {
	return m == ModeCircular || m == ModeBar
}

// ParseDisplayMode maps a stored or user-supplied string onto a DisplayMode.
// Unknown values fall back to DefaultMode with ok == false.
func ParseDisplayMode(s string) (mode DisplayMode, ok bool) {
	mode = DisplayMode(s)
	if mode.IsValid() {
		return mode, true
	}
	return DefaultMode, false
}
