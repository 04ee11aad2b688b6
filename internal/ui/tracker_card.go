package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nitisbig/deadline-app/internal/model"
)

// TrackerCard represents one goal tracker in the list: goal text, assigned
// quote, live countdown and a progress visual that follows the shared
// display mode.
type TrackerCard struct {
	widget.BaseWidget

	view         model.View
	mode         model.DisplayMode
	showSeconds  bool
	localization *Localization

	// UI components
	goalLabel      *widget.Label
	quoteLabel     *widget.Label
	countdownLabel *widget.Label
	ring           *ProgressRing
	bar            *widget.ProgressBar

	// Action buttons
	removeBtn *widget.Button

	// Callbacks
	onRemove func(trackerID string)
}

// NewTrackerCard creates a new tracker card widget
func NewTrackerCard(localization *Localization) *TrackerCard {
	tc := &TrackerCard{
		mode:         model.DefaultMode,
		showSeconds:  true,
		localization: localization,
	}
	tc.ExtendBaseWidget(tc)
	tc.createUI()
	return tc
}

// SetRemoveCallback sets the callback invoked with the tracker ID when the
// remove button is clicked
func (tc *TrackerCard) SetRemoveCallback(onRemove func(trackerID string)) {
	if onRemove == nil {
		log.Printf("Warning: onRemove callback is nil for tracker card")
	}
	tc.onRemove = onRemove
}

// UpdateView updates the card with freshly derived tracker state
func (tc *TrackerCard) UpdateView(view model.View, mode model.DisplayMode, showSeconds bool) {
	tc.view = view
	tc.mode = mode
	tc.showSeconds = showSeconds
	tc.updateFromView()
	tc.Refresh()
}

// createUI creates the UI components
func (tc *TrackerCard) createUI() {
	tc.goalLabel = widget.NewLabel("")
	tc.goalLabel.TextStyle = fyne.TextStyle{Bold: true}
	tc.goalLabel.Truncation = fyne.TextTruncateEllipsis
	tc.goalLabel.Alignment = fyne.TextAlignLeading

	tc.quoteLabel = widget.NewLabel("")
	tc.quoteLabel.TextStyle = fyne.TextStyle{Italic: true}
	tc.quoteLabel.Wrapping = fyne.TextWrapWord
	tc.quoteLabel.Truncation = fyne.TextTruncateEllipsis

	tc.countdownLabel = widget.NewLabel("")
	tc.countdownLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tc.countdownLabel.Alignment = fyne.TextAlignLeading

	tc.ring = NewProgressRing()

	tc.bar = widget.NewProgressBar()
	tc.bar.Min = 0
	tc.bar.Max = 100
	// Truncate toward zero so the shown percent never reads ahead of progress
	tc.bar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(tc.bar.Value))
	}

	tc.removeBtn = widget.NewButton(IconClose, func() {
		// Read the current view dynamically - not from a stale closure
		current := tc.view
		if tc.onRemove == nil {
			log.Printf("onRemove callback is nil for tracker %s", current.ID)
			return
		}
		tc.onRemove(current.ID)
	})
	tc.removeBtn.Importance = widget.LowImportance
}

// updateFromView updates UI components from the derived view state
func (tc *TrackerCard) updateFromView() {
	tc.goalLabel.SetText(tc.view.Goal)
	tc.quoteLabel.SetText(tc.view.Quote)

	// Countdown text: remaining time while active, terminal message once
	// the deadline has passed.
	if tc.view.Expired {
		tc.countdownLabel.Importance = widget.DangerImportance
		tc.countdownLabel.SetText(tc.localization.GetText(KeyTimeUp))
	} else {
		tc.countdownLabel.Importance = widget.MediumImportance
		tc.countdownLabel.SetText(tc.view.Parts.Format(tc.showSeconds))
	}

	// Progress visual follows the shared display mode
	switch tc.mode {
	case model.ModeBar:
		tc.ring.Hide()
		tc.bar.Show()
		tc.bar.SetValue(tc.view.Percent)
	default:
		tc.bar.Hide()
		tc.ring.Show()
		tc.ring.SetPercent(tc.view.Percent)
	}
}

// CreateRenderer creates the widget renderer
func (tc *TrackerCard) CreateRenderer() fyne.WidgetRenderer {
	return &trackerCardRenderer{card: tc}
}

// trackerCardRenderer renders the tracker card widget
type trackerCardRenderer struct {
	card   *TrackerCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *trackerCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	if size.Height < CardMinHeight {
		size.Height = CardMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *trackerCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

// Refresh refreshes the renderer
func (r *trackerCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *trackerCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *trackerCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *trackerCardRenderer) createLayout() {
	tc := r.card

	// Text column: goal on top, quote under it, countdown below. The bar
	// variant of the progress visual rides at the bottom of the column;
	// box layouts skip it while hidden.
	textColumn := container.NewVBox(
		tc.goalLabel,
		tc.quoteLabel,
		tc.countdownLabel,
		tc.bar,
	)

	// Ring pinned left, remove button pinned right, text in between.
	ringHolder := container.NewCenter(tc.ring)
	removeHolder := container.NewVBox(tc.removeBtn)

	mainContent := container.NewBorder(nil, nil, ringHolder, removeHolder, textColumn)

	separator := widget.NewSeparator()

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(CardMinWidth, CardMinHeight))
}
