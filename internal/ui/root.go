package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"

	"github.com/nitisbig/deadline-app/internal/config"
	"github.com/nitisbig/deadline-app/internal/model"
	"github.com/nitisbig/deadline-app/internal/tracker"
)

// StatusFilter enumerates visible subsets of trackers in the UI.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterExpired
)

// String returns the display name for the filter option
func (sf StatusFilter) String() string {
	switch sf {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// filterOptions are the selector entries, in display order.
var filterOptions = []StatusFilter{FilterAll, FilterActive, FilterExpired}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	goalEntry     *widget.Entry
	deadlineEntry *widget.Entry
	addBtn        *widget.Button
	resetBtn      *widget.Button
	errorLabel    *widget.Label
	trackerList   *widget.List
	filterSelect  *widget.Select
	modeSelect    *widget.Select
	countLabel    *widget.Label

	currentFilter StatusFilter
	allViews      []model.View
	filteredViews []model.View

	trackerSvc   tracker.Store
	settings     *config.Settings
	clock        clockwork.Clock
	localization *Localization

	tickerDone chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, trackerSvc tracker.Store, settings *config.Settings, clock clockwork.Clock) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		trackerSvc:   trackerSvc,
		settings:     settings,
		clock:        clock,
		localization: localization,
		tickerDone:   make(chan struct{}),
	}

	log.Printf("RootUI initialized with tracker store: %v", ui.trackerSvc != nil)

	// Refresh the list after every store mutation
	ui.trackerSvc.SetChangeCallback(ui.onStoreChange)

	ui.setupUI()
	ui.refreshViews()
	ui.startTicker()

	window.SetOnClosed(ui.Stop)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create goal entry
	ui.goalEntry = widget.NewEntry()
	ui.goalEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterGoal))
	ui.goalEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	// Create deadline entry with live validation
	ui.deadlineEntry = widget.NewEntry()
	ui.deadlineEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterDeadline))
	ui.deadlineEntry.Validator = ui.validateDeadline
	ui.deadlineEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	// Create add button
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddTracker), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Top panel: goal and deadline side by side, add button pinned right
	entryRow := container.NewGridWithColumns(2, ui.goalEntry, ui.deadlineEntry)
	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.addBtn, entryRow)

	// Inline validation error under the entry row (hidden by default)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Hide()

	// Filter and display mode selectors with the tracker count pinned right
	filterLabels := make([]string, 0, len(filterOptions))
	for _, filter := range filterOptions {
		filterLabels = append(filterLabels, filter.String())
	}
	// Selected fields are assigned directly: SetSelected would fire the
	// callbacks before the tracker list exists.
	ui.filterSelect = widget.NewSelect(filterLabels, ui.onFilterChanged)
	ui.filterSelect.Selected = FilterAll.String()

	ui.modeSelect = widget.NewSelect([]string{ModeLabelCircular, ModeLabelBar}, ui.onModeChanged)
	ui.modeSelect.Selected = labelForMode(ui.trackerSvc.Mode())

	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing

	selectorRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.filterSelect, ui.modeSelect), ui.countLabel)

	topCombined := container.NewVBox(topPanel, ui.errorLabel, selectorRow)

	// Create tracker list
	ui.trackerList = widget.NewList(
		func() int {
			return len(ui.filteredViews)
		},
		func() fyne.CanvasObject { return ui.createTrackerItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTrackerItem(id, obj) },
	)

	ui.currentFilter = FilterAll

	// Bottom panel with the reset-all action
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyResetAll), ui.onResetAll)
	ui.resetBtn.Importance = widget.DangerImportance
	bottomPanel := container.NewBorder(nil, nil, nil, ui.resetBtn, widget.NewSeparator())

	content := container.NewBorder(
		topCombined, // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.trackerList,
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyResetAll), ui.onResetAll)

	// Display mode submenu with a checkmark on the active mode
	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView))
	for _, entry := range []struct {
		label string
		mode  model.DisplayMode
	}{
		{ModeLabelCircular, model.ModeCircular},
		{ModeLabelBar, model.ModeBar},
	} {
		mode := entry.mode // Capture for closure
		item := fyne.NewMenuItem(entry.label, func() {
			ui.modeSelect.SetSelected(labelForMode(mode))
		})
		if ui.trackerSvc.Mode() == mode {
			item.Checked = true
		}
		viewMenu.Items = append(viewMenu.Items, item)
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), resetItem),
		viewMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.goalEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterGoal))
	ui.deadlineEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterDeadline))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddTracker))
	ui.resetBtn.SetText(ui.localization.GetText(KeyResetAll))

	// Refresh tracker list so cards re-render their texts
	ui.trackerList.Refresh()
}

// validateDeadline validates the entered deadline text
func (ui *RootUI) validateDeadline(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed until submit
	}

	_, err := tracker.ParseDeadline(input)
	return err
}

// onAddClick handles the add button click
func (ui *RootUI) onAddClick() {
	created, err := ui.trackerSvc.Create(ui.goalEntry.Text, ui.deadlineEntry.Text)
	if err != nil {
		log.Printf("Tracker rejected: %v", err)
		ui.showFormError(ui.rejectionMessage(err))
		return
	}

	log.Printf("Tracker added from form: id=%s goal=%q", created.ID, created.Goal)

	ui.clearFormError()
	ui.goalEntry.SetText("")
	ui.deadlineEntry.SetText("")
}

// rejectionMessage maps a store rejection to its localized user-facing text
func (ui *RootUI) rejectionMessage(err error) string {
	switch {
	case errors.Is(err, tracker.ErrEmptyGoal):
		return ui.localization.GetText(KeyEmptyGoal)
	case errors.Is(err, tracker.ErrInvalidDeadline):
		return ui.localization.GetText(KeyInvalidDeadline)
	case errors.Is(err, tracker.ErrPastDeadline):
		return ui.localization.GetText(KeyPastDeadline)
	default:
		return err.Error()
	}
}

// showFormError displays a validation message under the entry row
func (ui *RootUI) showFormError(message string) {
	ui.errorLabel.SetText(message)
	ui.errorLabel.Show()
}

// clearFormError hides the validation message
func (ui *RootUI) clearFormError() {
	ui.errorLabel.SetText("")
	ui.errorLabel.Hide()
}

// createTrackerItem creates a new tracker card for the list
func (ui *RootUI) createTrackerItem() fyne.CanvasObject {
	card := NewTrackerCard(ui.localization)
	card.SetRemoveCallback(ui.onRemoveTracker)
	return card
}

// updateTrackerItem updates a list item with current derived state
func (ui *RootUI) updateTrackerItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.filteredViews) {
		return
	}

	if card, ok := item.(*TrackerCard); ok {
		// Re-set the callback every time: list items are recycled
		card.SetRemoveCallback(ui.onRemoveTracker)
		card.UpdateView(ui.filteredViews[id], ui.trackerSvc.Mode(), ui.settings.GetShowSeconds())
	}
}

// onFilterChanged handles filter selector changes
func (ui *RootUI) onFilterChanged(selected string) {
	for _, filter := range filterOptions {
		if filter.String() == selected {
			ui.currentFilter = filter
			break
		}
	}

	ui.applyFilter()
	ui.trackerList.Refresh()
	ui.updateCountLabel()
}

// applyFilter rebuilds the visible subset from the last derived views
func (ui *RootUI) applyFilter() {
	ui.filteredViews = ui.filteredViews[:0]
	for _, view := range ui.allViews {
		if ui.shouldShowView(view) {
			ui.filteredViews = append(ui.filteredViews, view)
		}
	}
}

// shouldShowView returns whether a view passes the current filter
func (ui *RootUI) shouldShowView(view model.View) bool {
	switch ui.currentFilter {
	case FilterActive:
		return !view.Expired
	case FilterExpired:
		return view.Expired
	default:
		return true
	}
}

// onModeChanged handles display mode selector changes
func (ui *RootUI) onModeChanged(selected string) {
	mode := modeFromLabel(selected)
	if ui.trackerSvc.Mode() == mode {
		return
	}

	if err := ui.trackerSvc.SetMode(mode); err != nil {
		log.Printf("Error switching display mode to %q: %v", selected, err)
		return
	}

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onRemoveTracker handles the remove button on a tracker card
func (ui *RootUI) onRemoveTracker(trackerID string) {
	log.Printf("onRemoveTracker called for tracker %s", trackerID)

	if !ui.settings.GetConfirmRemoval() {
		ui.trackerSvc.Remove(trackerID)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyRemoveTracker),
		ui.localization.GetText(KeyRemoveConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.trackerSvc.Remove(trackerID)
		}, ui.window)
}

// onResetAll handles the reset-all action with confirmation
func (ui *RootUI) onResetAll() {
	count := ui.trackerSvc.Len()
	if count == 0 {
		return
	}

	message := fmt.Sprintf(ui.localization.GetText(KeyResetConfirm), count)
	dialog.ShowConfirm(ui.localization.GetText(KeyResetAll), message, func(confirmed bool) {
		if !confirmed {
			return
		}
		ui.trackerSvc.Clear()
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		// Language may have changed in the dialog
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// onStoreChange handles change notifications from the tracker store
func (ui *RootUI) onStoreChange() {
	ui.refreshViews()

	// Keep menu checkmarks in sync when the mode changed elsewhere
	fyne.Do(func() {
		selected := labelForMode(ui.trackerSvc.Mode())
		if ui.modeSelect.Selected != selected {
			ui.modeSelect.SetSelected(selected)
		}
	})
}

// refreshViews re-derives every tracker's presentation state at the current
// instant and redraws the list.
func (ui *RootUI) refreshViews() {
	views := ui.trackerSvc.Views(ui.clock.Now())

	fyne.Do(func() {
		ui.allViews = views
		ui.applyFilter()
		ui.trackerList.Refresh()
		ui.updateCountLabel()
	})
}

// updateCountLabel updates the active/expired summary
func (ui *RootUI) updateCountLabel() {
	active, expired := 0, 0
	for _, view := range ui.allViews {
		if view.Expired {
			expired++
		} else {
			active++
		}
	}
	ui.countLabel.SetText(fmt.Sprintf("%d active%s%d expired", active, MiddleDotSeparator, expired))
}

// startTicker begins the once-per-second countdown refresh. Derived state is
// never stored: every tick recomputes all views from the trackers and the
// current instant.
func (ui *RootUI) startTicker() {
	ticker := ui.clock.NewTicker(TickInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ui.tickerDone:
				return
			case <-ticker.Chan():
				ui.refreshViews()
			}
		}
	}()

	log.Printf("Countdown ticker started with interval %s", TickInterval)
}

// Stop terminates the background refresh loop
func (ui *RootUI) Stop() {
	select {
	case <-ui.tickerDone:
		// Already stopped
	default:
		close(ui.tickerDone)
	}
}

// labelForMode maps a display mode to its selector label
func labelForMode(mode model.DisplayMode) string {
	if mode == model.ModeBar {
		return ModeLabelBar
	}
	return ModeLabelCircular
}

// modeFromLabel maps a selector label back to a display mode
func modeFromLabel(label string) model.DisplayMode {
	if label == ModeLabelBar {
		return model.ModeBar
	}
	return model.ModeCircular
}
