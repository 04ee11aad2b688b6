package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nitisbig/deadline-app/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	showSecondsCheck    *widget.Check
	confirmRemovalCheck *widget.Check
	languageSelect      *widget.Select

	// Invoked after settings were saved
	onApplied func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onApplied func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:  settings,
		window:    window,
		onApplied: onApplied,
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
	sd.showSecondsCheck = widget.NewCheck("Show seconds in countdowns", nil)
	sd.confirmRemovalCheck = widget.NewCheck("Confirm before removing a tracker", nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel("Display Settings"),
		widget.NewSeparator(),

		sd.showSecondsCheck,
		sd.confirmRemovalCheck,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.showSecondsCheck.SetChecked(sd.settings.GetShowSeconds())
	sd.confirmRemovalCheck.SetChecked(sd.settings.GetConfirmRemoval())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetShowSeconds(sd.showSecondsCheck.Checked)
	sd.settings.SetConfirmRemoval(sd.confirmRemovalCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onApplied != nil {
		sd.onApplied()
	}
}
