package main

import (
	"fmt"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"

	"github.com/nitisbig/deadline-app/internal/config"
	"github.com/nitisbig/deadline-app/internal/quotes"
	"github.com/nitisbig/deadline-app/internal/tracker"
	"github.com/nitisbig/deadline-app/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.nitisbig.deadline-app"
	AppName = "Deadline"

	WindowWidth  = 520
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services. Settings double as the snapshot store: the
	// tracker collection persists in the app preferences.
	settings := config.NewSettings(myApp)
	clock := clockwork.NewRealClock()
	picker := quotes.NewPicker(rand.NewSource(time.Now().UnixNano()))

	trackerSvc := tracker.NewService(settings, clock, picker)

	// Create and setup UI
	ui.NewRootUI(myWindow, trackerSvc, settings, clock)

	// Show and run
	myWindow.ShowAndRun()
}
