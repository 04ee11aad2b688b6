package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the tracker store and renders the tracker list,
// the once-per-second countdown refresh, and the settings dialog.
