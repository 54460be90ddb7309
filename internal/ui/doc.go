package ui

// Package ui contains the Fyne-based desktop user interface. It discovers the
// sounds, builds one row of controls per sound at fixed positions, and routes
// button and slider events to each row's own audio player.
