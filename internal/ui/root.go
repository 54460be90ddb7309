package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/ambient-player/internal/config"
	"github.com/ytget/ambient-player/internal/platform"
)

// RootUI represents the main window contents
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	grid         *Grid
	soundsDir    string
}

// NewRootUI scans the sounds directory, builds the grid into window and sizes
// the window to fit it
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, openPlayer PlayerFactory) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())
	log.Printf("UI language: %s", localization.GetAvailableLanguages()[localization.GetCurrentLanguage()])

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		soundsDir:    platform.ResolveDir(settings.GetSoundsDirectory()),
	}

	// Set window title
	title := settings.GetWindowTitle()
	if title == "" {
		title = localization.GetText(KeyAppTitle)
	}
	window.SetTitle(title)

	ui.setupUI(openPlayer)
	return ui
}

// setupUI discovers the sounds and installs the grid
func (ui *RootUI) setupUI(openPlayer PlayerFactory) {
	paths, err := platform.ScanSoundFiles(ui.soundsDir, ui.settings.GetExtensions(), ui.settings.GetSortTracks())
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	log.Printf("Found %d sounds in %s", len(paths), ui.soundsDir)

	assetsDir := platform.ResolveDir(ui.settings.GetAssetsDirectory())
	ui.grid = BuildGrid(paths, GridOptions{
		Icons:      LoadIcons(assetsDir),
		Highlight:  ui.settings.GetHighlightPressed(),
		Volume:     ui.settings.GetDefaultVolume(),
		OpenPlayer: openPlayer,
	})

	// Rows are placed in window coordinates, so no theme padding around them
	ui.window.SetPadded(false)
	ui.window.SetContent(ui.grid.Content())
	ui.window.Resize(ui.grid.Size())
	ui.window.SetFixedSize(true)
	ui.window.SetOnClosed(ui.onClosed)

	ui.registerShortcuts()
	ui.notifyProblems(len(paths))

	log.Printf("UI setup completed successfully")
}

// registerShortcuts binds Escape to stop all sounds and Ctrl/Cmd+O to open
// the sounds folder
func (ui *RootUI) registerShortcuts() {
	canvas := ui.window.Canvas()
	next := canvas.OnTypedKey()
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.StopAll()
			return
		}
		if next != nil {
			next(ev)
		}
	})
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		ui.onOpenSoundsFolder()
	})
}

// notifyProblems sends a system notification for an empty or partly broken
// sound collection
func (ui *RootUI) notifyProblems(found int) {
	if ui.app == nil {
		return
	}

	switch {
	case found == 0:
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyNoSounds),
			Content: ui.localization.Format(KeyNoSoundsDetails, ui.soundsDir),
		})
	case ui.grid.NoOutput():
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: ui.localization.GetText(KeyNoAudioOutput),
		})
	case ui.grid.Unavailable() > 0:
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyUnavailable),
			Content: ui.localization.Format(KeyUnavailableCount, ui.grid.Unavailable()),
		})
	}
}

// StopAll stops every sound
func (ui *RootUI) StopAll() {
	log.Printf("Stopping all sounds")
	ui.grid.StopAll()
}

// Grid returns the installed grid
func (ui *RootUI) Grid() *Grid {
	return ui.grid
}

func (ui *RootUI) onOpenSoundsFolder() {
	if err := platform.OpenFolder(ui.soundsDir); err != nil {
		log.Printf("Error opening sounds folder %s: %v", ui.soundsDir, err)
	}
}

func (ui *RootUI) onClosed() {
	log.Printf("Window closed, releasing players")
	if err := ui.grid.Close(); err != nil {
		log.Printf("Error releasing players: %v", err)
	}
}
