package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/ncruces/zenity"

	"github.com/ytget/ambient-player/internal/audio"
	"github.com/ytget/ambient-player/internal/config"
	"github.com/ytget/ambient-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID    = "com.ytget.ambient-player"
	AppTitle = "Ambient Player"
)

func main() {
	log.Printf("Ambient Player v%s starting...", version)

	cfgPath := config.DefaultPath()
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		if cfg == nil {
			fatalf("Cannot read configuration file %s: %v", cfgPath, err)
		}
		log.Printf("Warning: could not write starter config %s: %v", cfgPath, err)
	}
	settings := config.NewSettings(cfg)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAmbientTheme())

	myWindow := myApp.NewWindow("")

	// Status callbacks arrive from the speaker goroutine; fyne.Do moves them
	// onto the UI thread
	backend := audio.NewBackend(settings.GetBufferDuration(), fyne.Do, log.Default())
	if err := backend.Init(); err != nil {
		log.Printf("Warning: %v; sounds will be silent", err)
	}

	ui.NewRootUI(myWindow, myApp, settings, backend.Open)

	myWindow.ShowAndRun()
}

// fatalf reports a startup error in a native dialog before any window exists
// and exits
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if err := zenity.Error(msg, zenity.Title(AppTitle)); err != nil {
		log.Printf("Warning: could not show error dialog: %v", err)
	}
	log.Fatal(msg)
}
