package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ambient-player/internal/config"
)

func newTestSettings(t *testing.T, soundsDir string) *config.Settings {
	t.Helper()
	cfg := config.Default()
	cfg.SoundsDir = soundsDir
	cfg.AssetsDir = t.TempDir()
	cfg.Language = "en"
	return config.NewSettings(cfg)
}

func TestNewRootUI(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"rain.mp3", "bird.mp3", "city.mp3", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	app := test.NewApp()
	app.Settings().SetTheme(NewAmbientTheme())
	window := app.NewWindow("")
	factory := newFakeFactory()

	root := NewRootUI(window, app, newTestSettings(t, dir), factory.open)

	rows := root.Grid().Rows()
	require.Len(t, rows, 3)
	for i, name := range []string{"bird", "city", "rain"} {
		assert.Equal(t, i, rows[i].Track().ID)
		assert.Equal(t, name, rows[i].Track().Name)
	}
	assert.Equal(t, fyne.NewSize(280, 110), root.Grid().Size())
	assert.Equal(t, "Ambient Player", window.Title())
	assert.True(t, window.FixedSize())
	assert.Equal(t, root.Grid().Content(), window.Content())

	// Rows sit in window coordinates: no padding around the grid
	assert.False(t, window.Padded())
	assert.Equal(t, fyne.NewSize(280, 110), window.Canvas().Size())
	assert.Equal(t, fyne.NewPos(0, 0), window.Content().Position())
	assert.Equal(t, fyne.NewSize(280, 110), window.Content().Size())

	root.StopAll()
	for _, p := range factory.players {
		assert.Equal(t, 1, p.stops)
	}

	window.Close()
	for _, p := range factory.players {
		assert.True(t, p.closed)
	}
}

func TestNewRootUI_MissingDirectory(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("")
	soundsDir := filepath.Join(t.TempDir(), "missing")

	var root *RootUI
	test.AssertNotificationSent(t, &fyne.Notification{
		Title:   "No sounds found",
		Content: "Put audio files into " + soundsDir,
	}, func() {
		root = NewRootUI(window, app, newTestSettings(t, soundsDir), newFakeFactory().open)
	})

	assert.Empty(t, root.Grid().Rows())
	assert.Equal(t, fyne.NewSize(280, 20), root.Grid().Size())
}

func TestNewRootUI_CustomTitle(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("")

	cfg := config.Default()
	cfg.SoundsDir = t.TempDir()
	cfg.WindowTitle = "MainWindow"

	NewRootUI(window, app, config.NewSettings(cfg), newFakeFactory().open)
	assert.Equal(t, "MainWindow", window.Title())
}

func TestNewRootUI_EscapeStopsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bird.wav"), []byte("x"), 0o644))

	app := test.NewApp()
	window := app.NewWindow("")
	factory := newFakeFactory()

	var forwarded []fyne.KeyName
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		forwarded = append(forwarded, ev.Name)
	})
	NewRootUI(window, app, newTestSettings(t, dir), factory.open)

	onKey := window.Canvas().OnTypedKey()
	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	onKey(&fyne.KeyEvent{Name: fyne.KeySpace})

	require.Len(t, factory.players, 1)
	assert.Equal(t, 1, factory.players[0].stops)
	// Keys other than Escape still reach the earlier handler
	assert.Equal(t, []fyne.KeyName{fyne.KeySpace}, forwarded)
}
