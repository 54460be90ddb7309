package ui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ambient-player/internal/model"
)

func TestLoadIcons_FromAssets(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, model.RolePlay.IconFile()))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())

	icons := LoadIcons(dir)

	assert.Equal(t, "play_black_big.png", icons.Icon(model.RolePlay).Name())
	// The stop icon is missing and falls back to the theme
	assert.Equal(t, theme.MediaStopIcon().Name(), icons.Icon(model.RoleStop).Name())
}

func TestIconSet_NilFallback(t *testing.T) {
	var icons IconSet
	assert.Equal(t, theme.MediaPlayIcon().Name(), icons.Icon(model.RolePlay).Name())
	assert.Equal(t, theme.MediaStopIcon().Name(), icons.Icon(model.RoleStop).Name())
}
