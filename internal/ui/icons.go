package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ambient-player/internal/model"
)

// IconSet maps each control role to the icon its buttons display
type IconSet map[model.ControlRole]fyne.Resource

// LoadIcons reads the role icons from assetsDir. A missing icon falls back to
// the theme's media icon for that role.
func LoadIcons(assetsDir string) IconSet {
	icons := make(IconSet, 2)
	for _, role := range []model.ControlRole{model.RolePlay, model.RoleStop} {
		path := filepath.Join(assetsDir, role.IconFile())
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			log.Printf("Warning: icon %s not available, using theme icon: %v", path, err)
			res = fallbackIcon(role)
		}
		icons[role] = res
	}
	return icons
}

// Icon returns the icon for role, falling back to the theme icon
func (is IconSet) Icon(role model.ControlRole) fyne.Resource {
	if res, ok := is[role]; ok && res != nil {
		return res
	}
	return fallbackIcon(role)
}

func fallbackIcon(role model.ControlRole) fyne.Resource {
	if role == model.RoleStop {
		return theme.MediaStopIcon()
	}
	return theme.MediaPlayIcon()
}
