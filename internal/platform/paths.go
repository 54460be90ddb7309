package platform

import (
	"os"
	"path/filepath"
)

// BundleEnvVar points at the directory a packaged build unpacks its assets to
const BundleEnvVar = "AMBIENT_PLAYER_BUNDLE"

// BaseDirectory returns the directory relative asset paths are resolved
// against. A bundle directory from BundleEnvVar wins; otherwise the working
// directory is used unless probe exists only next to the executable.
func BaseDirectory(probe string) string {
	if dir := os.Getenv(BundleEnvVar); dir != "" {
		return dir
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	if probe == "" || DirExists(filepath.Join(wd, probe)) {
		return wd
	}

	exe, err := os.Executable()
	if err != nil {
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeDir := filepath.Dir(exe)
	if DirExists(filepath.Join(exeDir, probe)) {
		return exeDir
	}
	return wd
}

// ResolveDir returns name unchanged when absolute, otherwise joined to the
// base directory found for it
func ResolveDir(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(BaseDirectory(name), name)
}

// FileExists reports whether path is an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path is an existing directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
