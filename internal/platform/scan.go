package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotADirectory is returned when the sounds path exists but is a file
var ErrNotADirectory = errors.New("not a directory")

// ScanSoundFiles lists the audio files in dir whose extension is in exts.
// Hidden files and subdirectories are skipped. With sorted set the result is
// ordered by file name; otherwise the order is whatever the OS returns.
func ScanSoundFiles(dir string, exts []string, sorted bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan sounds %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan sounds %s: %w", dir, ErrNotADirectory)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("scan sounds %s: %w", dir, err)
	}
	defer f.Close()

	// Readdirnames keeps the raw directory order, unlike os.ReadDir
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("scan sounds %s: %w", dir, err)
	}
	if sorted {
		sort.Strings(names)
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !allowed[strings.ToLower(filepath.Ext(name))] {
			log.Printf("Skipping %s: unsupported extension", name)
			continue
		}
		path := filepath.Join(dir, name)
		if !FileExists(path) {
			continue
		}
		files = append(files, path)
	}

	return files, nil
}
