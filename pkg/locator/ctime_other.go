//go:build !windows

package locator

import (
	"os"
	"time"
)

// fileCreationTime falls back to the modification time on platforms
// whose stat result carries no creation timestamp. The driver store
// scan only runs on Windows, so this path serves cross-platform builds
// and tests that exercise the scan through a scripted filesystem.
func fileCreationTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
