package locator

import (
	"os"
	"time"
)

// FS is the slice of the filesystem the Locator needs. It exists so
// tests can script directory contents and count accesses.
type FS interface {
	// ReadDir lists the subdirectory names of dir.
	ReadDir(dir string) ([]string, error)

	// FileExists reports whether path exists and is a regular file.
	FileExists(path string) bool

	// CreationTime returns the creation timestamp of path.
	CreationTime(path string) (time.Time, error)
}

// osFS is the production FS backed by the os package.
type osFS struct{}

func (osFS) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (osFS) FileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func (osFS) CreationTime(path string) (time.Time, error) {
	return fileCreationTime(path)
}
