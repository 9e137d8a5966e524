// Package locator discovers the NVIDIA diagnostic executable (nvidia-smi)
// on the host and formats the telemetry query arguments consumers pass to
// it. It does not run the executable itself.
//
// Discovery is deliberately forgiving: every filesystem problem collapses
// into "not found", and a later call simply retries the scan. The first
// successful resolution is cached for the lifetime of the Locator.
package locator

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/gpu-scout/pkg/platform"
)

// Fixed names of the diagnostic executable per platform family.
const (
	exeName        = "nvidia-smi"
	exeNameWindows = "nvidia-smi.exe"
)

// driverStoreDir returns the Windows driver repository path on the given
// system drive, e.g. `C:\Windows\System32\DriverStore\FileRepository`.
func driverStoreDir(drive string) string {
	return filepath.Join(drive+string(filepath.Separator),
		"Windows", "System32", "DriverStore", "FileRepository")
}

// Locator finds the diagnostic executable and caches the result.
//
// The cached slot is written at most once, and only on success: absence
// is never cached, so every call before the first success re-scans the
// filesystem. A mutex serializes resolutions, so concurrent callers
// share a single in-flight scan.
type Locator struct {
	fs      FS
	plat    platform.Platform
	homeDir func() (string, error)

	mu       sync.Mutex
	resolved string // empty until the first successful resolution
}

// Option customizes a Locator. Options exist so tests can substitute the
// filesystem and host OS collaborators.
type Option func(*Locator)

// WithFS substitutes the filesystem collaborator.
func WithFS(fs FS) Option {
	return func(l *Locator) { l.fs = fs }
}

// WithPlatform substitutes the reported host platform.
func WithPlatform(p platform.Platform) Option {
	return func(l *Locator) { l.plat = p }
}

// WithHomeDir substitutes the home directory lookup used to derive the
// Windows system drive.
func WithHomeDir(fn func() (string, error)) Option {
	return func(l *Locator) { l.homeDir = fn }
}

// New returns a Locator backed by the host filesystem and OS.
func New(opts ...Option) *Locator {
	l := &Locator{
		fs:      osFS{},
		plat:    platform.Current(),
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the path to the diagnostic executable, or ("", false)
// when it cannot be found. On Linux the fixed name is returned with no
// existence check; the executable is assumed to be on $PATH. Once a
// resolution succeeds the same value is returned without touching the
// filesystem again.
func (l *Locator) Resolve() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved != "" {
		return l.resolved, true
	}

	path, ok := l.discover()
	if ok {
		l.resolved = path
	}
	return path, ok
}

// discover runs the per-platform strategy. Caller holds l.mu.
func (l *Locator) discover() (string, bool) {
	switch l.plat.Family() {
	case platform.FamilyWindows:
		return l.scanDriverStore()
	case platform.FamilyPosix:
		return exeName, true
	default:
		return "", false
	}
}

// scanDriverStore looks for the executable under the driver repository
// of the system drive. Each subdirectory is checked for the executable
// concurrently; the reduction then keeps the candidate with the newest
// creation time. The comparison is strictly greater-than, so the first
// candidate encountered seeds the accumulator and wins ties.
func (l *Locator) scanDriverStore() (string, bool) {
	base := driverStoreDir(l.systemDrive())

	names, err := l.fs.ReadDir(base)
	if err != nil {
		return "", false
	}

	matched := make([]bool, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, candidate string) {
			defer wg.Done()
			matched[i] = l.fs.FileExists(candidate)
		}(i, filepath.Join(base, name, exeNameWindows))
	}
	wg.Wait()

	var best string
	var bestTime time.Time
	for i, name := range names {
		if !matched[i] {
			continue
		}
		path := filepath.Join(base, name, exeNameWindows)
		created, err := l.fs.CreationTime(path)
		if err != nil {
			continue
		}
		if best == "" || created.After(bestTime) {
			best = path
			bestTime = created
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// systemDrive derives the active system drive from the drive letter of
// the user's home directory, defaulting to "C:" when it cannot be
// determined.
func (l *Locator) systemDrive() string {
	home, err := l.homeDir()
	if err == nil && len(home) >= 2 && home[1] == ':' {
		return home[:2]
	}
	return "C:"
}
