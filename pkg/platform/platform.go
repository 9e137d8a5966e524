// Package platform identifies the host operating system and classifies
// it into the family that selects a GPU tool discovery strategy.
package platform

import "runtime"

// Platform identifies the current OS platform.
type Platform string

const (
	// Windows represents Windows hosts.
	Windows Platform = "windows"
	// Linux represents Linux distributions.
	Linux Platform = "linux"
	// Darwin represents macOS.
	Darwin Platform = "darwin"
)

// Family groups platforms by how the diagnostic executable is found.
type Family int

const (
	// FamilyWindows hosts keep driver binaries under the driver store.
	FamilyWindows Family = iota
	// FamilyPosix hosts are expected to expose tools on $PATH.
	FamilyPosix
	// FamilyOther covers platforms with no known discovery strategy.
	FamilyOther
)

// Current returns the platform for the running OS.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Family classifies p into a discovery strategy bucket. Only Linux is
// treated as POSIX here: macOS ships no vendor diagnostic tool to find,
// so it falls through to FamilyOther.
func (p Platform) Family() Family {
	switch p {
	case Windows:
		return FamilyWindows
	case Linux:
		return FamilyPosix
	default:
		return FamilyOther
	}
}

// String returns the GOOS-style name of p.
func (p Platform) String() string {
	return string(p)
}
