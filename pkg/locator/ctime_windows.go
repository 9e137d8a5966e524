//go:build windows

package locator

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// fileCreationTime reads the creation timestamp from the file's
// attribute data.
func fileCreationTime(path string) (time.Time, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return time.Time{}, err
	}
	var data windows.Win32FileAttributeData
	err = windows.GetFileAttributesEx(p, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), nil
}
