//go:build !linux && !darwin && !windows

package gpu

// probePlatform reports nothing on platforms without a known GPU
// inventory source.
func probePlatform() []Device {
	return nil
}
