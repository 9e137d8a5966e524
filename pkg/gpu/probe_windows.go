//go:build windows

package gpu

import "gitlab.com/tinyland/lab/gpu-scout/pkg/locator"

// probePlatform reports an NVIDIA device when the diagnostic executable
// is present in the driver store. Windows exposes no sysfs-style GPU
// inventory, so driver presence is the strongest filesystem-only signal
// available.
func probePlatform() []Device {
	if _, ok := locator.New().Resolve(); ok {
		return []Device{{Vendor: "nvidia"}}
	}
	return nil
}
