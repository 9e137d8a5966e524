//go:build linux

package gpu

import (
	"os"
	"path/filepath"
	"strings"
)

// probePlatform detects GPUs on Linux by scanning sysfs DRM card
// entries for PCI vendor IDs.
func probePlatform() []Device {
	return scanDRM("/sys/class/drm")
}

// scanDRM scans root/card*/device/vendor for GPU vendor IDs. The root
// parameter exists so tests can point it at a scratch directory.
func scanDRM(root string) []Device {
	vendorFiles, err := filepath.Glob(filepath.Join(root, "card[0-9]*", "device", "vendor"))
	if err != nil || len(vendorFiles) == 0 {
		return nil
	}

	var devices []Device
	seen := make(map[string]bool)
	for _, vendorPath := range vendorFiles {
		cardDir := filepath.Dir(vendorPath)
		if seen[cardDir] {
			continue
		}
		seen[cardDir] = true

		raw, err := os.ReadFile(vendorPath)
		if err != nil {
			continue
		}
		vendor := vendorIDName(strings.TrimSpace(string(raw)))
		if vendor == "" {
			continue
		}

		dev := Device{Vendor: vendor}
		if data, err := os.ReadFile(filepath.Join(cardDir, "device")); err == nil {
			dev.Name = strings.TrimSpace(string(data))
		}
		devices = append(devices, dev)
	}
	return devices
}
