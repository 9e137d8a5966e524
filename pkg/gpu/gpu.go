// Package gpu probes the host for GPU hardware using only what the
// operating system itself exposes: sysfs on Linux, system_profiler on
// macOS, the driver store on Windows. It never invokes the vendor
// diagnostic tool; consumers that want live telemetry resolve the tool
// through pkg/locator and run it themselves.
package gpu

import (
	"encoding/json"
	"strings"
)

// Device describes a single detected GPU.
type Device struct {
	Vendor string `json:"vendor"`         // "nvidia", "amd", "intel", "apple"
	Name   string `json:"name,omitempty"` // model name when the platform reports one
	VRAM   uint64 `json:"vram,omitempty"` // bytes, 0 if unknown
}

// Probe returns the GPUs visible to the current platform. A host with no
// detectable GPU yields an empty result, never an error.
func Probe() []Device {
	return probePlatform()
}

// vendorIDName maps PCI vendor IDs to canonical vendor names.
func vendorIDName(id string) string {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "0x10de":
		return "nvidia"
	case "0x1002":
		return "amd"
	case "0x8086":
		return "intel"
	default:
		return ""
	}
}

// normalizeVendor maps a verbose vendor string to a short canonical
// form. Intel is checked before AMD/ATI because "Intel Corporation"
// contains "ati".
func normalizeVendor(vendor string) string {
	lower := strings.ToLower(vendor)
	switch {
	case strings.Contains(lower, "nvidia"):
		return "nvidia"
	case strings.Contains(lower, "intel"):
		return "intel"
	case strings.Contains(lower, "apple"):
		return "apple"
	case strings.Contains(lower, "amd") || strings.Contains(lower, "ati"):
		return "amd"
	default:
		return strings.ToLower(strings.TrimSpace(vendor))
	}
}

// spDisplays is the JSON shape of system_profiler SPDisplaysDataType -json.
type spDisplays struct {
	SPDisplaysDataType []spDisplayEntry `json:"SPDisplaysDataType"`
}

type spDisplayEntry struct {
	Name       string `json:"sppci_model"`
	Vendor     string `json:"sppci_vendor"`
	VRAM       string `json:"sppci_vram"`        // e.g. "8 GB" or "8192 MB"
	VRAMShared string `json:"sppci_vram_shared"` // integrated GPUs report this instead
}

// parseSystemProfiler parses the JSON output of
// system_profiler SPDisplaysDataType -json.
func parseSystemProfiler(jsonData []byte) []Device {
	if len(jsonData) == 0 {
		return nil
	}

	var data spDisplays
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil
	}

	var devices []Device
	for _, entry := range data.SPDisplaysDataType {
		vramStr := entry.VRAM
		if vramStr == "" {
			vramStr = entry.VRAMShared
		}
		devices = append(devices, Device{
			Vendor: normalizeVendor(entry.Vendor),
			Name:   entry.Name,
			VRAM:   parseVRAM(vramStr),
		})
	}
	return devices
}

// parseVRAM converts human-readable VRAM strings like "8 GB" or
// "8192 MB" to bytes. Returns 0 for anything unparseable.
func parseVRAM(s string) uint64 {
	lower := strings.ToLower(strings.TrimSpace(s))

	var mult uint64
	var numStr string
	switch {
	case strings.HasSuffix(lower, " gb"):
		mult = 1024 * 1024 * 1024
		numStr = strings.TrimSuffix(lower, " gb")
	case strings.HasSuffix(lower, " mb"):
		mult = 1024 * 1024
		numStr = strings.TrimSuffix(lower, " mb")
	default:
		return 0
	}

	val := parseFloat(strings.TrimSpace(numStr))
	if val <= 0 {
		return 0
	}
	return uint64(val * float64(mult))
}
