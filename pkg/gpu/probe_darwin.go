//go:build darwin

package gpu

import "os/exec"

// probePlatform detects GPUs on macOS from the system's own display
// inventory.
func probePlatform() []Device {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return nil
	}
	return parseSystemProfiler(out)
}
