// Package hostinfo gathers a small host identity snapshot to accompany
// GPU discovery output. It uses gopsutil so the same code works on
// Windows, Linux, and macOS.
package hostinfo

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info is the host snapshot. Fields that cannot be collected are left
// at their zero value.
type Info struct {
	Hostname        string        `json:"hostname"`
	OS              string        `json:"os"`
	Platform        string        `json:"platform"`
	PlatformVersion string        `json:"platform_version,omitempty"`
	KernelVersion   string        `json:"kernel_version,omitempty"`
	Arch            string        `json:"arch"`
	Uptime          time.Duration `json:"uptime"`
	TotalMemory     uint64        `json:"total_memory"`
}

// Collect gathers the snapshot. Subsystems that fail are skipped so the
// caller always gets as much data as possible.
func Collect(ctx context.Context) Info {
	var info Info

	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Hostname = hi.Hostname
		info.OS = hi.OS
		info.Platform = hi.Platform
		info.PlatformVersion = hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
		info.Arch = hi.KernelArch
		info.Uptime = time.Duration(hi.Uptime) * time.Second
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
	}

	return info
}
