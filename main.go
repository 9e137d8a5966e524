// gpu-scout locates the NVIDIA diagnostic executable on the host and
// prints the invocation details a monitoring tool needs to poll GPU
// telemetry. It never runs the executable itself.
//
// Usage:
//
//	gpu-scout [flags]
//
// Flags:
//
//	-args             Print the telemetry query argument string
//	-interval int     Polling interval in milliseconds for -args (default from config)
//	-probe            Print GPU hardware detected from OS inventory sources
//	-host             Print a host identity snapshot
//	-json             Emit JSON instead of plain text
//	-config string    Path to configuration file (default: ~/.config/gpu-scout/config.toml)
//	-verbose          Enable debug logging
//	-version          Print version and exit
//
// With no mode flag, gpu-scout resolves the executable and prints its
// path, exiting 1 when it cannot be found.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gitlab.com/tinyland/lab/gpu-scout/pkg/config"
	"gitlab.com/tinyland/lab/gpu-scout/pkg/gpu"
	"gitlab.com/tinyland/lab/gpu-scout/pkg/hostinfo"
	"gitlab.com/tinyland/lab/gpu-scout/pkg/locator"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		flagArgs     = flag.Bool("args", false, "print the telemetry query argument string")
		flagInterval = flag.Int("interval", 0, "polling interval in milliseconds for -args")
		flagProbe    = flag.Bool("probe", false, "print detected GPU hardware")
		flagHost     = flag.Bool("host", false, "print a host identity snapshot")
		flagJSON     = flag.Bool("json", false, "emit JSON instead of plain text")
		flagConfig   = flag.String("config", "", "path to configuration file")
		flagVerbose  = flag.Bool("verbose", false, "enable debug logging")
		flagVersion  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gpu-scout %s (%s)\n", version, commit)
		return
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpu-scout: %v\n", err)
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel, *flagVerbose)

	switch {
	case *flagArgs:
		interval := cfg.IntervalMs
		if *flagInterval > 0 {
			interval = *flagInterval
		}
		fmt.Println(locator.QueryArgs(interval))

	case *flagProbe:
		runProbe(*flagJSON)

	case *flagHost:
		runHost(*flagJSON)

	default:
		runResolve(cfg, *flagJSON)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func setupLogging(level string, verbose bool) {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// runResolve prints the diagnostic executable path, preferring a
// configured override to discovery.
func runResolve(cfg *config.Config, asJSON bool) {
	path, ok := cfg.BinaryPath, cfg.BinaryPath != ""
	if ok {
		slog.Debug("using configured binary path", "path", path)
	} else {
		path, ok = locator.New().Resolve()
	}

	if asJSON {
		out := struct {
			Path  string `json:"path,omitempty"`
			Found bool   `json:"found"`
		}{path, ok}
		json.NewEncoder(os.Stdout).Encode(out)
		if !ok {
			os.Exit(1)
		}
		return
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "gpu-scout: diagnostic executable not found")
		os.Exit(1)
	}
	fmt.Println(path)
}

func runProbe(asJSON bool) {
	devices := gpu.Probe()

	if asJSON {
		if devices == nil {
			devices = []gpu.Device{}
		}
		json.NewEncoder(os.Stdout).Encode(devices)
		return
	}

	if len(devices) == 0 {
		fmt.Println("no GPUs detected")
		return
	}
	for _, d := range devices {
		line := d.Vendor
		if d.Name != "" {
			line += "  " + d.Name
		}
		if d.VRAM > 0 {
			line += fmt.Sprintf("  %d MiB", d.VRAM/(1024*1024))
		}
		fmt.Println(line)
	}
}

func runHost(asJSON bool) {
	info := hostinfo.Collect(context.Background())

	if asJSON {
		json.NewEncoder(os.Stdout).Encode(info)
		return
	}

	fmt.Printf("hostname: %s\n", info.Hostname)
	fmt.Printf("os:       %s %s (%s)\n", info.Platform, info.PlatformVersion, info.Arch)
	fmt.Printf("kernel:   %s\n", info.KernelVersion)
	fmt.Printf("uptime:   %s\n", info.Uptime)
	fmt.Printf("memory:   %d MiB\n", info.TotalMemory/(1024*1024))
}
