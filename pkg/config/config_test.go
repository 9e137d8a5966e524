package config

import (
	"strings"
	"testing"
)

const sampleConfigTOML = `
binary_path = "/opt/nvidia/bin/nvidia-smi"
interval_ms = 250
log_level = "debug"
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BinaryPath != "" {
		t.Errorf("expected empty BinaryPath, got %q", cfg.BinaryPath)
	}
	if cfg.IntervalMs != 1000 {
		t.Errorf("expected default interval 1000, got %d", cfg.IntervalMs)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sampleConfigTOML))
	if err != nil {
		t.Fatalf("LoadFromReader returned error: %v", err)
	}
	if cfg.BinaryPath != "/opt/nvidia/bin/nvidia-smi" {
		t.Errorf("unexpected BinaryPath %q", cfg.BinaryPath)
	}
	if cfg.IntervalMs != 250 {
		t.Errorf("unexpected IntervalMs %d", cfg.IntervalMs)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected LogLevel %q", cfg.LogLevel)
	}
}

func TestLoadFromReaderPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`interval_ms = 500`))
	if err != nil {
		t.Fatalf("LoadFromReader returned error: %v", err)
	}
	if cfg.IntervalMs != 500 {
		t.Errorf("unexpected IntervalMs %d", cfg.IntervalMs)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level to survive, got %q", cfg.LogLevel)
	}
}

func TestLoadFromReaderBadTOML(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader(`interval_ms = "lots"`)); err == nil {
		t.Error("expected error for mistyped TOML value")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GPUSCOUT_BINARY_PATH", `C:\Tools\nvidia-smi.exe`)
	t.Setenv("GPUSCOUT_INTERVAL_MS", "2000")
	t.Setenv("GPUSCOUT_LOG_LEVEL", "warn")

	cfg, err := LoadFromReader(strings.NewReader(sampleConfigTOML))
	if err != nil {
		t.Fatalf("LoadFromReader returned error: %v", err)
	}
	if cfg.BinaryPath != `C:\Tools\nvidia-smi.exe` {
		t.Errorf("env override lost: %q", cfg.BinaryPath)
	}
	if cfg.IntervalMs != 2000 {
		t.Errorf("env override lost: %d", cfg.IntervalMs)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env override lost: %q", cfg.LogLevel)
	}
}

func TestEnvOverrideBadIntervalIgnored(t *testing.T) {
	t.Setenv("GPUSCOUT_INTERVAL_MS", "soon")

	cfg, err := LoadFromReader(strings.NewReader(sampleConfigTOML))
	if err != nil {
		t.Fatalf("LoadFromReader returned error: %v", err)
	}
	if cfg.IntervalMs != 250 {
		t.Errorf("unparseable env interval should be ignored, got %d", cfg.IntervalMs)
	}
}
