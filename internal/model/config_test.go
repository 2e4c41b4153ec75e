package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Notify.Enabled {
		t.Error("default Notify.Enabled should be true")
	}
	if cfg.Display.TickIntervalSec != 1 {
		t.Errorf("default TickIntervalSec = %d, want 1", cfg.Display.TickIntervalSec)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &AppConfig{
		DBPath: "/tmp/countdown-test.db",
		Notify: NotifyConfig{
			Enabled: false,
			Command: "notify-send",
		},
		Display: DisplayConfig{
			TickIntervalSec: 2,
		},
	}

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.DBPath != cfg.DBPath {
		t.Errorf("DBPath = %q, want %q", loaded.DBPath, cfg.DBPath)
	}
	if loaded.Notify.Enabled != cfg.Notify.Enabled || loaded.Notify.Command != cfg.Notify.Command {
		t.Errorf("Notify = %+v, want %+v", loaded.Notify, cfg.Notify)
	}
	if loaded.Display.TickIntervalSec != 2 {
		t.Errorf("TickIntervalSec = %d, want 2", loaded.Display.TickIntervalSec)
	}
}

func TestLoadConfigClampsNonPositiveTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "display:\n  tick_interval_sec: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.TickIntervalSec != 1 {
		t.Errorf("TickIntervalSec = %d, want clamped to 1", cfg.Display.TickIntervalSec)
	}
}

func TestTickIntervalDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{seconds: 1, want: time.Second},
		{seconds: 5, want: 5 * time.Second},
		{seconds: 0, want: time.Second},
		{seconds: -3, want: time.Second},
	}

	for _, tt := range tests {
		d := DisplayConfig{TickIntervalSec: tt.seconds}
		if got := d.TickInterval(); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}
