package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Broker != "localhost" || cfg.Topic != "boats" || cfg.HTTPBind != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.OfflineThresholdSeconds != 300 || cfg.FirstEventTimeoutSeconds != 8 {
		t.Fatalf("unexpected threshold defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
broker = "mqtt.example.net"
port = 8883
use_tls = true
topic = "fleet/boats"
timezone = "UTC"
offline_threshold_seconds = 600
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Broker != "mqtt.example.net" || cfg.Port != 8883 || !cfg.UseTLS {
		t.Fatalf("broker overrides lost: %+v", cfg)
	}
	if cfg.Topic != "fleet/boats" || cfg.OfflineThresholdSeconds != 600 {
		t.Fatalf("feed overrides lost: %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.HTTPBind != ":8080" {
		t.Fatalf("default lost on partial file: %+v", cfg)
	}

	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("timezone resolution failed: %v %v", loc, err)
	}

	fc := cfg.Feed()
	if fc.Broker != "mqtt.example.net" || !fc.UseTLS || fc.FirstEventTimeout != 8*time.Second {
		t.Fatalf("feed config mapping failed: %+v", fc)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("broker = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLocationBadName(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected unknown timezone to fail")
	}
}
