package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("NETVIZ_BUCKET", "")
	t.Setenv("NETVIZ_STORE", "")
	t.Setenv("NETVIZ_DATA_DIR", "")

	cfg := Load()
	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Store != "gcs" {
		t.Errorf("expected gcs backend, got %q", cfg.Store)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NETVIZ_BUCKET", "my-bucket")
	t.Setenv("NETVIZ_STORE", "file")
	t.Setenv("NETVIZ_DATA_DIR", "/tmp/netviz")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Bucket != "my-bucket" {
		t.Errorf("expected bucket override, got %q", cfg.Bucket)
	}
	if cfg.Store != "file" {
		t.Errorf("expected file backend, got %q", cfg.Store)
	}
	if cfg.DataDir != "/tmp/netviz" {
		t.Errorf("expected data dir override, got %q", cfg.DataDir)
	}
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := Load()
	if cfg.Port != DefaultPort {
		t.Errorf("expected fallback to %d, got %d", DefaultPort, cfg.Port)
	}
}
