package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultThresholds(t *testing.T) {
	cfg := Default()
	if cfg.GreenThreshold != 70 || cfg.YellowThreshold != 50 {
		t.Fatalf("default thresholds must be 70/50, got %v/%v", cfg.GreenThreshold, cfg.YellowThreshold)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080 got %s", cfg.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\ngreen_threshold: 80\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090 got %s", cfg.Addr)
	}
	if cfg.GreenThreshold != 80 {
		t.Fatalf("expected 80 got %v", cfg.GreenThreshold)
	}
	if cfg.YellowThreshold != 50 {
		t.Fatalf("unset keys keep defaults, got %v", cfg.YellowThreshold)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("EXECBOARD_ADDR", ":7070")
	t.Setenv("EXECBOARD_YELLOW_THRESHOLD", "40")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("env must win over file, got %s", cfg.Addr)
	}
	if cfg.YellowThreshold != 40 {
		t.Fatalf("expected 40 got %v", cfg.YellowThreshold)
	}
}

func TestLoadRejectsInvertedThresholds(t *testing.T) {
	t.Setenv("EXECBOARD_GREEN_THRESHOLD", "30")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for yellow above green")
	}
}
