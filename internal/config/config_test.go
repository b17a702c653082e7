package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tabhash/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "tabhash", "config.toml")
	if resolved != wantPath {
		t.Fatalf("resolved = %q, want %q", resolved, wantPath)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Fingerprint.Workers != 0 {
		t.Fatalf("unexpected worker default: %d", cfg.Fingerprint.Workers)
	}
	if cfg.Preview.Rows != 10 {
		t.Fatalf("unexpected preview default: %d", cfg.Preview.Rows)
	}
}

func TestLoadReadsAndNormalizesFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "Debug"
format = "JSON"
directory = "~/logs"

[fingerprint]
workers = 4

[preview]
rows = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if want := filepath.Join(tempHome, "logs"); cfg.Logging.Directory != want {
		t.Fatalf("directory = %q, want %q", cfg.Logging.Directory, want)
	}
	if cfg.Fingerprint.Workers != 4 || cfg.Preview.Rows != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("err = %v, want logging.format error", err)
	}
}

func TestLoadRejectsNegativeWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[fingerprint]\nworkers = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "fingerprint.workers") {
		t.Fatalf("err = %v, want fingerprint.workers error", err)
	}
}

func TestLoadRejectsNegativePreviewRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[preview]\nrows = -2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "preview.rows") {
		t.Fatalf("err = %v, want preview.rows error", err)
	}
}

func TestCreateSampleLoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}
