package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nonsonwune/srms/backend"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "1234" || cfg.Admin.DisplayID != "SRMS-ADMIN-001" {
		t.Errorf("admin = %+v", cfg.Admin)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" || cfg.Logging.OutputPath != "stderr" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	mode, err := cfg.RollMode()
	if err != nil || mode != backend.RollFromLast {
		t.Errorf("RollMode() = (%v, %v), want last", mode, err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SRMS_ADMIN_USERNAME", "registrar")
	t.Setenv("SRMS_ROSTER_ROLLMODE", "MAX")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Admin.Username != "registrar" {
		t.Errorf("username = %q, want registrar", cfg.Admin.Username)
	}
	if mode, _ := cfg.RollMode(); mode != backend.RollFromMax {
		t.Errorf("RollMode() = %v, want max", mode)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SRMS_ADMIN_PASSWORD=s3cret\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SRMS_ADMIN_PASSWORD") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Admin.Password != "s3cret" {
		t.Errorf("password = %q, want s3cret", cfg.Admin.Password)
	}
}

func TestLoadRejectsUnknownRollMode(t *testing.T) {
	t.Setenv("SRMS_ROSTER_ROLLMODE", "random")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load() expected error for unknown roll mode")
	}
}
