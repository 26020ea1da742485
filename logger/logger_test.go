package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srms.log")
	log, err := New("info", "json", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug("hidden")
	log.Info("student added")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"student added"`) {
		t.Errorf("log file missing entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	if _, err := New("loud", "json", "stderr"); err == nil {
		t.Error("New() expected error for invalid level")
	}
	if _, err := New("info", "xml", "stderr"); err == nil {
		t.Error("New() expected error for invalid format")
	}
}
