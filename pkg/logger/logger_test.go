package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersWithoutInit(t *testing.T) {
	old := Logger
	Logger = nil
	defer func() { Logger = old }()

	// Must not panic before Init.
	Debug("debug")
	Info("info", "key", "value")
	Warn("warn")
	Error("error")
}

func TestInitWritesLogFile(t *testing.T) {
	old := Logger
	defer func() { Logger = old }()

	dir := t.TempDir()
	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("Loaded routine file", "rows", 12)
	Debug("hidden at info level")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "routinegen.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Loaded routine file") {
		t.Errorf("expected info message in log, got %q", content)
	}
	if strings.Contains(content, "hidden at info level") {
		t.Errorf("expected debug message to be filtered out")
	}
}
