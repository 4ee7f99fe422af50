package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger, got %v", err)
	}
	if InitTime().IsZero() {
		t.Fatal("expected init time to be set")
	}

	L().Debug("validate.file", "path", "config/a.yaml")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]

	var rec map[string]any
	if err := json.Unmarshal([]byte(last), &rec); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", last, err)
	}
	if rec["msg"] != "validate.file" {
		t.Errorf("expected msg=validate.file, got %v", rec["msg"])
	}
	if rec["path"] != "config/a.yaml" {
		t.Errorf("expected path attr, got %v", rec["path"])
	}
	ts, _ := rec["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("expected UTC timestamp, got %q", ts)
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug record written at info level: %s", buf.String())
	}
}

func TestSetup_NoDestinationDiscards(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if cleanup == nil {
		t.Fatal("expected non-nil cleanup")
	}
	if err := IsReady(); err == nil {
		t.Fatal("expected logger not ready without destination")
	}
	_ = cleanup()
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "confcheck.log")
	cleanup, err := Setup(Config{File: path, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	L().Info("validate.done", "checked", 2)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatal("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "validate.done") {
		t.Fatalf("expected record in log file, got %q", string(b))
	}
}
