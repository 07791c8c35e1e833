package common

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// DockerEnabled reports whether container-backed tests should run.
func DockerEnabled() bool {
	return os.Getenv("BUDDY_TEST_DOCKER") == "true"
}

// RequireDocker skips the test unless BUDDY_TEST_DOCKER=true.
func RequireDocker(t *testing.T) {
	t.Helper()
	if !DockerEnabled() {
		t.Skip("Docker tests disabled (set BUDDY_TEST_DOCKER=true to enable)")
	}
}

// ResultsDir creates tests/results/{datetime}-{test-name} for saved output.
func ResultsDir(t *testing.T) string {
	t.Helper()
	datetime := time.Now().Format("20060102-150405")
	dir := filepath.Join(FindProjectRoot(), "tests", "results", datetime+"-"+filepath.Base(t.Name()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create results dir: %v", err)
	}
	return dir
}

// SaveResult writes data into dir, logging rather than failing on error.
func SaveResult(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Logf("Warning: failed to save %s: %v", name, err)
	}
}

// FindProjectRoot walks up from the working directory to the go.mod.
func FindProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// FormatJSON pretty-prints raw JSON, returning it unchanged if invalid.
func FormatJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}
