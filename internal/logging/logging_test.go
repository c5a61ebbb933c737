// internal/logging/logging_test.go
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remote.log")

	cleanup, err := Setup("debug", path, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.WithField("unit", 1).Debug("hello from test")
	cleanup()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello from test") {
		t.Fatalf("expected message in log file, got %q", b)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level")
	}
}

func TestSetup_RejectsBadLevel(t *testing.T) {
	if _, err := Setup("loud", "", false); err == nil {
		t.Fatalf("expected error")
	}
}
