package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/docscan-cli/internal/hough"
)

func TestLoadAndApplyOverridesDetectorTunables(t *testing.T) {
	origGradientError := hough.GradientError
	origMaxAngError := hough.MaxAngError
	t.Cleanup(func() {
		hough.GradientError = origGradientError
		hough.MaxAngError = origMaxAngError
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "docscan.yaml")
	yaml := "detector:\n  gradient_error: 5\n  max_ang_error: 6\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f.Apply()

	if hough.GradientError != 5 {
		t.Errorf("GradientError = %d, want 5", hough.GradientError)
	}
	if hough.MaxAngError != 6 {
		t.Errorf("MaxAngError = %d, want 6", hough.MaxAngError)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/docscan.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
