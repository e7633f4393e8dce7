package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crossfeed/onboard/internal/config"
)

func TestOpenEngineDefaultsToFileBackend(t *testing.T) {
	baseDir := t.TempDir()

	eng, cleanup, err := openEngine(baseDir)
	if err != nil {
		t.Fatalf("openEngine: %v", err)
	}
	defer cleanup()

	eng.CompleteStep("connect-platform")
	if err := eng.PersistErr(); err != nil {
		t.Fatalf("persist: %v", err)
	}

	if _, err := os.Stat(filepath.Join(baseDir, ".crossfeed", "onboarding.json")); err != nil {
		t.Fatalf("file backend did not write the record: %v", err)
	}

	// Progress survives into a second engine
	eng2, cleanup2, err := openEngine(baseDir)
	if err != nil {
		t.Fatalf("openEngine (second): %v", err)
	}
	defer cleanup2()
	if got := eng2.Progress(); got != 20 {
		t.Fatalf("progress in second session: got %d, want 20", got)
	}
}

func TestOpenEngineSQLiteBackend(t *testing.T) {
	baseDir := t.TempDir()
	if err := config.SetBackend(baseDir, config.BackendSQLite); err != nil {
		t.Fatalf("SetBackend: %v", err)
	}

	eng, cleanup, err := openEngine(baseDir)
	if err != nil {
		t.Fatalf("openEngine: %v", err)
	}
	eng.CompleteStep("connect-platform")
	if err := eng.PersistErr(); err != nil {
		t.Fatalf("persist: %v", err)
	}
	cleanup()

	if _, err := os.Stat(filepath.Join(baseDir, ".crossfeed", "onboarding.db")); err != nil {
		t.Fatalf("sqlite backend did not create the database: %v", err)
	}

	eng2, cleanup2, err := openEngine(baseDir)
	if err != nil {
		t.Fatalf("openEngine (second): %v", err)
	}
	defer cleanup2()
	if got := eng2.Progress(); got != 20 {
		t.Fatalf("progress in second session: got %d, want 20", got)
	}
}

func TestOpenEngineBrokenConfigFallsBack(t *testing.T) {
	baseDir := t.TempDir()
	dir := filepath.Join(baseDir, ".crossfeed")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{broken`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	eng, cleanup, err := openEngine(baseDir)
	if err != nil {
		t.Fatalf("openEngine with broken config: %v", err)
	}
	defer cleanup()
	if eng == nil {
		t.Fatal("nil engine")
	}
}
