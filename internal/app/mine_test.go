package app

import (
	"os"
	"path/filepath"
	"testing"
)

// setupCommandTest isolates the config dir and database path used by the
// commands under test.
func setupCommandTest(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	orig := dbPath
	dbPath = filepath.Join(t.TempDir(), "test.db")
	t.Cleanup(func() { dbPath = orig })
}

func writeTestDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestRunMine_FromFile(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1,2,3\n1,2\n2,3\n1,3\n")

	if err := mineCmd.Flags().Set("input", path); err != nil {
		t.Fatalf("failed to set input flag: %v", err)
	}
	if err := mineCmd.Flags().Set("minsup", "0.4"); err != nil {
		t.Fatalf("failed to set minsup flag: %v", err)
	}
	if err := mineCmd.Flags().Set("index-column", "false"); err != nil {
		t.Fatalf("failed to set index-column flag: %v", err)
	}

	if err := runMine(mineCmd, nil); err != nil {
		t.Fatalf("runMine failed: %v", err)
	}
}

func TestRunMine_MissingInput(t *testing.T) {
	setupCommandTest(t)

	orig := mineInput
	mineInput = ""
	defer func() { mineInput = orig }()

	mineFromStore = false
	if err := runMine(mineCmd, nil); err == nil {
		t.Error("expected error without input or --from-store")
	}
}

func TestRunMine_FromStoreWithoutImport(t *testing.T) {
	setupCommandTest(t)

	origInput, origFromStore := mineInput, mineFromStore
	mineInput, mineFromStore = "", true
	defer func() { mineInput, mineFromStore = origInput, origFromStore }()

	if err := runMine(mineCmd, nil); err == nil {
		t.Error("expected error when no dataset was imported")
	}
}

func TestRunMine_InvalidThreshold(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1,2\n")

	if err := mineCmd.Flags().Set("input", path); err != nil {
		t.Fatalf("failed to set input flag: %v", err)
	}
	if err := mineCmd.Flags().Set("minsup", "1.5"); err != nil {
		t.Fatalf("failed to set minsup flag: %v", err)
	}
	mineFromStore = false

	if err := runMine(mineCmd, nil); err == nil {
		t.Error("expected error for minsup outside (0, 1]")
	}
}
