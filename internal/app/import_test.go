package app

import (
	"testing"

	"github.com/blackwell-systems/basketmine/internal/store"
)

func TestRunImport_ThenStoreMining(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1, 1, 2\n2, 1, 2\n3, 2, 3\n")

	if err := importCmd.Flags().Set("input", path); err != nil {
		t.Fatalf("failed to set input flag: %v", err)
	}
	// Dataset carries a leading transaction number; keep index-column on.
	if err := importCmd.Flags().Set("index-column", "true"); err != nil {
		t.Fatalf("failed to set index-column flag: %v", err)
	}

	if err := runImport(importCmd, nil); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}

	db, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	count, err := db.CountTransactions()
	if err != nil {
		t.Fatalf("CountTransactions failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 imported transactions, got %d", count)
	}

	// Mining from the store goes through the same path 'mine --from-store'
	// uses.
	origInput, origFromStore := mineInput, mineFromStore
	mineInput, mineFromStore = "", true
	defer func() { mineInput, mineFromStore = origInput, origFromStore }()

	if err := mineCmd.Flags().Set("minsup", "0.5"); err != nil {
		t.Fatalf("failed to set minsup flag: %v", err)
	}
	if err := runMine(mineCmd, nil); err != nil {
		t.Fatalf("runMine --from-store failed: %v", err)
	}
}

func TestRunImport_MissingInput(t *testing.T) {
	setupCommandTest(t)

	orig := importInput
	importInput = ""
	defer func() { importInput = orig }()

	if err := runImport(importCmd, nil); err == nil {
		t.Error("expected error without --input")
	}
}

func TestRunStats_WithoutImport(t *testing.T) {
	setupCommandTest(t)

	if err := runStats(statsCmd, nil); err == nil {
		t.Error("expected error when no dataset was imported")
	}
}

func TestRunStats_AfterImport(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1, 5, 6\n2, 5\n")

	if err := importCmd.Flags().Set("input", path); err != nil {
		t.Fatalf("failed to set input flag: %v", err)
	}
	if err := runImport(importCmd, nil); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}

	if err := runStats(statsCmd, nil); err != nil {
		t.Fatalf("runStats failed: %v", err)
	}
}
