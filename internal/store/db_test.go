package store

import (
	"testing"

	"github.com/blackwell-systems/basketmine/internal/mining"
	"github.com/blackwell-systems/basketmine/internal/txsource"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return s
}

func TestImportFrom(t *testing.T) {
	s := setupTestStore(t)

	src := txsource.NewMemorySource([]int{1, 2, 3}, []int{2, 3}, []int{1})
	count, err := s.ImportFrom(src, "test.csv")
	if err != nil {
		t.Fatalf("ImportFrom failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 imported transactions, got %d", count)
	}

	stored, err := s.CountTransactions()
	if err != nil {
		t.Fatalf("CountTransactions failed: %v", err)
	}
	if stored != 3 {
		t.Errorf("expected 3 stored transactions, got %d", stored)
	}
}

func TestImportFrom_ReplacesPreviousDataset(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.ImportFrom(txsource.NewMemorySource([]int{1}, []int{2}), "old.csv"); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := s.ImportFrom(txsource.NewMemorySource([]int{5, 6}), "new.csv"); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	count, err := s.CountTransactions()
	if err != nil {
		t.Fatalf("CountTransactions failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected second import to replace the first, got %d transactions", count)
	}

	info, err := s.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.SourcePath != "new.csv" {
		t.Errorf("expected source path new.csv, got %s", info.SourcePath)
	}
	if info.Transactions != 1 {
		t.Errorf("expected 1 transaction in metadata, got %d", info.Transactions)
	}
	if info.DistinctItems != 2 {
		t.Errorf("expected 2 distinct items, got %d", info.DistinctItems)
	}
}

func TestInfo_NoImport(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Info(); err == nil {
		t.Error("expected error when no dataset was imported")
	}
}

func TestSource_ScanIsRestartable(t *testing.T) {
	s := setupTestStore(t)

	records := [][]int{{1, 2, 3}, {2, 3}, {1}}
	if _, err := s.ImportFrom(txsource.NewMemorySource(records...), "test.csv"); err != nil {
		t.Fatalf("ImportFrom failed: %v", err)
	}

	src := s.Source()
	for pass := 1; pass <= 2; pass++ {
		var got []mining.Transaction
		err := src.Scan(func(tx mining.Transaction) error {
			got = append(got, tx)
			return nil
		})
		if err != nil {
			t.Fatalf("pass %d: Scan failed: %v", pass, err)
		}
		if len(got) != len(records) {
			t.Fatalf("pass %d: expected %d transactions, got %d", pass, len(records), len(got))
		}
		for i, items := range records {
			if got[i].Cardinality() != len(items) {
				t.Errorf("pass %d: transaction %d has %d items, want %d",
					pass, i, got[i].Cardinality(), len(items))
			}
			for _, item := range items {
				if !got[i].Contains(item) {
					t.Errorf("pass %d: transaction %d missing item %d", pass, i, item)
				}
			}
		}
	}
}

func TestTopItems(t *testing.T) {
	s := setupTestStore(t)

	src := txsource.NewMemorySource([]int{1, 2}, []int{1, 2}, []int{1}, []int{3})
	if _, err := s.ImportFrom(src, "test.csv"); err != nil {
		t.Fatalf("ImportFrom failed: %v", err)
	}

	top, err := s.TopItems(2)
	if err != nil {
		t.Fatalf("TopItems failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 items, got %d", len(top))
	}
	if top[0].Item != 1 || top[0].Count != 3 {
		t.Errorf("expected item 1 with count 3 first, got %+v", top[0])
	}
	if top[1].Item != 2 || top[1].Count != 2 {
		t.Errorf("expected item 2 with count 2 second, got %+v", top[1])
	}
}

func TestStoreSource_FeedsMiner(t *testing.T) {
	s := setupTestStore(t)

	src := txsource.NewMemorySource(
		[]int{1, 2, 3},
		[]int{1, 2},
		[]int{2, 3},
		[]int{1, 3},
	)
	if _, err := s.ImportFrom(src, "test.csv"); err != nil {
		t.Fatalf("ImportFrom failed: %v", err)
	}

	m, err := mining.NewMiner(s.Source(), mining.Config{MinSupport: 0.4})
	if err != nil {
		t.Fatalf("NewMiner failed: %v", err)
	}
	res, err := m.Mine()
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	if res.N != 4 {
		t.Errorf("expected n=4, got %d", res.N)
	}
	// Items 1, 2, 3 each occur in 3 of 4 transactions; every pair in 2,
	// ratio 0.5 > 0.4, and the triple in 1 only.
	if len(res.Itemsets) != 6 {
		t.Errorf("expected 6 frequent itemsets, got %d: %v", len(res.Itemsets), res.Itemsets)
	}
}
