package txsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/basketmine/internal/mining"
)

func TestParseLine_DropsIndexColumn(t *testing.T) {
	tx, err := ParseLine("42, 7, 12, 7", ",", true)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	if tx.Cardinality() != 2 {
		t.Errorf("expected 2 distinct items, got %d", tx.Cardinality())
	}
	if !tx.Contains(7) || !tx.Contains(12) {
		t.Errorf("expected items 7 and 12, got %v", tx)
	}
	if tx.Contains(42) {
		t.Error("index column value 42 must be dropped")
	}
}

func TestParseLine_WhitespaceTolerantTokens(t *testing.T) {
	tx, err := ParseLine(" 1,  2 ,3 ", ",", false)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	for _, item := range []int{1, 2, 3} {
		if !tx.Contains(item) {
			t.Errorf("expected item %d in %v", item, tx)
		}
	}
}

func TestParseLine_MalformedToken(t *testing.T) {
	if _, err := ParseLine("1,x,3", ",", false); err == nil {
		t.Error("expected error for non-numeric token")
	}
}

func TestParseLine_IndexColumnWithoutItems(t *testing.T) {
	if _, err := ParseLine("42", ",", true); err == nil {
		t.Error("expected error for record with only an index column")
	}
}

func TestParseLine_CustomDelimiter(t *testing.T) {
	tx, err := ParseLine("1;2;3", ";", false)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if tx.Cardinality() != 3 {
		t.Errorf("expected 3 items, got %d", tx.Cardinality())
	}
}

func writeDataset(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func collect(t *testing.T, src mining.Source) []mining.Transaction {
	t.Helper()
	var txs []mining.Transaction
	if err := src.Scan(func(tx mining.Transaction) error {
		txs = append(txs, tx)
		return nil
	}); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return txs
}

func TestCSVSource_ScanIsRestartable(t *testing.T) {
	path := writeDataset(t, "1,2,3\n\n2,3\n1,3\n")
	src := NewCSVSource(path)

	first := collect(t, src)
	second := collect(t, src)

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 transactions per scan, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("scan %d: transaction mismatch: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCSVSource_IndexColumn(t *testing.T) {
	path := writeDataset(t, "1, 10, 20\n2, 10\n")
	src := NewCSVSource(path)
	src.IndexColumn = true

	txs := collect(t, src)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if !txs[0].Contains(10) || !txs[0].Contains(20) || txs[0].Cardinality() != 2 {
		t.Errorf("unexpected first transaction: %v", txs[0])
	}
}

func TestCSVSource_MalformedRecordReportsLine(t *testing.T) {
	path := writeDataset(t, "1,2\n3,oops\n")
	src := NewCSVSource(path)

	err := src.Scan(func(tx mining.Transaction) error { return nil })
	if err == nil {
		t.Fatal("expected parse error")
	}
	if got := err.Error(); !strings.Contains(got, "line 2") {
		t.Errorf("error should name the failing line, got %q", got)
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))
	if err := src.Scan(func(tx mining.Transaction) error { return nil }); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource([]int{1, 2}, []int{2, 3})
	src.Append(3, 4)

	if src.Len() != 3 {
		t.Fatalf("expected 3 transactions, got %d", src.Len())
	}

	first := collect(t, src)
	second := collect(t, src)
	if len(first) != 3 || len(second) != 3 {
		t.Errorf("expected restartable scans of 3 transactions, got %d then %d", len(first), len(second))
	}
}
