package txsource

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/basketmine/internal/mining"
)

// maxLineBytes bounds a single dataset record; basket exports with very
// wide transactions still fit comfortably.
const maxLineBytes = 1 << 20

// CSVSource reads transactions from a delimited text file. The file is
// re-opened on every Scan, so the miner's repeated full passes always start
// from the first record without the source holding anything in memory.
type CSVSource struct {
	Path string

	// Delimiter separates item fields; defaults to "," when empty.
	Delimiter string

	// IndexColumn marks datasets whose first field is a transaction
	// sequence number to be dropped during parsing.
	IndexColumn bool
}

// NewCSVSource returns a comma-delimited source over path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path, Delimiter: ","}
}

// Scan implements mining.Source. Blank lines are skipped; a malformed
// record fails the scan with its line number.
func (s *CSVSource) Scan(fn func(tx mining.Transaction) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	delim := s.Delimiter
	if delim == "" {
		delim = ","
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tx, err := ParseLine(line, delim, s.IndexColumn)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := fn(tx); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	return nil
}
