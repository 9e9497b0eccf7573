// Package txsource provides restartable transaction sources for the miner:
// a CSV file source that re-opens the file on every scan and an in-memory
// source for fixtures and small datasets. Parsing happens here; the mining
// core receives already-validated item sets.
package txsource

import (
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/blackwell-systems/basketmine/internal/mining"
)

// ParseLine converts one raw dataset record into an item set. Fields are
// split on delim; tokens tolerate surrounding whitespace and empty fields
// are skipped. With indexColumn set, the first field is a transaction
// sequence number and is dropped before building the set.
func ParseLine(raw, delim string, indexColumn bool) (mining.Transaction, error) {
	fields := strings.Split(raw, delim)
	if indexColumn {
		if len(fields) < 2 {
			return nil, fmt.Errorf("record %q has no items after the index column", raw)
		}
		fields = fields[1:]
	}

	tx := mapset.NewThreadUnsafeSet[int]()
	for _, field := range fields {
		tok := strings.TrimSpace(field)
		if tok == "" {
			continue
		}
		item, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid item token %q", tok)
		}
		tx.Add(item)
	}
	return tx, nil
}

// MemorySource serves a fixed dataset from memory. Each Scan iterates the
// same transactions from the start, satisfying the restartable contract.
type MemorySource struct {
	txs []mining.Transaction
}

// NewMemorySource builds a source from raw item records.
func NewMemorySource(records ...[]int) *MemorySource {
	src := &MemorySource{}
	for _, items := range records {
		src.txs = append(src.txs, mapset.NewThreadUnsafeSet(items...))
	}
	return src
}

// Append adds one transaction to the dataset.
func (s *MemorySource) Append(items ...int) {
	s.txs = append(s.txs, mapset.NewThreadUnsafeSet(items...))
}

// Len returns the number of transactions held.
func (s *MemorySource) Len() int {
	return len(s.txs)
}

// Scan implements mining.Source.
func (s *MemorySource) Scan(fn func(tx mining.Transaction) error) error {
	for _, tx := range s.txs {
		if err := fn(tx); err != nil {
			return err
		}
	}
	return nil
}
