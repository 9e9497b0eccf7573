package store

import (
	"database/sql"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/blackwell-systems/basketmine/internal/mining"
)

// ImportFrom replaces the stored dataset with the transactions yielded by
// src, recording sourcePath in the import metadata. Returns the number of
// transactions imported. The whole import runs in one database transaction
// so a failed import never leaves a half-replaced dataset.
func (s *Store) ImportFrom(src mining.Source, sourcePath string) (int, error) {
	dbTx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.Exec(`DELETE FROM transactions`); err != nil {
		return 0, fmt.Errorf("failed to clear previous dataset: %w", err)
	}
	if _, err := dbTx.Exec(`DELETE FROM import_meta`); err != nil {
		return 0, fmt.Errorf("failed to clear import metadata: %w", err)
	}

	insertTx, err := dbTx.Prepare(`INSERT INTO transactions DEFAULT VALUES`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer insertTx.Close()

	insertItem, err := dbTx.Prepare(`INSERT INTO transaction_items (tx_id, item) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer insertItem.Close()

	count := 0
	err = src.Scan(func(tx mining.Transaction) error {
		res, err := insertTx.Exec()
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		txID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get transaction id: %w", err)
		}

		var itemErr error
		tx.Each(func(item int) bool {
			if _, err := insertItem.Exec(txID, item); err != nil {
				itemErr = fmt.Errorf("failed to insert item %d: %w", item, err)
				return true
			}
			return false
		})
		if itemErr != nil {
			return itemErr
		}

		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	_, err = dbTx.Exec(
		`INSERT INTO import_meta (id, source_path, imported_at, transaction_count) VALUES (1, ?, ?, ?)`,
		sourcePath,
		time.Now().UTC().Format(time.RFC3339),
		count,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record import metadata: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return count, nil
}

// CountTransactions returns the number of stored transactions.
func (s *Store) CountTransactions() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// Info returns the import metadata together with dataset-wide counts.
func (s *Store) Info() (*DatasetInfo, error) {
	info := &DatasetInfo{}

	var importedAt string
	err := s.db.QueryRow(
		`SELECT source_path, imported_at, transaction_count FROM import_meta WHERE id = 1`,
	).Scan(&info.SourcePath, &importedAt, &info.Transactions)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no dataset imported")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read import metadata: %w", err)
	}

	info.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}

	err = s.db.QueryRow(`SELECT COUNT(DISTINCT item) FROM transaction_items`).Scan(&info.DistinctItems)
	if err != nil {
		return nil, fmt.Errorf("failed to count distinct items: %w", err)
	}

	return info, nil
}

// TopItems returns the most frequent items, highest count first, ties
// broken by item value for stable output.
func (s *Store) TopItems(limit int) ([]ItemCount, error) {
	rows, err := s.db.Query(
		`SELECT item, COUNT(*) AS c FROM transaction_items GROUP BY item ORDER BY c DESC, item ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query top items: %w", err)
	}
	defer rows.Close()

	var top []ItemCount
	for rows.Next() {
		var ic ItemCount
		if err := rows.Scan(&ic.Item, &ic.Count); err != nil {
			return nil, fmt.Errorf("failed to scan item count: %w", err)
		}
		top = append(top, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top items: %w", err)
	}
	return top, nil
}

// Source returns a mining.Source over the stored dataset. Each Scan re-runs
// the backing query, satisfying the miner's restartable-scan contract.
func (s *Store) Source() mining.Source {
	return &storeSource{store: s}
}

type storeSource struct {
	store *Store
}

// Scan streams stored transactions in import order, rebuilding each item
// set from the rows grouped by transaction id.
func (src *storeSource) Scan(fn func(tx mining.Transaction) error) error {
	rows, err := src.store.db.Query(
		`SELECT tx_id, item FROM transaction_items ORDER BY tx_id, item`,
	)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var (
		current mining.Transaction
		curID   int64 = -1
	)
	flush := func() error {
		if current == nil {
			return nil
		}
		return fn(current)
	}

	for rows.Next() {
		var txID int64
		var item int
		if err := rows.Scan(&txID, &item); err != nil {
			return fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if txID != curID {
			if err := flush(); err != nil {
				return err
			}
			current = mapset.NewThreadUnsafeSet[int]()
			curID = txID
		}
		current.Add(item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating transactions: %w", err)
	}
	return flush()
}
