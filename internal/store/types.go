package store

import "time"

// DatasetInfo describes the currently imported dataset.
type DatasetInfo struct {
	SourcePath    string
	ImportedAt    time.Time
	Transactions  int
	DistinctItems int
}

// ItemCount pairs an item with its transaction frequency.
type ItemCount struct {
	Item  int
	Count int
}
