package mining

import "fmt"

// CountSupport scans the full dataset once and counts, for every candidate,
// the number of transactions containing it as a subset. The result maps
// Itemset.Key to the count; candidates never observed stay absent, and
// callers treat absence as zero.
//
// This is the dominant cost of a mining run: O(transactions × candidates)
// with no indexing beyond what candidate pruning already removed. progress,
// when non-nil, receives the running record count after each transaction.
func CountSupport(candidates []Itemset, src Source, progress func(done int)) (map[string]int, error) {
	counts := make(map[string]int, len(candidates))
	done := 0
	err := src.Scan(func(tx Transaction) error {
		for _, c := range candidates {
			if c.ContainedIn(tx) {
				counts[c.Key()]++
			}
		}
		done++
		if progress != nil {
			progress(done)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("support counting scan: %w", err)
	}
	return counts, nil
}
