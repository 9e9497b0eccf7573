package mining

import "fmt"

// Generate produces the next level's candidate itemsets from the previous
// level's frequent itemsets: a join over every unordered pair sharing all
// but their last item, followed by a downward-closure prune. Fewer than two
// input itemsets cannot form a pair and yield no candidates.
//
// Every input itemset must be strictly increasing; an unsorted itemset
// returns ErrUnsortedItemset wrapped with the offending value.
func Generate(prev []Itemset) ([]Itemset, error) {
	for _, s := range prev {
		if !s.ordered() {
			return nil, fmt.Errorf("%w: got %v", ErrUnsortedItemset, s)
		}
	}
	if len(prev) < 2 {
		return nil, nil
	}

	var joined []Itemset
	for i := 0; i < len(prev); i++ {
		for j := i + 1; j < len(prev); j++ {
			if c := join(prev[i], prev[j]); c != nil {
				joined = append(joined, c)
			}
		}
	}

	// Downward closure: a candidate survives only if every one of its
	// (k-1)-subsets is itself frequent. All subsets are checked, not just
	// the one obtained by dropping the last item.
	known := make(map[string]struct{}, len(prev))
	for _, s := range prev {
		known[s.Key()] = struct{}{}
	}

	var kept []Itemset
	for _, c := range joined {
		if allSubsetsKnown(c, known) {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// join merges two k-itemsets that share their first k-1 items and differ in
// the last into a (k+1)-itemset, appending the larger of the two last items
// so the result stays strictly increasing. Returns nil when the pair does
// not join.
func join(a, b Itemset) Itemset {
	k := len(a)
	if len(b) != k || k == 0 {
		return nil
	}
	for i := 0; i < k-1; i++ {
		if a[i] != b[i] {
			return nil
		}
	}
	lo, hi := a[k-1], b[k-1]
	if lo == hi {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	out := make(Itemset, 0, k+1)
	out = append(out, a[:k-1]...)
	out = append(out, lo, hi)
	return out
}

// allSubsetsKnown checks every subset of c obtained by deleting exactly one
// item against the previous frequent level.
func allSubsetsKnown(c Itemset, known map[string]struct{}) bool {
	sub := make(Itemset, len(c)-1)
	for drop := range c {
		copy(sub, c[:drop])
		copy(sub[drop:], c[drop+1:])
		if _, ok := known[sub.Key()]; !ok {
			return false
		}
	}
	return true
}
