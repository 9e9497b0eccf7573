package mining

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Transaction is the set of items observed together in one dataset record.
// Transactions are read-only for the duration of a mining run.
type Transaction = mapset.Set[int]

// Source yields the transaction dataset. Scan starts from the first
// transaction on every call; the miner performs one full pass per level, so
// implementations must be restartable (re-open a file, re-run a query, or
// iterate a cached slice). Scan stops and returns the first error fn
// returns.
type Source interface {
	Scan(fn func(tx Transaction) error) error
}

// Itemset is an ordered sequence of distinct items, strictly increasing.
// Two itemsets are equal iff their sequences are equal; Key returns the
// canonical form used wherever an itemset keys a map.
type Itemset []int

// NewItemset returns the itemset holding the given items in canonical
// order. Duplicates are collapsed.
func NewItemset(items ...int) Itemset {
	if len(items) == 0 {
		return nil
	}
	sorted := make([]int, len(items))
	copy(sorted, items)
	sort.Ints(sorted)

	out := make(Itemset, 0, len(sorted))
	for i, item := range sorted {
		if i > 0 && item == sorted[i-1] {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Key returns the canonical string identity of the itemset, e.g. "1,2,3".
// Support counters and membership tables key on this value, never on a set
// representation.
func (s Itemset) Key() string {
	var b strings.Builder
	for i, item := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(item))
	}
	return b.String()
}

// String formats the itemset for display, e.g. "{1, 2, 3}".
func (s Itemset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, item := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(item))
	}
	b.WriteByte('}')
	return b.String()
}

// ContainedIn reports whether every item of the itemset occurs in tx.
// Containment is pure set membership, independent of transaction order.
func (s Itemset) ContainedIn(tx Transaction) bool {
	for _, item := range s {
		if !tx.Contains(item) {
			return false
		}
	}
	return true
}

// Set returns the itemset as a thread-unsafe item set, used for the
// symmetric-difference construction during rule derivation.
func (s Itemset) Set() Transaction {
	return mapset.NewThreadUnsafeSet([]int(s)...)
}

// ordered reports whether the items are strictly increasing.
func (s Itemset) ordered() bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}

// fromSet converts an item set back into a canonical Itemset.
func fromSet(set Transaction) Itemset {
	out := make(Itemset, 0, set.Cardinality())
	set.Each(func(item int) bool {
		out = append(out, item)
		return false
	})
	sort.Ints(out)
	return out
}
