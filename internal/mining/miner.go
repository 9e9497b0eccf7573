package mining

import (
	"fmt"

	"go.uber.org/zap"
)

// Config controls a mining run.
type Config struct {
	// MinSupport is the support-ratio threshold in (0, 1]. The comparison
	// is strict: an itemset occurring in exactly this fraction of
	// transactions is not frequent.
	MinSupport float64

	// MinConfidence is the confidence threshold in (0, 1] used by rule
	// derivation, strict like MinSupport. Leave zero when only mining
	// itemsets; rule derivation then returns ErrInvalidThreshold.
	MinConfidence float64

	// Progress, when non-nil, receives the running transaction count
	// during every full dataset scan. Observability only; the count
	// restarts at 1 on each scan.
	Progress func(done int)

	// Logger receives per-level diagnostics at debug level.
	// Defaults to zap.NewNop().
	Logger *zap.Logger
}

// Miner runs the level-wise Apriori search over a transaction source.
type Miner struct {
	src Source
	cfg Config
	log *zap.Logger
}

// Result collects the output of one mining run.
type Result struct {
	// Itemsets concatenates every non-empty frequent level in increasing
	// size; within a level the order is generation order, not sorted.
	Itemsets []Itemset

	// Support maps each frequent itemset's Key to its transaction count.
	// By downward closure this covers every subset of every frequent
	// itemset, which is what lets rule derivation reuse these counts
	// instead of rescanning.
	Support map[string]int

	// N is the total transaction count, fixed by the initial scan and
	// never recomputed.
	N int
}

// SupportOf returns the cached support count of a frequent itemset, or zero
// when the itemset is not frequent.
func (r *Result) SupportOf(s Itemset) int {
	return r.Support[s.Key()]
}

// Ratio returns the support ratio of a frequent itemset.
func (r *Result) Ratio(s Itemset) float64 {
	if r.N == 0 {
		return 0
	}
	return float64(r.Support[s.Key()]) / float64(r.N)
}

// NewMiner validates cfg and returns a Miner over src. Threshold validation
// happens here, before any scan: MinSupport must lie in (0, 1], and
// MinConfidence must too unless left at zero.
func NewMiner(src Source, cfg Config) (*Miner, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !validThreshold(cfg.MinSupport) {
		return nil, fmt.Errorf("%w: minsup %v", ErrInvalidThreshold, cfg.MinSupport)
	}
	if cfg.MinConfidence != 0 && !validThreshold(cfg.MinConfidence) {
		return nil, fmt.Errorf("%w: minconf %v", ErrInvalidThreshold, cfg.MinConfidence)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Miner{src: src, cfg: cfg, log: log}, nil
}

// Mine performs the level-wise search: an initial singleton pass that also
// fixes the transaction count n, then repeated generate/count/filter rounds
// until a level produces no frequent itemsets. An empty first level ends
// the run immediately with an empty result.
func (m *Miner) Mine() (*Result, error) {
	frequent, itemCounts, n, err := m.initPass()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Support: make(map[string]int, len(frequent)),
		N:       n,
	}
	for _, s := range frequent {
		res.Support[s.Key()] = itemCounts[s[0]]
	}
	res.Itemsets = append(res.Itemsets, frequent...)

	m.log.Debug("initial pass complete",
		zap.Int("transactions", n),
		zap.Int("frequent_items", len(frequent)))

	for level := 2; len(frequent) > 0; level++ {
		candidates, err := Generate(frequent)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}

		counts, err := CountSupport(candidates, m.src, m.cfg.Progress)
		if err != nil {
			return nil, err
		}

		var next []Itemset
		for _, c := range candidates {
			key := c.Key()
			if _, dup := res.Support[key]; dup {
				continue
			}
			count := counts[key]
			if float64(count)/float64(n) > m.cfg.MinSupport {
				next = append(next, c)
				res.Support[key] = count
			}
		}

		m.log.Debug("level complete",
			zap.Int("level", level),
			zap.Int("candidates", len(candidates)),
			zap.Int("frequent", len(next)))

		res.Itemsets = append(res.Itemsets, next...)
		frequent = next
	}

	return res, nil
}

// initPass scans the dataset once, tallying singleton frequencies and the
// transaction count. Items are reported in first-seen order so repeated
// runs over the same source produce identical results.
func (m *Miner) initPass() ([]Itemset, map[int]int, int, error) {
	counts := make(map[int]int)
	var order []int
	n := 0

	err := m.src.Scan(func(tx Transaction) error {
		tx.Each(func(item int) bool {
			if _, seen := counts[item]; !seen {
				order = append(order, item)
			}
			counts[item]++
			return false
		})
		n++
		if m.cfg.Progress != nil {
			m.cfg.Progress(n)
		}
		return nil
	})
	if err != nil {
		return nil, nil, 0, fmt.Errorf("initial scan: %w", err)
	}
	if n == 0 {
		return nil, counts, 0, nil
	}

	var frequent []Itemset
	for _, item := range order {
		if float64(counts[item])/float64(n) > m.cfg.MinSupport {
			frequent = append(frequent, Itemset{item})
		}
	}
	return frequent, counts, n, nil
}

func validThreshold(t float64) bool {
	return t > 0 && t <= 1
}
