package mining

import (
	"fmt"

	"go.uber.org/zap"
)

// Rule is a confident association between two disjoint itemsets: when a
// transaction contains the antecedent, it tends to contain the consequent.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset

	// Confidence is support(antecedent ∪ consequent) / support(antecedent).
	Confidence float64

	// Support is the support ratio of the full itemset the rule was
	// derived from.
	Support float64
}

// String formats the rule for display, e.g. "{1, 2} => {3}".
func (r Rule) String() string {
	return fmt.Sprintf("%s => %s", r.Antecedent, r.Consequent)
}

// DeriveRules grows consequent itemsets of base level-wise and emits every
// rule whose confidence strictly exceeds minconf, counting supports with
// one combined dataset scan per pass. consequents seeds the search and must
// hold itemsets strictly smaller than base; the loop ends when they no
// longer are, or when candidate generation dries up.
//
// Each pass counts base alongside, for every grown consequent h, the
// antecedent given by the symmetric difference base Δ h (which is base \ h,
// since h grows from items of base). Confidence for h is then
// count(base) / count(antecedent); a zero denominator means the confidence
// is undefined and the candidate is discarded, never a fault. Candidates
// failing the confidence bar are also dropped from the next pass's seed,
// since no superset of a low-confidence consequent can do better.
func (m *Miner) DeriveRules(base Itemset, consequents []Itemset, n int, minconf float64) ([]Rule, error) {
	if !base.ordered() {
		return nil, fmt.Errorf("%w: got %v", ErrUnsortedItemset, base)
	}
	if !validThreshold(minconf) {
		return nil, fmt.Errorf("%w: minconf %v", ErrInvalidThreshold, minconf)
	}
	if n <= 0 {
		return nil, fmt.Errorf("mining: transaction count must be positive, got %d", n)
	}

	baseSet := base.Set()
	var rules []Rule

	for len(base) > 0 && len(consequents) > 0 && len(base) > len(consequents[0]) {
		grown, err := Generate(consequents)
		if err != nil {
			return nil, err
		}
		if len(grown) == 0 {
			break
		}

		antecedents := make([]Itemset, len(grown))
		for i, h := range grown {
			antecedents[i] = fromSet(baseSet.SymmetricDifference(h.Set()))
		}

		baseCount := 0
		antCounts := make([]int, len(grown))
		done := 0
		err = m.src.Scan(func(tx Transaction) error {
			if base.ContainedIn(tx) {
				baseCount++
			}
			for i, ant := range antecedents {
				if ant.ContainedIn(tx) {
					antCounts[i]++
				}
			}
			done++
			if m.cfg.Progress != nil {
				m.cfg.Progress(done)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("rule confidence scan: %w", err)
		}

		var surviving []Itemset
		for i, h := range grown {
			// A consequent as large as base leaves an empty antecedent;
			// rules require a proper, non-empty antecedent.
			if len(h) >= len(base) {
				continue
			}
			if antCounts[i] == 0 {
				m.log.Debug("consequent dropped, antecedent unseen",
					zap.Stringer("consequent", h))
				continue
			}
			conf := float64(baseCount) / float64(antCounts[i])
			if conf > minconf {
				rules = append(rules, Rule{
					Antecedent: antecedents[i],
					Consequent: h,
					Confidence: conf,
					Support:    float64(baseCount) / float64(n),
				})
				surviving = append(surviving, h)
			}
		}
		consequents = surviving
	}

	return rules, nil
}

// DeriveAllRules derives every confident rule from a mining result without
// touching the dataset again: each rule's antecedent is a non-empty subset
// of a frequent itemset and is therefore frequent itself, so its support
// count is already cached in the result.
//
// For every frequent itemset of size >= 2, single-item consequents are
// evaluated first; the confident ones seed the level-wise growth that
// mirrors DeriveRules.
func DeriveAllRules(res *Result, minconf float64) ([]Rule, error) {
	if !validThreshold(minconf) {
		return nil, fmt.Errorf("%w: minconf %v", ErrInvalidThreshold, minconf)
	}
	if res == nil || res.N == 0 {
		return nil, nil
	}

	var rules []Rule
	for _, base := range res.Itemsets {
		if len(base) < 2 {
			continue
		}
		baseCount := res.SupportOf(base)
		support := float64(baseCount) / float64(res.N)
		baseSet := base.Set()

		// Single-item consequents come straight off the cached counts.
		var consequents []Itemset
		for _, item := range base {
			h := Itemset{item}
			antecedent := fromSet(baseSet.SymmetricDifference(h.Set()))
			antCount := res.SupportOf(antecedent)
			if antCount == 0 {
				continue
			}
			conf := float64(baseCount) / float64(antCount)
			if conf > minconf {
				rules = append(rules, Rule{
					Antecedent: antecedent,
					Consequent: h,
					Confidence: conf,
					Support:    support,
				})
				consequents = append(consequents, h)
			}
		}

		for len(consequents) > 0 && len(base) > len(consequents[0])+1 {
			grown, err := Generate(consequents)
			if err != nil {
				return nil, err
			}
			if len(grown) == 0 {
				break
			}

			var surviving []Itemset
			for _, h := range grown {
				antecedent := fromSet(baseSet.SymmetricDifference(h.Set()))
				antCount := res.SupportOf(antecedent)
				if antCount == 0 {
					continue
				}
				conf := float64(baseCount) / float64(antCount)
				if conf > minconf {
					rules = append(rules, Rule{
						Antecedent: antecedent,
						Consequent: h,
						Confidence: conf,
						Support:    support,
					})
					surviving = append(surviving, h)
				}
			}
			consequents = surviving
		}
	}

	return rules, nil
}
