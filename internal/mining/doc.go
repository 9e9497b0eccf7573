// Package mining implements level-wise Apriori search for frequent itemsets
// and confidence-filtered association-rule derivation.
//
// The package operates against a restartable Source of transactions and
// performs one full dataset pass per itemset level (plus one per rule pass),
// trading scan count for memory: the dataset is never materialized.
//
// This package includes:
//   - Itemset, the ordered value type used as a counting key
//   - Generate, the join/prune candidate generator
//   - CountSupport, the per-level support counter
//   - Miner, the level-wise mining loop and rule derivation entry points
//
// Everything here is single-threaded; a Miner must not be shared across
// goroutines during a run.
package mining
