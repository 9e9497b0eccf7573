package mining

import "errors"

// ErrInvalidThreshold is returned when a support or confidence threshold
// falls outside (0, 1]. Thresholds are validated before any scan begins.
var ErrInvalidThreshold = errors.New("mining: threshold must be in (0, 1]")

// ErrUnsortedItemset is returned when an itemset whose items are not
// strictly increasing reaches the candidate generator. The join step depends
// on that ordering, so a violation is a caller bug and fails loudly.
var ErrUnsortedItemset = errors.New("mining: itemset must be strictly increasing")

// ErrNilSource is returned when a Miner is constructed without a
// transaction source.
var ErrNilSource = errors.New("mining: source cannot be nil")
