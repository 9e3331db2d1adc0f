package voting

import (
	"errors"
	"fmt"
)

var (
	// ErrInternConflict indicates two different rankings hashed to the same key.
	ErrInternConflict = errors.New("voting: interned ranking content mismatch")

	// ErrEmptyCandidates indicates a vote was requested with no candidates.
	ErrEmptyCandidates = errors.New("voting: empty candidate set")

	// ErrUnknownSystem indicates a voting system name with no registered rule.
	ErrUnknownSystem = errors.New("voting: unknown system")

	// ErrRankingTooLong indicates a ranking longer than MaxRankingLen.
	ErrRankingTooLong = errors.New("voting: ranking too long to intern")
)

// InternError carries the two rankings that collided in the interner.
type InternError struct {
	Hash     uint64
	Existing []int
	Incoming []int
}

func (e *InternError) Error() string {
	return fmt.Sprintf("%v: hash %d holds %v, got %v", ErrInternConflict, e.Hash, e.Existing, e.Incoming)
}

func (e *InternError) Unwrap() error {
	return ErrInternConflict
}
