package voting

import (
	"fmt"
	"slices"
	"sync"
)

// Ranking is an interned preference order, most preferred candidate first.
// Two rankings with equal content returned by the same Interner are the same
// pointer, so *Ranking works directly as a map key.
type Ranking struct {
	order []int
}

// Order returns a copy of the candidate indices, best to worst.
func (r *Ranking) Order() []int { return slices.Clone(r.order) }

func (r *Ranking) Len() int { return len(r.order) }

// MaxRankingLen is the longest ranking the positional hash holds without
// overflow: every hash of length n is below n^n, and 16^16 = 2^64.
const MaxRankingLen = 16

// Interner deduplicates rankings by a positional hash of their elements.
// A hash hit with different content is reported as an *InternError and never
// merged. Rankings of different lengths share the hash space, so callers
// changing the candidate count should Reset first. Safe for concurrent use.
type Interner struct {
	mu      sync.Mutex
	entries map[uint64]*Ranking
}

func NewInterner() *Interner {
	return &Interner{
		entries: make(map[uint64]*Ranking),
	}
}

// positionalHash reads the ranking as a number written in base len(order).
// It is collision free for permutations of 0..n-1 of a single length n.
func positionalHash(order []int) uint64 {
	var h uint64
	base := uint64(len(order))
	for _, v := range order {
		h = h*base + uint64(v)
	}
	return h
}

func (in *Interner) Intern(order []int) (*Ranking, error) {
	if len(order) > MaxRankingLen {
		return nil, fmt.Errorf("%w: %d candidates, max %d", ErrRankingTooLong, len(order), MaxRankingLen)
	}
	h := positionalHash(order)

	in.mu.Lock()
	defer in.mu.Unlock()

	if existing, ok := in.entries[h]; ok {
		if !slices.Equal(existing.order, order) {
			return nil, &InternError{Hash: h, Existing: existing.Order(), Incoming: slices.Clone(order)}
		}
		return existing, nil
	}

	r := &Ranking{order: slices.Clone(order)}
	in.entries[h] = r
	return r, nil
}

// Len reports how many distinct rankings are held.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.entries)
}

// Reset drops every interned ranking. Rankings handed out earlier stay valid
// but are no longer identical to rankings interned afterwards.
func (in *Interner) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.entries = make(map[uint64]*Ranking)
}
