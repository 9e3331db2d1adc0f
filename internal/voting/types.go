package voting

import (
	"math"
	"slices"
)

// Vote is one voter's ballot. Score-based rules fill Scores, indexed by
// candidate; the runoff rule fills Ranking instead.
type Vote struct {
	Scores  []float64
	Ranking *Ranking
}

// Rule is a voting system. Vote must be a pure function of the position for
// a fixed candidate layout.
type Rule interface {
	Name() string
	Vote(candidates []float64, position float64) (Vote, error)
	NewAggregate(n int) Aggregate
}

// Aggregate accumulates weighted votes for a single electorate.
// It is owned by one caller and not safe for concurrent use.
type Aggregate interface {
	Add(v Vote, weight float64)
	Winner() int
}

func distances(candidates []float64, position float64) []float64 {
	d := make([]float64, len(candidates))
	for i, c := range candidates {
		d[i] = math.Abs(c - position)
	}
	return d
}

func sortedCopy(d []float64) []float64 {
	s := slices.Clone(d)
	slices.Sort(s)
	return s
}

// argmax returns the first index holding the maximum value.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// ScoreTally sums weighted per-candidate scores.
type ScoreTally []float64

func NewScoreTally(n int) ScoreTally {
	return make(ScoreTally, n)
}

func (t ScoreTally) Add(v Vote, weight float64) {
	for i := range t {
		t[i] += v.Scores[i] * weight
	}
}

func (t ScoreTally) Winner() int {
	return argmax(t)
}
