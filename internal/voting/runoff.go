package voting

import (
	"math"
	"slices"
)

// InstantRunoff is single-winner ranked choice ("hare"). Each voter ranks
// candidates by distance; tabulation repeatedly eliminates the weakest
// surviving candidate until one remains.
type InstantRunoff struct {
	interner *Interner
}

// NewInstantRunoff returns a runoff rule interning through in. A nil
// interner gets a private one.
func NewInstantRunoff(in *Interner) *InstantRunoff {
	if in == nil {
		in = NewInterner()
	}
	return &InstantRunoff{interner: in}
}

func (r *InstantRunoff) Name() string { return "hare" }

func (r *InstantRunoff) Interner() *Interner { return r.interner }

// Vote ranks candidates by ascending distance. Each sorted distance maps to
// the first candidate at that distance, so exact ties repeat that index and
// drop the other tied candidates from the ranking.
func (r *InstantRunoff) Vote(candidates []float64, position float64) (Vote, error) {
	if len(candidates) == 0 {
		return Vote{}, ErrEmptyCandidates
	}
	d := distances(candidates, position)
	sorted := sortedCopy(d)

	order := make([]int, len(d))
	for i, v := range sorted {
		order[i] = slices.Index(d, v)
	}

	ranking, err := r.interner.Intern(order)
	if err != nil {
		return Vote{}, err
	}
	return Vote{Ranking: ranking}, nil
}

func (r *InstantRunoff) NewAggregate(n int) Aggregate {
	return NewRunoffTally(n)
}

// RunoffTally accumulates weight per distinct ranking, in first-seen order.
type RunoffTally struct {
	n       int
	index   map[*Ranking]int
	ballots []*Ranking
	weights []float64
}

func NewRunoffTally(n int) *RunoffTally {
	return &RunoffTally{
		n:     n,
		index: make(map[*Ranking]int),
	}
}

func (t *RunoffTally) Add(v Vote, weight float64) {
	i, ok := t.index[v.Ranking]
	if !ok {
		i = len(t.ballots)
		t.index[v.Ranking] = i
		t.ballots = append(t.ballots, v.Ranking)
		t.weights = append(t.weights, 0)
	}
	t.weights[i] += weight
}

// Buckets reports the number of distinct rankings seen.
func (t *RunoffTally) Buckets() int { return len(t.ballots) }

// Weight returns the weight accumulated for r.
func (t *RunoffTally) Weight(r *Ranking) float64 {
	if i, ok := t.index[r]; ok {
		return t.weights[i]
	}
	return 0
}

func (t *RunoffTally) Winner() int {
	return t.tabulate(false).Winner
}

// RunoffResult describes a full tabulation. Rounds[i] holds the tallies
// before Eliminated[i] was removed.
type RunoffResult struct {
	Winner     int
	Eliminated []int
	Rounds     [][]float64
}

func (t *RunoffTally) Tabulate() RunoffResult {
	return t.tabulate(true)
}

// tabulate credits each ranking to its first surviving candidate, removes
// the strictly lowest survivor (lowest index on ties) and stops once n-1 are
// removed. The winner is the first maximum of the final round's tallies,
// taken before that round's elimination.
func (t *RunoffTally) tabulate(record bool) RunoffResult {
	var res RunoffResult
	if t.n <= 1 {
		return res
	}

	removed := make([]bool, t.n)
	counts := make([]float64, t.n)
	for {
		clear(counts)
		for b, r := range t.ballots {
			for _, c := range r.order {
				if !removed[c] {
					counts[c] += t.weights[b]
					break
				}
			}
		}
		if record {
			res.Rounds = append(res.Rounds, slices.Clone(counts))
		}

		worst := -1
		lo := math.Inf(1)
		for i, v := range counts {
			if !removed[i] && v < lo {
				lo, worst = v, i
			}
		}
		if worst < 0 {
			// every survivor is NaN or +Inf
			worst = slices.Index(removed, false)
		}
		removed[worst] = true
		res.Eliminated = append(res.Eliminated, worst)

		if len(res.Eliminated) == t.n-1 {
			res.Winner = argmax(counts)
			return res
		}
	}
}
