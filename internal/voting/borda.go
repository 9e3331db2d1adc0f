package voting

import "slices"

// Borda gives each candidate n minus the position of its distance in the
// sorted distances. Equal distances share the rank of their first
// occurrence and the ranks after them are not shifted.
type Borda struct{}

func NewBorda() *Borda {
	return &Borda{}
}

func (b *Borda) Name() string { return "borda" }

func (b *Borda) Vote(candidates []float64, position float64) (Vote, error) {
	if len(candidates) == 0 {
		return Vote{}, ErrEmptyCandidates
	}
	d := distances(candidates, position)
	sorted := sortedCopy(d)

	n := len(d)
	scores := make([]float64, n)
	for i, v := range d {
		scores[i] = float64(n - slices.Index(sorted, v))
	}
	return Vote{Scores: scores}, nil
}

func (b *Borda) NewAggregate(n int) Aggregate {
	return NewScoreTally(n)
}
