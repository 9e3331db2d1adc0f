package voting

// Plurality credits every closest candidate with the voter's full weight.
// A tie therefore counts the weight once per tied candidate.
type Plurality struct{}

func NewPlurality() *Plurality {
	return &Plurality{}
}

func (p *Plurality) Name() string { return "plurality" }

func (p *Plurality) Vote(candidates []float64, position float64) (Vote, error) {
	if len(candidates) == 0 {
		return Vote{}, ErrEmptyCandidates
	}
	d := distances(candidates, position)
	lo := d[0]
	for _, v := range d[1:] {
		if v < lo {
			lo = v
		}
	}

	scores := make([]float64, len(d))
	for i, v := range d {
		if v == lo {
			scores[i] = 1
		}
	}
	return Vote{Scores: scores}, nil
}

func (p *Plurality) NewAggregate(n int) Aggregate {
	return NewScoreTally(n)
}
