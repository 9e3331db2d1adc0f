package voting

// Approval scores each candidate by ((max-d)/(max-min))^2 over the voter's
// distances, so the closest gets 1 and the farthest 0. When every candidate
// is equidistant each gets 1/n.
type Approval struct{}

func NewApproval() *Approval {
	return &Approval{}
}

func (a *Approval) Name() string { return "approval" }

func (a *Approval) Vote(candidates []float64, position float64) (Vote, error) {
	if len(candidates) == 0 {
		return Vote{}, ErrEmptyCandidates
	}
	d := distances(candidates, position)
	lo, hi := d[0], d[0]
	for _, v := range d[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	scores := make([]float64, len(d))
	if lo == hi {
		for i := range scores {
			scores[i] = 1 / float64(len(d))
		}
		return Vote{Scores: scores}, nil
	}

	for i, v := range d {
		s := (hi - v) / (hi - lo)
		scores[i] = s * s
	}
	return Vote{Scores: scores}, nil
}

func (a *Approval) NewAggregate(n int) Aggregate {
	return NewScoreTally(n)
}
