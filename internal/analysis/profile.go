package analysis

import (
	"math"

	"github.com/san-kum/votesim/internal/grid"
)

// Profile describes the electorate of one pixel.
type Profile struct {
	X, Y      int
	Positions []float64
	Weights   []float64
	Total     float64
	Mean      float64
	// FirstChoices[i] is the weight whose closest candidate is i, counting
	// the lowest index on exact ties.
	FirstChoices []float64
}

func NewProfile(f *grid.Field, x, y int) *Profile {
	samples := f.Samples(x, y)
	candidates := f.Candidates()

	p := &Profile{
		X:            x,
		Y:            y,
		Positions:    make([]float64, len(samples)),
		Weights:      make([]float64, len(samples)),
		FirstChoices: make([]float64, len(candidates)),
	}

	weighted := 0.0
	for i, s := range samples {
		p.Positions[i] = s.Position
		p.Weights[i] = s.Weight
		p.Total += s.Weight
		weighted += s.Position * s.Weight
		p.FirstChoices[closest(candidates, s.Position)] += s.Weight
	}
	if p.Total > 0 {
		p.Mean = weighted / p.Total
	}
	return p
}

func closest(candidates []float64, position float64) int {
	best := 0
	for i, c := range candidates {
		if math.Abs(c-position) < math.Abs(candidates[best]-position) {
			best = i
		}
	}
	return best
}
