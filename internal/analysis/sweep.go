package analysis

import (
	"context"

	"github.com/san-kum/votesim/internal/grid"
	"github.com/san-kum/votesim/internal/voting"
)

// SweepPoint holds the win shares for one bloc 1 weight.
type SweepPoint struct {
	Weight float64
	Shares []float64
}

// WeightSweep runs the full grid for steps weights evenly spaced in
// [lo, hi] and records each candidate's share of the grid.
func WeightSweep(
	ctx context.Context,
	rule voting.Rule,
	candidates []float64,
	cfg grid.Config,
	lo, hi float64,
	steps int,
) ([]SweepPoint, error) {
	if steps < 2 {
		steps = 2
	}
	step := (hi - lo) / float64(steps-1)
	sim := grid.New(rule, candidates)

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		c := cfg
		c.Weight1 = lo + float64(i)*step

		g, err := sim.Run(ctx, c)
		if err != nil {
			return points, err
		}
		points = append(points, SweepPoint{
			Weight: c.Weight1,
			Shares: WinShares(g, len(candidates)),
		})
	}
	return points, nil
}
