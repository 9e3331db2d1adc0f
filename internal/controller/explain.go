package controller

import (
	"fmt"

	"github.com/san-kum/votesim/internal/analysis"
	"github.com/san-kum/votesim/internal/voting"
)

// Explanation is the electorate and outcome of one pixel.
type Explanation struct {
	Profile *analysis.Profile
	Winner  int
	// Runoff is set only when the system is hare.
	Runoff *voting.RunoffResult
}

func (c *Controller) Explain(x, y int) (*Explanation, error) {
	f, err := c.Field()
	if err != nil {
		return nil, err
	}
	if x < 0 || y < 0 || x >= f.Size() || y >= f.Size() {
		return nil, fmt.Errorf("pixel (%d, %d) outside %dx%d grid", x, y, f.Size(), f.Size())
	}

	e := &Explanation{
		Profile: analysis.NewProfile(f, x, y),
		Winner:  f.Winner(x, y),
	}
	if tally, ok := f.Tally(x, y).(*voting.RunoffTally); ok {
		res := tally.Tabulate()
		e.Runoff = &res
	}
	return e, nil
}
