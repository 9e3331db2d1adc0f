package grid

import (
	"context"
	"time"

	"github.com/san-kum/votesim/internal/logging"
	"github.com/san-kum/votesim/internal/voting"
)

type Simulator struct {
	rule       voting.Rule
	candidates []float64
}

func New(rule voting.Rule, candidates []float64) *Simulator {
	return &Simulator{rule: rule, candidates: candidates}
}

// Run evaluates the winner of every pixel of a cfg.Size square grid.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*WinnerGrid, error) {
	start := time.Now()

	field, err := NewField(s.rule, s.candidates, cfg)
	if err != nil {
		return nil, err
	}

	g := NewWinnerGrid(cfg.Size, cfg.Size)
	err = forEachRow(ctx, cfg.Size, cfg.Workers, func(y int) {
		for x := 0; x < cfg.Size; x++ {
			g.Set(x, y, field.Winner(x, y))
		}
	})
	if err != nil {
		return nil, err
	}

	logging.For("grid").Debug("grid evaluated",
		"system", s.rule.Name(),
		"size", cfg.Size,
		"samples", field.Len(),
		"workers", cfg.Workers,
		"elapsed", time.Since(start),
	)
	return g, nil
}
