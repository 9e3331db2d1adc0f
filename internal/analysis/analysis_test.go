package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/votesim/internal/grid"
	"github.com/san-kum/votesim/internal/voting"
)

var layout = []float64{0.0, 0.3, 0.5, 1.0}

func TestWinCounts(t *testing.T) {
	g := grid.NewWinnerGrid(2, 3)
	copy(g.Cells, []int{0, 1, 1, 2, 2, 2})

	counts := WinCounts(g, 4)
	want := []int{1, 2, 3, 0}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("candidate %d: got %d, want %d", i, counts[i], want[i])
		}
	}

	shares := WinShares(g, 4)
	if math.Abs(shares[2]-0.5) > 1e-12 {
		t.Errorf("expected share 0.5, got %v", shares[2])
	}
}

func TestWinShares_Empty(t *testing.T) {
	shares := WinShares(grid.NewWinnerGrid(0, 0), 2)
	if len(shares) != 2 || shares[0] != 0 || shares[1] != 0 {
		t.Errorf("expected zero shares, got %v", shares)
	}
}

func TestProfile(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Size = 40
	f, err := grid.NewField(voting.NewPlurality(), layout, cfg)
	if err != nil {
		t.Fatalf("field failed: %v", err)
	}

	p := NewProfile(f, 20, 20)
	if len(p.Weights) != f.Len() {
		t.Fatalf("expected %d samples, got %d", f.Len(), len(p.Weights))
	}
	if math.Abs(p.Mean-f.Center(20)) > 0.01 {
		t.Errorf("symmetric blocs should centre on %v, got %v", f.Center(20), p.Mean)
	}

	sum := 0.0
	for _, w := range p.FirstChoices {
		sum += w
	}
	if math.Abs(sum-p.Total) > 1e-9 {
		t.Errorf("first choices sum %v, total %v", sum, p.Total)
	}
	if closest(layout, p.Mean) != 2 {
		t.Errorf("expected candidate 2 closest to the mean %v", p.Mean)
	}
}

func TestClosestPrefersLowestIndexOnTie(t *testing.T) {
	if got := closest([]float64{0, 1}, 0.5); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestWeightSweep(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Size = 10

	points, err := WeightSweep(context.Background(), voting.NewPlurality(), layout, cfg, 0, 2, 3)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	wantWeights := []float64{0, 1, 2}
	for i, pt := range points {
		if pt.Weight != wantWeights[i] {
			t.Errorf("point %d: weight %v, want %v", i, pt.Weight, wantWeights[i])
		}
		total := 0.0
		for _, s := range pt.Shares {
			total += s
		}
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("point %d: shares sum to %v", i, total)
		}
	}
}

func TestWeightSweep_PropagatesErrors(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Size = 1

	if _, err := WeightSweep(context.Background(), voting.NewPlurality(), layout, cfg, 0, 1, 2); err == nil {
		t.Error("expected error for an invalid grid")
	}
}
