package grid

import (
	"fmt"

	"github.com/san-kum/votesim/internal/density"
	"github.com/san-kum/votesim/internal/voting"
)

// Field is the precomputed state shared by every pixel of one run: the vote
// at each fine-grid position and the two bloc density caches. It is read-only
// after construction and safe for concurrent use.
type Field struct {
	size       int
	candidates []float64
	rule       voting.Rule
	votes      []voting.Vote
	bloc0      density.Cache
	bloc1      density.Cache
}

func NewField(rule voting.Rule, candidates []float64, cfg Config) (*Field, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, voting.ErrEmptyCandidates
	}

	n := 3*cfg.Size + 1
	f := &Field{
		size:       cfg.Size,
		candidates: append([]float64(nil), candidates...),
		rule:       rule,
		votes:      make([]voting.Vote, n),
	}

	for p := range f.votes {
		v, err := rule.Vote(f.candidates, f.Position(p))
		if err != nil {
			return nil, fmt.Errorf("vote at sample %d: %w", p, err)
		}
		f.votes[p] = v
	}

	scale := float64(cfg.Size)
	f.bloc0 = density.NewCache(n, scale, cfg.Variance0, 1)
	f.bloc1 = density.NewCache(n, scale, cfg.Variance1, cfg.Weight1)

	return f, nil
}

func validateConfig(cfg Config) error {
	if cfg.Size < 2 {
		return fmt.Errorf("%w, got %d", ErrGridTooSmall, cfg.Size)
	}
	if !(cfg.Variance0 > 0) || !(cfg.Variance1 > 0) {
		return fmt.Errorf("%w, got %g and %g", ErrInvalidSpread, cfg.Variance0, cfg.Variance1)
	}
	if !(cfg.Weight1 >= 0) {
		return fmt.Errorf("%w, got %g", ErrNegativeWeight, cfg.Weight1)
	}
	return nil
}

func (f *Field) Size() int { return f.size }

// Len is the number of fine-grid samples.
func (f *Field) Len() int { return len(f.votes) }

func (f *Field) Rule() voting.Rule { return f.rule }

func (f *Field) Candidates() []float64 { return f.candidates }

// Position maps fine-grid index p to a policy position. Sample p covers
// [-1, 2] in steps of 1/(size-1).
func (f *Field) Position(p int) float64 {
	return float64(p)/float64(f.size-1) - 1
}

// Center is the policy position at which a bloc indexed by pixel i peaks.
func (f *Field) Center(i int) float64 {
	return f.Position(i + f.size)
}

// Weight is the electorate weight of sample p at pixel (x, y).
func (f *Field) Weight(p, x, y int) float64 {
	return f.bloc0.At(p-y) + f.bloc1.At(p-x)
}

// Tally folds every sample of pixel (x, y) into a fresh aggregate.
func (f *Field) Tally(x, y int) voting.Aggregate {
	agg := f.rule.NewAggregate(len(f.candidates))
	for p, v := range f.votes {
		agg.Add(v, f.Weight(p, x, y))
	}
	return agg
}

func (f *Field) Winner(x, y int) int {
	return f.Tally(x, y).Winner()
}

// Samples lists the electorate of pixel (x, y).
func (f *Field) Samples(x, y int) []Sample {
	s := make([]Sample, len(f.votes))
	for p := range s {
		s[p] = Sample{Position: f.Position(p), Weight: f.Weight(p, x, y)}
	}
	return s
}
