// Package controller owns the current simulation parameters and redraws the
// winner map into a pixel sink whenever they change.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/votesim/internal/analysis"
	"github.com/san-kum/votesim/internal/config"
	"github.com/san-kum/votesim/internal/grid"
	"github.com/san-kum/votesim/internal/logging"
	"github.com/san-kum/votesim/internal/metrics"
	"github.com/san-kum/votesim/internal/render"
	"github.com/san-kum/votesim/internal/voting"
)

type Option func(*Controller)

// WithRender replaces the default grid size, scale, worker count and palette.
func WithRender(rc config.RenderConfig) Option {
	return func(c *Controller) { c.render = rc }
}

func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithInterner shares an existing ranking interner instead of a private one.
// The controller resets it whenever the candidate count changes.
func WithInterner(in *voting.Interner) Option {
	return func(c *Controller) { c.interner = in }
}

// Controller serialises updates: one Update runs simulate, render and present
// to completion before the next is accepted.
type Controller struct {
	mu sync.Mutex

	params   config.Parameters
	render   config.RenderConfig
	interner *voting.Interner
	registry *voting.Registry
	renderer *render.Renderer
	sink     render.PixelSink
	recorder *metrics.Recorder
	last     *grid.WinnerGrid

	// internedN is the ranking length the interner holds; 0 before any vote.
	internedN int
}

func New(sink render.PixelSink, opts ...Option) (*Controller, error) {
	c := &Controller{
		params: config.DefaultParameters(),
		render: config.DefaultRender(),
		sink:   sink,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.interner == nil {
		c.interner = voting.NewInterner()
	}
	c.registry = voting.NewRegistry(c.interner)

	palette, err := render.GetPalette(c.render.Palette)
	if err != nil {
		return nil, err
	}
	c.renderer = render.NewRenderer(palette)
	return c, nil
}

// Update merges u over the current parameters and redraws. The parameters
// are committed only if the redraw succeeds.
func (c *Controller) Update(ctx context.Context, u config.Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.params.Merge(u)
	if err := next.Validate(); err != nil {
		return err
	}
	if n, limit := len(next.Candidates), c.renderer.Palette().Len(); n > limit {
		return fmt.Errorf("%w: %d candidates, palette %q has %d colours",
			render.ErrPaletteExhausted, n, c.renderer.Palette().Name, limit)
	}

	c.prepareInterner(len(next.Candidates))

	start := time.Now()
	g, err := c.redraw(ctx, next)
	elapsed := time.Since(start)

	if c.recorder != nil {
		c.recorder.ObserveRedraw(next.System, elapsed, err)
		c.recorder.SetInternSize(c.interner.Len())
	}

	log := logging.For("controller")
	if err != nil {
		var conflict *voting.InternError
		if errors.As(err, &conflict) {
			log.Error("ranking intern conflict",
				"hash", conflict.Hash,
				"existing", conflict.Existing,
				"incoming", conflict.Incoming,
			)
		}
		return fmt.Errorf("redraw %s: %w", next.System, err)
	}

	c.params = next
	c.last = g
	if c.recorder != nil {
		c.recorder.SetWins(analysis.WinCounts(g, len(next.Candidates)))
	}

	log.Debug("redraw",
		"system", next.System,
		"size", c.render.Size,
		"elapsed", elapsed,
		"rankings", c.interner.Len(),
	)
	return nil
}

func (c *Controller) redraw(ctx context.Context, p config.Parameters) (*grid.WinnerGrid, error) {
	rule, err := c.registry.Get(p.System)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(rule, p.Candidates).Run(ctx, c.gridConfig(p))
	if err != nil {
		return nil, err
	}
	if err := c.renderer.Render(g, c.sink); err != nil {
		return nil, err
	}
	return g, nil
}

// prepareInterner resets the interner when the next vote uses a different
// ranking length than the one it holds. Callers hold c.mu.
func (c *Controller) prepareInterner(n int) {
	if c.internedN != n {
		c.interner.Reset()
		c.internedN = n
	}
}

func (c *Controller) gridConfig(p config.Parameters) grid.Config {
	return grid.Config{
		Size:      c.render.Size,
		Variance0: p.Variance0,
		Variance1: p.Variance1,
		Weight1:   p.Weight1,
		Workers:   c.render.Workers,
	}
}

// Parameters returns a copy of the committed parameters.
func (c *Controller) Parameters() config.Parameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params.Merge(config.Update{})
}

func (c *Controller) RenderConfig() config.RenderConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render
}

// Grid returns the winner grid of the last successful redraw, or nil.
func (c *Controller) Grid() *grid.WinnerGrid {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *Controller) Palette() render.Palette {
	return c.renderer.Palette()
}

func (c *Controller) Interner() *voting.Interner { return c.interner }

// Field builds the precomputed field for the committed parameters, for
// inspecting single pixels. It waits for any running redraw.
func (c *Controller) Field() (*grid.Field, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rule, err := c.registry.Get(c.params.System)
	if err != nil {
		return nil, err
	}
	c.prepareInterner(len(c.params.Candidates))
	return grid.NewField(rule, c.params.Candidates, c.gridConfig(c.params))
}
