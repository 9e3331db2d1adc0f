// Package tui is an interactive terminal front end: every key that changes a
// parameter is one controller update, and the winner map is redrawn with
// half-block characters.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/votesim/internal/analysis"
	"github.com/san-kum/votesim/internal/config"
	"github.com/san-kum/votesim/internal/controller"
	"github.com/san-kum/votesim/internal/grid"
	"github.com/san-kum/votesim/internal/render"
	"github.com/san-kum/votesim/internal/voting"
)

// redrawMsg carries the controller state read after a redraw, so the event
// loop never waits on a running one.
type redrawMsg struct {
	err     error
	elapsed time.Duration
	params  config.Parameters
	grid    *grid.WinnerGrid
}

type model struct {
	ctrl   *controller.Controller
	sink   *render.TerminalSink
	cursor int

	// params and grid are the last committed state; target is what the
	// running and pending redraws will produce.
	params config.Parameters
	grid   *grid.WinnerGrid
	target config.Parameters

	busy    bool
	pending *config.Update
	err     error
	elapsed time.Duration

	width, height int
}

func newModel(ctrl *controller.Controller, sink *render.TerminalSink) model {
	p := ctrl.Parameters()
	return model{
		ctrl:   ctrl,
		sink:   sink,
		params: p,
		grid:   ctrl.Grid(),
		target: p,
		busy:   true,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd {
	return m.redraw(config.Update{})
}

func (m model) redraw(u config.Update) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := m.ctrl.Update(context.Background(), u)
		return redrawMsg{
			err:     err,
			elapsed: time.Since(start),
			params:  m.ctrl.Parameters(),
			grid:    m.ctrl.Grid(),
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case redrawMsg:
		m.err, m.elapsed = msg.err, msg.elapsed
		m.params, m.grid = msg.params, msg.grid
		if m.pending != nil {
			u := *m.pending
			m.pending = nil
			return m, m.redraw(u)
		}
		m.busy = false
		m.target = m.params
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}

	p := m.target
	if m.cursor >= len(p.Candidates) {
		m.cursor = 0
	}

	u, next, ok := keyUpdate(p, m.cursor, msg.String())
	m.cursor = next
	if !ok {
		return m, nil
	}

	m.target = p.Merge(u)

	// Only one redraw runs at a time; later keys collapse into one pending
	// update.
	if m.busy {
		pending := config.UpdateFrom(m.target)
		m.pending = &pending
		return m, nil
	}
	m.busy = true
	return m, m.redraw(u)
}

func (m model) View() string {
	p := m.params
	palette := m.ctrl.Palette()

	var b strings.Builder
	b.WriteString("\n   " + cyan.Render("v o t e s i m") + "  " + dim.Render(voting.Describe(p.System)) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n\n")

	for _, line := range strings.Split(m.sink.String(), "\n") {
		b.WriteString("   " + line + "\n")
	}
	b.WriteString("\n")

	var shares []float64
	if g := m.grid; g != nil {
		shares = analysis.WinShares(g, len(p.Candidates))
	}
	for i, c := range p.Candidates {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(i))).Render("██")
		label := fmt.Sprintf("%-2d %6.3f", i, c)
		if i == m.cursor {
			label = white.Render("▸ " + label)
		} else {
			label = dim.Render("  " + label)
		}
		share := 0.0
		if i < len(shares) {
			share = shares[i]
		}
		b.WriteString(fmt.Sprintf("   %s %s  %s %s\n", swatch, label,
			shareBar(share, 20, cyan), dim.Render(fmt.Sprintf("%5.1f%%", share*100))))
	}

	b.WriteString("\n   ")
	for i, name := range voting.Systems {
		s := dim
		if name == p.System {
			s = magenta
		}
		b.WriteString(s.Render(fmt.Sprintf("%d %s", i+1, name)) + "  ")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("   %s %s  %s %s  %s %s\n",
		dim.Render("σ0"), white.Render(fmt.Sprintf("%.2f", p.Variance0)),
		dim.Render("σ1"), white.Render(fmt.Sprintf("%.2f", p.Variance1)),
		dim.Render("w1"), white.Render(fmt.Sprintf("%.2f", p.Weight1))))

	status := green.Render("●") + dim.Render(fmt.Sprintf(" %s", m.elapsed.Round(time.Millisecond)))
	if m.busy {
		status = yellow.Render("○ drawing")
	}
	if m.err != nil {
		status = red.Render("✗ " + m.err.Error())
	}
	b.WriteString("   " + status + "\n")

	b.WriteString("\n" + dim.Render("   1-4 system  ←→ candidate  ±move  v/V σ0  b/B σ1  w/W weight  r reset  q quit") + "\n")
	return b.String()
}

// Run starts the interactive front end with an initial redraw using defaults.
func Run(ctrl *controller.Controller, sink *render.TerminalSink) error {
	p := tea.NewProgram(newModel(ctrl, sink), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
