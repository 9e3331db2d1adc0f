package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TerminalSink draws frames with the upper half block: each character cell
// shows two pixel rows, the top one as foreground and the bottom one as
// background. An odd last row uses the terminal background.
type TerminalSink struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	last     string
}

// NewTerminalSink writes each frame to out. A nil out only keeps the
// last frame for String.
func NewTerminalSink(out io.Writer) *TerminalSink {
	r := lipgloss.DefaultRenderer()
	if out != nil {
		r = lipgloss.NewRenderer(out)
	}
	return &TerminalSink{out: out, renderer: r}
}

func (s *TerminalSink) Present(width, height int, rgba []byte) error {
	if err := checkFrame(width, height, rgba); err != nil {
		return err
	}
	frame := s.frame(width, height, rgba)

	s.mu.Lock()
	s.last = frame
	s.mu.Unlock()

	if s.out != nil {
		_, err := fmt.Fprintln(s.out, frame)
		return err
	}
	return nil
}

// String returns the last frame.
func (s *TerminalSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func hexAt(rgba []byte, width, x, y int) lipgloss.Color {
	o := (y*width + x) * 4
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba[o], rgba[o+1], rgba[o+2]))
}

func (s *TerminalSink) frame(width, height int, rgba []byte) string {
	styles := make(map[[2]lipgloss.Color]lipgloss.Style)

	var sb strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			key := [2]lipgloss.Color{hexAt(rgba, width, x, y)}
			if y+1 < height {
				key[1] = hexAt(rgba, width, x, y+1)
			}
			st, ok := styles[key]
			if !ok {
				st = s.renderer.NewStyle().Foreground(key[0])
				if key[1] != "" {
					st = st.Background(key[1])
				}
				styles[key] = st
			}
			sb.WriteString(st.Render("▀"))
		}
	}
	return sb.String()
}
