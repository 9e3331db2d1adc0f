package grid

type Config struct {
	Size      int
	Variance0 float64
	Variance1 float64
	Weight1   float64
	// Workers > 1 evaluates rows concurrently. The result is identical.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Size:      200,
		Variance0: 0.2,
		Variance1: 0.2,
		Weight1:   1.0,
		Workers:   1,
	}
}

// Sample is one fine-grid voter position and its electorate weight.
type Sample struct {
	Position float64
	Weight   float64
}

// WinnerGrid stores the winning candidate index per pixel, row-major.
type WinnerGrid struct {
	Width, Height int
	Cells         []int
}

func NewWinnerGrid(w, h int) *WinnerGrid {
	return &WinnerGrid{Width: w, Height: h, Cells: make([]int, w*h)}
}

func (g *WinnerGrid) At(x, y int) int     { return g.Cells[y*g.Width+x] }
func (g *WinnerGrid) Set(x, y, winner int) { g.Cells[y*g.Width+x] = winner }
