package analysis

import "github.com/san-kum/votesim/internal/grid"

// WinCounts counts the pixels won by each of n candidates. Cells outside
// [0, n) are ignored.
func WinCounts(g *grid.WinnerGrid, n int) []int {
	counts := make([]int, n)
	for _, w := range g.Cells {
		if w >= 0 && w < n {
			counts[w]++
		}
	}
	return counts
}

// WinShares is WinCounts as fractions of the grid area.
func WinShares(g *grid.WinnerGrid, n int) []float64 {
	shares := make([]float64, n)
	if len(g.Cells) == 0 {
		return shares
	}
	for i, c := range WinCounts(g, n) {
		shares[i] = float64(c) / float64(len(g.Cells))
	}
	return shares
}
