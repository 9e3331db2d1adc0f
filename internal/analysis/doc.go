// Package analysis summarises winner grids and single electorates.
//
//   - [WinCounts], [WinShares]: how much of the grid each candidate wins
//   - [NewProfile]: the electorate of one pixel and its first choices
//   - [WeightSweep]: win shares as the second bloc's weight varies
//
// A weight sweep shows where a rule flips between candidates:
//
//	points, err := analysis.WeightSweep(ctx, rule, candidates, cfg, 0, 2, 9)
package analysis
