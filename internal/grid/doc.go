// Package grid evaluates a voting rule over a square grid of electorates.
//
// Pixel (x, y) is an electorate made of two Gaussian blocs: bloc 0 centred
// by y and bloc 1 centred by x. The electorate is sampled on a fine 1D grid
// of 3*size+1 positions. Votes depend only on the candidate layout and the
// sample position, so they are computed once per [Field] and reused for
// every pixel; only the bloc weights change across pixels.
//
//	sim := grid.New(rule, candidates)
//	winners, err := sim.Run(ctx, grid.DefaultConfig())
package grid
