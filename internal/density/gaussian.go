// Package density provides the voter densities used to weight the electorate.
//
// Each bloc is a Gaussian. The spread parameter is historically called
// variance but enters the formula as the standard deviation:
//
//	pdf(x, v) = exp(-x²/(2v²)) / sqrt(2πv²)
package density

import "math"

// PDF evaluates a zero-mean Gaussian at offset, with variance used as the
// standard deviation.
func PDF(offset, variance float64) float64 {
	v2 := variance * variance
	return math.Exp(-(offset*offset)/(2*v2)) / math.Sqrt(2*math.Pi*v2)
}

// Cache holds PDF samples on a regular grid, scaled by a bloc weight.
// Index i is evaluated at offset i/scale - 1.
type Cache []float64

// NewCache samples n points of weight*PDF(i/scale-1, variance).
func NewCache(n int, scale, variance, weight float64) Cache {
	c := make(Cache, n)
	for i := range c {
		c[i] = weight * PDF(float64(i)/scale-1, variance)
	}
	return c
}

// At returns the sample at i, or 0 outside the cache.
func (c Cache) At(i int) float64 {
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}
