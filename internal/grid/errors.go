package grid

import "errors"

var (
	// ErrGridTooSmall indicates a grid size below 2 pixels.
	ErrGridTooSmall = errors.New("grid: size must be at least 2")

	// ErrInvalidSpread indicates a non-positive bloc variance.
	ErrInvalidSpread = errors.New("grid: bloc variance must be positive")

	// ErrNegativeWeight indicates a negative weight for bloc 1.
	ErrNegativeWeight = errors.New("grid: bloc weight must not be negative")
)
