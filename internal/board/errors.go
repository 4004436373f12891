package board

import (
	"errors"
	"fmt"
)

// Board errors.
// All of them wrap ErrInvalidInput so callers that only care about the error
// class can use errors.Is(err, ErrInvalidInput).
var (
	// ErrInvalidInput is the class of every board validation failure.
	ErrInvalidInput = errors.New("invalid board")

	// ErrNotRectangular is returned when rows have different lengths.
	ErrNotRectangular = fmt.Errorf("%w: rows must all have the same length", ErrInvalidInput)

	// ErrInvalidCell is returned by Sanitize for a cell that is neither 0 nor 1.
	ErrInvalidCell = fmt.Errorf("%w: cells must be 0 or 1", ErrInvalidInput)

	// ErrOutOfBounds is returned when a cell index lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell index out of bounds", ErrInvalidInput)
)
