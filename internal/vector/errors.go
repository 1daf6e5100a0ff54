package vector

import "errors"

var (
	// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrZeroVector is returned when normalizing a vector of zero magnitude.
	ErrZeroVector = errors.New("vector: cannot normalize zero vector")
)
