package linalg

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace for the linalg package
const Codespace = "linalg"

var (
	// Construction errors
	ErrEmptyCoordinates  = errorsmod.Register(Codespace, 2, "coordinates must be nonempty")
	ErrNotSequence       = errorsmod.Register(Codespace, 3, "coordinates must be an ordered sequence")
	ErrInvalidCoordinate = errorsmod.Register(Codespace, 4, "invalid coordinate")

	// Geometry errors
	ErrDimensionMismatch    = errorsmod.Register(Codespace, 5, "dimension mismatch")
	ErrUnsupportedDimension = errorsmod.Register(Codespace, 6, "unsupported dimension")
	ErrZeroVector           = errorsmod.Register(Codespace, 7, "zero vector")
	ErrDegenerateLine       = errorsmod.Register(Codespace, 8, "line has no basepoint")

	// Input errors
	ErrInvalidTolerance = errorsmod.Register(Codespace, 9, "invalid tolerance")
	ErrInvalidLine      = errorsmod.Register(Codespace, 10, "invalid line")
)

func checkDimensions(op string, v, w Vector) error {
	if v.Dimension() != w.Dimension() {
		return errorsmod.Wrapf(ErrDimensionMismatch, "%s: %d != %d", op, v.Dimension(), w.Dimension())
	}
	return nil
}

// checkFinite wraps the coordinates computed by op, rejecting results that
// overflowed to ±Inf or became NaN.
func checkFinite(op string, coords []float64) (Vector, error) {
	for i, x := range coords {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, errorsmod.Wrapf(ErrInvalidCoordinate, "%s: coordinate %d overflows to %v", op, i, x)
		}
	}
	return Vector{coordinates: coords}, nil
}
