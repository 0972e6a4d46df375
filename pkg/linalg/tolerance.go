package linalg

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// DefaultEpsilon is the near-zero threshold used when no tolerance is configured.
const DefaultEpsilon = 1e-10

// Tolerance groups the epsilons used by the geometric predicates.
//
// Zero is the threshold below which a coefficient counts as zero (basepoint
// selection, intersection determinant). Orthogonal bounds |v·w|. Parallel
// bounds |sin θ| between two vectors.
type Tolerance struct {
	Zero       float64 `json:"zero" yaml:"zero"`
	Orthogonal float64 `json:"orthogonal" yaml:"orthogonal"`
	Parallel   float64 `json:"parallel" yaml:"parallel"`
}

// DefaultTolerance returns the tolerance used by the plain predicates.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Zero:       DefaultEpsilon,
		Orthogonal: DefaultEpsilon,
		Parallel:   DefaultEpsilon,
	}
}

// Validate checks that every epsilon is finite and strictly positive.
func (t Tolerance) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"zero", t.Zero},
		{"orthogonal", t.Orthogonal},
		{"parallel", t.Parallel},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return errorsmod.Wrapf(ErrInvalidTolerance, "%s tolerance must be positive and finite, got %v", f.name, f.value)
		}
	}
	return nil
}

// IsNearZero reports whether |x| < eps.
func IsNearZero(x, eps float64) bool {
	return math.Abs(x) < eps
}

// FirstNonzeroIndex returns the index of the first value that is not near
// zero. ok is false when every value is near zero.
func FirstNonzeroIndex(values []float64, eps float64) (index int, ok bool) {
	for i, x := range values {
		if !IsNearZero(x, eps) {
			return i, true
		}
	}
	return -1, false
}
