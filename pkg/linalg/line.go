package linalg

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

const (
	// LineDimension is the only dimension Line supports
	LineDimension = 2

	// lineDecimalPlaces is the rounding used when rendering equations
	lineDecimalPlaces = 3
)

// Line is the set of points p in the plane with normal·p = constant.
// The basepoint is derived once at construction and is absent when the
// normal vector has no nonzero coordinate.
type Line struct {
	normal       Vector
	constant     float64
	basepoint    Vector
	hasBasepoint bool
	tol          Tolerance
}

// LineOption configures a Line at construction time
type LineOption func(*Line)

// WithTolerance overrides the epsilons used by the line predicates.
func WithTolerance(tol Tolerance) LineOption {
	return func(l *Line) {
		l.tol = tol
	}
}

// NewLine creates a line from its normal vector and constant term. A zero
// value normal (Vector{}) defaults to the 2D zero vector.
func NewLine(normal Vector, constant float64, opts ...LineOption) (Line, error) {
	if normal.Dimension() == 0 {
		normal = Zero(LineDimension)
	}
	if normal.Dimension() != LineDimension {
		return Line{}, errorsmod.Wrapf(ErrUnsupportedDimension, "line normal must be %dD, got %d", LineDimension, normal.Dimension())
	}
	if _, err := NewVector(constant); err != nil {
		return Line{}, errorsmod.Wrap(err, "constant term")
	}

	l := Line{
		normal:   normal,
		constant: constant,
		tol:      DefaultTolerance(),
	}
	for _, opt := range opts {
		opt(&l)
	}
	if err := l.tol.Validate(); err != nil {
		return Line{}, err
	}

	l.setBasepoint()
	return l, nil
}

// MustNewLine is like NewLine but panics on error.
func MustNewLine(normal Vector, constant float64, opts ...LineOption) Line {
	l, err := NewLine(normal, constant, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// setBasepoint solves for the coordinate at the first nonzero index of the
// normal, leaving the others at zero.
func (l *Line) setBasepoint() {
	i, ok := FirstNonzeroIndex(l.normal.coordinates, l.tol.Zero)
	if !ok {
		l.basepoint, l.hasBasepoint = Vector{}, false
		return
	}
	coords := make([]float64, LineDimension)
	coords[i] = l.constant / l.normal.coordinates[i]
	l.basepoint, l.hasBasepoint = Vector{coordinates: coords}, true
}

// Dimension returns the dimension of the ambient space
func (l Line) Dimension() int {
	return LineDimension
}

// NormalVector returns the line's normal vector
func (l Line) NormalVector() Vector {
	return l.normal
}

// ConstantTerm returns the right-hand side of the line equation
func (l Line) ConstantTerm() float64 {
	return l.constant
}

// Basepoint returns a point on the line. ok is false for a degenerate line.
func (l Line) Basepoint() (Vector, bool) {
	return l.basepoint, l.hasBasepoint
}

// Tolerance returns the epsilons the line was built with
func (l Line) Tolerance() Tolerance {
	return l.tol
}

// IsParallel reports whether the normal vectors of both lines are parallel.
func (l Line) IsParallel(other Line) (bool, error) {
	if !l.hasBasepoint || !other.hasBasepoint {
		return false, errorsmod.Wrap(ErrDegenerateLine, "parallelism is undefined for a zero normal vector")
	}
	return l.normal.IsParallelWithin(other.normal, l.tol.Parallel)
}

// AreEqual reports whether both lines describe the same set of points: they
// must be parallel and the difference of their basepoints must be orthogonal
// to the normal vector.
func (l Line) AreEqual(other Line) (bool, error) {
	parallel, err := l.IsParallel(other)
	if err != nil || !parallel {
		return false, err
	}
	diff, err := l.basepoint.Subtract(other.basepoint)
	if err != nil {
		return false, err
	}
	return diff.IsOrthogonalWithin(l.normal, l.tol.Orthogonal)
}

// IntersectionKind describes how two lines meet
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	Coincident
)

func (k IntersectionKind) String() string {
	switch k {
	case PointIntersection:
		return "point"
	case Coincident:
		return "coincident"
	default:
		return "none"
	}
}

// Intersection is the result of intersecting two lines. Point is set for
// PointIntersection; Line holds the receiver for Coincident.
type Intersection struct {
	Kind  IntersectionKind
	Point Vector
	Line  Line
}

func (i Intersection) String() string {
	switch i.Kind {
	case PointIntersection:
		return i.Point.String()
	case Coincident:
		return i.Line.String()
	default:
		return "no intersection"
	}
}

// Intersection solves the 2x2 system of both line equations with Cramer's
// rule. Lines whose normals are parallel (the same scale-free test as
// IsParallel) are either coincident or parallel and disjoint.
func (l Line) Intersection(other Line) (Intersection, error) {
	parallel, err := l.IsParallel(other)
	if err != nil {
		return Intersection{}, err
	}
	if parallel {
		equal, err := l.AreEqual(other)
		if err != nil {
			return Intersection{}, err
		}
		if equal {
			return Intersection{Kind: Coincident, Line: l}, nil
		}
		return Intersection{Kind: NoIntersection}, nil
	}

	a, b := l.normal.coordinates[0], l.normal.coordinates[1]
	c, d := other.normal.coordinates[0], other.normal.coordinates[1]
	k1, k2 := l.constant, other.constant

	det := a*d - b*c
	point, err := checkFinite("intersection", []float64{(d*k1 - b*k2) / det, (-c*k1 + a*k2) / det})
	if err != nil {
		return Intersection{}, err
	}
	return Intersection{Kind: PointIntersection, Point: point}, nil
}

// String renders the line as an equation, e.g. "2x_1 - x_2 = 1.5".
func (l Line) String() string {
	var terms []string
	for i, x := range l.normal.coordinates {
		if isZeroAt(x, lineDecimalPlaces) {
			continue
		}
		terms = append(terms, writeTerm(x, i, len(terms) == 0))
	}

	lhs := "0"
	if len(terms) > 0 {
		lhs = strings.Join(terms, " ")
	}
	return fmt.Sprintf("%s = %s", lhs, FormatDecimal(l.constant, lineDecimalPlaces))
}

func writeTerm(coefficient float64, index int, initial bool) string {
	var sb strings.Builder

	switch {
	case coefficient < 0:
		sb.WriteString("-")
	case !initial:
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}

	magnitude := FormatDecimal(coefficient, lineDecimalPlaces)
	magnitude = strings.TrimPrefix(magnitude, "-")
	if magnitude != "1" {
		sb.WriteString(magnitude)
	}

	fmt.Fprintf(&sb, "x_%d", index+1)
	return sb.String()
}
