package linalg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vector is an immutable tuple of coordinates. Every operation returns a new
// Vector; the backing slice is never shared with callers.
//
// The zero value has dimension 0 and stands for "no vector".
type Vector struct {
	coordinates []float64
}

// Angle holds the angle between two vectors in both units.
type Angle struct {
	Radians float64 `json:"radians" yaml:"radians"`
	Degrees float64 `json:"degrees" yaml:"degrees"`
}

// RelationKind classifies a pair of vectors
type RelationKind int

const (
	Neither RelationKind = iota
	Orthogonal
	Parallel
)

func (k RelationKind) String() string {
	switch k {
	case Orthogonal:
		return "Orthogonal"
	case Parallel:
		return "Parallel"
	default:
		return "Neither"
	}
}

// Relation is the result of Classify. Angle is only set for Parallel.
type Relation struct {
	Kind  RelationKind
	Dot   float64
	Angle Angle
}

func (r Relation) String() string {
	if r.Kind == Parallel {
		return fmt.Sprintf("%s (dot=%s, angle=%s°)", r.Kind, formatFloat(r.Dot), formatFloat(r.Angle.Degrees))
	}
	return fmt.Sprintf("%s (dot=%s)", r.Kind, formatFloat(r.Dot))
}

// NewVector creates a vector from a copy of coords.
func NewVector(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	for i, x := range coords {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, errorsmod.Wrapf(ErrInvalidCoordinate, "coordinate %d is %v", i, x)
		}
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return Vector{coordinates: c}, nil
}

// MustNewVector is like NewVector but panics on error.
func MustNewVector(coords ...float64) Vector {
	v, err := NewVector(coords...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewVectorFromStrings parses each coordinate as a decimal literal.
func NewVectorFromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	values := make([]float64, len(coords))
	for i, s := range coords {
		x, err := ParseCoordinate(s)
		if err != nil {
			return Vector{}, errorsmod.Wrapf(err, "coordinate %d", i)
		}
		values[i] = x
	}
	return NewVector(values...)
}

// NewVectorFrom builds a vector from any ordered sequence: slices or arrays
// of integers, floats, decimal strings or sdkmath.LegacyDec, or another
// Vector. A string on its own is not a sequence of coordinates.
func NewVectorFrom(v any) (Vector, error) {
	switch x := v.(type) {
	case Vector:
		return NewVector(x.coordinates...)
	case []float64:
		return NewVector(x...)
	case []string:
		return NewVectorFromStrings(x...)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Vector{}, errorsmod.Wrap(ErrNotSequence, "nil input")
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Vector{}, errorsmod.Wrapf(ErrNotSequence, "cannot build coordinates from %T", v)
	}
	if rv.Len() == 0 {
		return Vector{}, ErrEmptyCoordinates
	}

	values := make([]float64, rv.Len())
	for i := range values {
		x, err := coordinateOf(rv.Index(i))
		if err != nil {
			return Vector{}, errorsmod.Wrapf(err, "coordinate %d", i)
		}
		values[i] = x
	}
	return NewVector(values...)
}

func coordinateOf(rv reflect.Value) (float64, error) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, errorsmod.Wrap(ErrInvalidCoordinate, "nil element")
		}
		rv = rv.Elem()
	}
	if rv.CanInterface() {
		if d, ok := rv.Interface().(sdkmath.LegacyDec); ok {
			if d.IsNil() {
				return 0, errorsmod.Wrap(ErrInvalidCoordinate, "nil decimal")
			}
			return decToFloat(d)
		}
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return ParseCoordinate(rv.String())
	}
	return 0, errorsmod.Wrapf(ErrInvalidCoordinate, "unsupported element type %s", rv.Type())
}

// Zero returns the zero vector of the given dimension.
func Zero(dimension int) Vector {
	return Vector{coordinates: make([]float64, dimension)}
}

// Dimension returns the number of coordinates
func (v Vector) Dimension() int {
	return len(v.coordinates)
}

// At returns the i-th coordinate.
func (v Vector) At(i int) float64 {
	return v.coordinates[i]
}

// Coordinates returns a copy of the coordinates
func (v Vector) Coordinates() []float64 {
	c := make([]float64, len(v.coordinates))
	copy(c, v.coordinates)
	return c
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) (Vector, error) {
	if err := checkDimensions("add", v, other); err != nil {
		return Vector{}, err
	}
	return checkFinite("add", floats.AddTo(make([]float64, v.Dimension()), v.coordinates, other.coordinates))
}

// Subtract returns v - other
func (v Vector) Subtract(other Vector) (Vector, error) {
	if err := checkDimensions("subtract", v, other); err != nil {
		return Vector{}, err
	}
	return checkFinite("subtract", floats.SubTo(make([]float64, v.Dimension()), v.coordinates, other.coordinates))
}

// ScalarMultiply returns the vector scaled by c. A non-finite c or a product
// that overflows float64 is rejected with ErrInvalidCoordinate.
func (v Vector) ScalarMultiply(c float64) (Vector, error) {
	return checkFinite("scale", floats.ScaleTo(make([]float64, v.Dimension()), c, v.coordinates))
}

// Magnitude returns the Euclidean norm
func (v Vector) Magnitude() float64 {
	if v.Dimension() == 0 {
		return 0
	}
	return floats.Norm(v.coordinates, 2)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) (float64, error) {
	if err := checkDimensions("dot", v, other); err != nil {
		return 0, err
	}
	return floats.Dot(v.coordinates, other.coordinates), nil
}

// Angle returns the angle between v and other. The cosine is clamped to
// [-1, 1] before taking the arccosine.
func (v Vector) Angle(other Vector) (Angle, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return Angle{}, err
	}
	denom := v.Magnitude() * other.Magnitude()
	if denom == 0 {
		return Angle{}, errorsmod.Wrap(ErrZeroVector, "angle is undefined for a zero vector")
	}
	cos := math.Max(-1, math.Min(1, dot/denom))
	rad := math.Acos(cos)
	return Angle{Radians: rad, Degrees: rad * 180 / math.Pi}, nil
}

// IsOrthogonal reports whether |v·other| < DefaultEpsilon.
func (v Vector) IsOrthogonal(other Vector) (bool, error) {
	return v.IsOrthogonalWithin(other, DefaultEpsilon)
}

// IsOrthogonalWithin reports whether |v·other| < tol.
func (v Vector) IsOrthogonalWithin(other Vector, tol float64) (bool, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return false, err
	}
	return IsNearZero(dot, tol), nil
}

// IsParallel reports whether v and other point along the same axis, in the
// same or opposite direction, using DefaultEpsilon.
func (v Vector) IsParallel(other Vector) (bool, error) {
	return v.IsParallelWithin(other, DefaultEpsilon)
}

// IsParallelWithin reports whether |sin θ| < tol. The sine is taken from the
// magnitude of the wedge product, sqrt(Σ_{i<j} (v_i w_j - v_j w_i)²), which
// stays exact for exactly proportional inputs where 1 - cos² would not.
func (v Vector) IsParallelWithin(other Vector, tol float64) (bool, error) {
	if err := checkDimensions("parallel", v, other); err != nil {
		return false, err
	}
	denom := v.Magnitude() * other.Magnitude()
	if denom == 0 {
		return false, errorsmod.Wrap(ErrZeroVector, "parallelism is undefined for a zero vector")
	}
	var wedge float64
	for i := 0; i < v.Dimension(); i++ {
		for j := i + 1; j < v.Dimension(); j++ {
			d := v.coordinates[i]*other.coordinates[j] - v.coordinates[j]*other.coordinates[i]
			wedge += d * d
		}
	}
	return math.Sqrt(wedge)/denom < tol, nil
}

// Classify tests orthogonality first, then parallelism.
func (v Vector) Classify(other Vector) (Relation, error) {
	return v.ClassifyWithin(other, DefaultTolerance())
}

// ClassifyWithin is Classify with explicit tolerances.
func (v Vector) ClassifyWithin(other Vector, tol Tolerance) (Relation, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return Relation{}, err
	}
	if IsNearZero(dot, tol.Orthogonal) {
		return Relation{Kind: Orthogonal, Dot: dot}, nil
	}

	parallel, err := v.IsParallelWithin(other, tol.Parallel)
	if err != nil {
		return Relation{}, err
	}
	if parallel {
		angle, err := v.Angle(other)
		if err != nil {
			return Relation{}, err
		}
		return Relation{Kind: Parallel, Dot: dot, Angle: angle}, nil
	}
	return Relation{Kind: Neither, Dot: dot}, nil
}

// ProjectOnto returns the component of v along other:
// other * (v·other / |other|²).
func (v Vector) ProjectOnto(other Vector) (Vector, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return Vector{}, err
	}
	mag := other.Magnitude()
	if mag == 0 {
		return Vector{}, errorsmod.Wrap(ErrZeroVector, "cannot project onto a zero vector")
	}
	return other.ScalarMultiply(dot / (mag * mag))
}

// ProjectParallel is an alias for ProjectOnto.
func (v Vector) ProjectParallel(other Vector) (Vector, error) {
	return v.ProjectOnto(other)
}

// ProjectPerpendicular returns v minus its projection onto other.
func (v Vector) ProjectPerpendicular(other Vector) (Vector, error) {
	proj, err := v.ProjectOnto(other)
	if err != nil {
		return Vector{}, err
	}
	return v.Subtract(proj)
}

// Cross returns the cross product. Both vectors must be 3-dimensional.
func (v Vector) Cross(other Vector) (Vector, error) {
	if v.Dimension() != 3 || other.Dimension() != 3 {
		return Vector{}, errorsmod.Wrapf(ErrUnsupportedDimension,
			"cross product requires 3D vectors, got %d and %d", v.Dimension(), other.Dimension())
	}
	a, b := v.coordinates, other.coordinates
	return checkFinite("cross", []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}

// AreaOfParallelogram returns |v × other|.
func (v Vector) AreaOfParallelogram(other Vector) (float64, error) {
	c, err := v.Cross(other)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

// AreaOfTriangle returns half the area of the parallelogram spanned by v and other.
func (v Vector) AreaOfTriangle(other Vector) (float64, error) {
	area, err := v.AreaOfParallelogram(other)
	if err != nil {
		return 0, err
	}
	return area / 2, nil
}

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}, errorsmod.Wrap(ErrZeroVector, "cannot normalize a zero vector")
	}
	return v.ScalarMultiply(1 / mag)
}

// Equal reports exact element-wise equality.
func (v Vector) Equal(other Vector) bool {
	return floats.Equal(v.coordinates, other.coordinates)
}

// EqualWithin reports element-wise equality within an absolute tolerance.
func (v Vector) EqualWithin(other Vector, tol float64) bool {
	if v.Dimension() != other.Dimension() {
		return false
	}
	for i := range v.coordinates {
		if !scalar.EqualWithinAbs(v.coordinates[i], other.coordinates[i], tol) {
			return false
		}
	}
	return true
}

// IsZero checks if every coordinate is exactly zero
func (v Vector) IsZero() bool {
	for _, x := range v.coordinates {
		if x != 0 {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	parts := make([]string, len(v.coordinates))
	for i, x := range v.coordinates {
		parts[i] = formatFloat(x)
	}
	return "Vector: (" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON encodes the vector as a JSON array.
func (v Vector) MarshalJSON() ([]byte, error) {
	if v.coordinates == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.coordinates)
}

// UnmarshalJSON decodes a JSON array of numbers. null leaves v unchanged,
// so the zero value written by MarshalJSON reads back as Vector{}.
func (v *Vector) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return errorsmod.Wrap(ErrNotSequence, err.Error())
	}
	parsed, err := NewVector(coords...)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the vector as a YAML sequence.
func (v Vector) MarshalYAML() (interface{}, error) {
	return v.coordinates, nil
}

func formatFloat(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
