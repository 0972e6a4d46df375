package linalg

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// ParseVector parses a comma separated list of decimal literals, optionally
// wrapped in parentheses or brackets: "1,2,3", "(1, 2, 3)", "[1.5,-2]".
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	s = strings.TrimPrefix(strings.TrimSuffix(s, "]"), "[")
	if strings.TrimSpace(s) == "" {
		return Vector{}, ErrEmptyCoordinates
	}
	return NewVectorFromStrings(strings.Split(s, ",")...)
}

// ParseLine parses "a,b=k" into the line a·x_1 + b·x_2 = k. The constant
// defaults to zero when "=k" is omitted.
func ParseLine(s string, opts ...LineOption) (Line, error) {
	normalPart, constantPart, hasConstant := strings.Cut(s, "=")

	normal, err := ParseVector(normalPart)
	if err != nil {
		return Line{}, errorsmod.Wrapf(ErrInvalidLine, "%q: normal vector: %s", s, err)
	}

	var constant float64
	if hasConstant {
		constant, err = ParseCoordinate(constantPart)
		if err != nil {
			return Line{}, errorsmod.Wrapf(ErrInvalidLine, "%q: constant term: %s", s, err)
		}
	}

	l, err := NewLine(normal, constant, opts...)
	if err != nil {
		return Line{}, errorsmod.Wrapf(err, "%q", s)
	}
	return l, nil
}
