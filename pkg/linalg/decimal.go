package linalg

import (
	"math"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// maxDecimalMagnitude keeps LegacyDec arithmetic well clear of its 256-bit
// integer limit.
const maxDecimalMagnitude = 1e50

// ParseCoordinate parses a decimal literal such as "7.204" or "-3". Exponent
// notation is not accepted; at most 18 fractional digits are kept.
func ParseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errorsmod.Wrap(ErrInvalidCoordinate, "empty literal")
	}
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidCoordinate, "%q: %s", s, err)
	}
	return decToFloat(d)
}

func decToFloat(d sdkmath.LegacyDec) (float64, error) {
	x, err := d.Float64()
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidCoordinate, "%s: %s", d, err)
	}
	return x, nil
}

// RoundHalfEven rounds x to the given number of decimal places with banker's
// rounding, carried out in fixed-point decimal.
func RoundHalfEven(x float64, places int) (sdkmath.LegacyDec, error) {
	if places < 0 || places > sdkmath.LegacyPrecision {
		return sdkmath.LegacyDec{}, errorsmod.Wrapf(ErrInvalidCoordinate, "decimal places out of range: %d", places)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > maxDecimalMagnitude {
		return sdkmath.LegacyDec{}, errorsmod.Wrapf(ErrInvalidCoordinate, "%v is not representable as a decimal", x)
	}
	d, err := sdkmath.LegacyNewDecFromStr(strconv.FormatFloat(x, 'f', sdkmath.LegacyPrecision, 64))
	if err != nil {
		return sdkmath.LegacyDec{}, errorsmod.Wrapf(ErrInvalidCoordinate, "%v: %s", x, err)
	}
	scale := sdkmath.LegacyNewDec(10).Power(uint64(places))
	return sdkmath.LegacyNewDecFromIntWithPrec(d.Mul(scale).RoundInt(), int64(places)), nil
}

// FormatDecimal renders x rounded to places decimals with trailing zeros
// dropped, so 5.000 prints as "5" and 1.250 as "1.25". Values that cannot be
// represented as a decimal fall back to strconv formatting.
func FormatDecimal(x float64, places int) string {
	d, err := RoundHalfEven(x, places)
	if err != nil {
		return formatFloat(x)
	}
	return trimDecimal(d.String())
}

func trimDecimal(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func isZeroAt(x float64, places int) bool {
	d, err := RoundHalfEven(x, places)
	if err != nil {
		return false
	}
	return d.IsZero()
}
