package dotenv

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPattern accepts an optional sign, digits with at most one decimal point, and an optional exponent.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CastValue infers the type of a raw value. Rules, first match wins:
//   - "" → Null
//   - "..." (at least two bytes, quote at both ends) → String of the interior, verbatim
//   - true/false in any case → Bool
//   - numeric literal → Float if it contains '.', Int otherwise
//     (truncated toward zero and clamped to the int64 range)
//   - anything else → String, unchanged
//
// A lone `"` is not a quoted empty string; it falls through to String.
func CastValue(raw string) Scalar {
	if raw == "" {
		return Null()
	}

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return StringValue(raw[1 : len(raw)-1])
	}

	if strings.EqualFold(raw, "true") {
		return BoolValue(true)
	}
	if strings.EqualFold(raw, "false") {
		return BoolValue(false)
	}

	if numericPattern.MatchString(raw) {
		if v, ok := castNumber(raw); ok {
			return v
		}
	}

	return StringValue(raw)
}

func castNumber(raw string) (Scalar, bool) {
	// Out-of-range literals come back as ±Inf with ErrRange.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Scalar{}, false
	}
	if strings.Contains(raw, ".") {
		return FloatValue(f), true
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i), true
	}
	// Exponent form ("1e-2") or out of int64 range.
	return IntValue(truncateInt(f)), true
}

// truncateInt converts f toward zero, saturating at the int64 bounds.
func truncateInt(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
