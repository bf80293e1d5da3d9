package dotenv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Environment is the process environment table a Store mirrors into.
// sourceenv.OS() is the real one; sourceenv.NewMap is an in-memory stand-in.
type Environment interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)

	// Environ returns all variables as "KEY=value" strings.
	Environ() []string

	// Setenv sets key to value.
	Setenv(key, value string) error
}

// Kind discriminates the variants of a Scalar.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Scalar is a typed environment value: null, bool, int, float or string.
// The zero value is Null.
type Scalar struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null Scalar.
func Null() Scalar { return Scalar{} }

// BoolValue wraps a bool.
func BoolValue(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// IntValue wraps an int64.
func IntValue(i int64) Scalar { return Scalar{kind: KindInt, i: i} }

// FloatValue wraps a float64.
func FloatValue(f float64) Scalar { return Scalar{kind: KindFloat, f: f} }

// StringValue wraps a string.
func StringValue(s string) Scalar { return Scalar{kind: KindString, s: s} }

// Kind returns which variant v holds.
func (v Scalar) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Scalar) IsNull() bool { return v.kind == KindNull }

// Bool returns the wrapped bool and whether v is a bool.
func (v Scalar) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the wrapped int64 and whether v is an int.
func (v Scalar) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the wrapped float64 and whether v is a float.
func (v Scalar) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Text returns the wrapped string and whether v is a string.
func (v Scalar) Text() (string, bool) { return v.s, v.kind == KindString }

// BoolOr returns the wrapped bool, or def if v is not a bool.
func (v Scalar) BoolOr(def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}

// IntOr returns the wrapped int64, or def if v is not an int.
func (v Scalar) IntOr(def int64) int64 {
	if i, ok := v.Int(); ok {
		return i
	}
	return def
}

// FloatOr returns the wrapped number as float64, or def if v is neither a float nor an int.
func (v Scalar) FloatOr(def float64) float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		return def
	}
}

// TextOr returns the wrapped string, or def if v is not a string.
func (v Scalar) TextOr(def string) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return def
}

// Any returns the natural Go value: nil, bool, int64, float64 or string.
func (v Scalar) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String returns the representation written to the process environment.
// Null is "", bools are "true"/"false", and floats always keep a decimal point
// so that CastValue(v.String()) yields the same kind again.
func (v Scalar) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Equal reports whether v and other hold the same kind and value.
func (v Scalar) Equal(other Scalar) bool {
	return v == other
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Entry is a single key and its value.
type Entry struct {
	Key   string
	Value Scalar
}
