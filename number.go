package malimon

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Number is the result of a calculation. It holds either an integer or a
// floating-point value. Integer literals produce integers, and integers stay
// integers through addition, subtraction, and multiplication unless the
// result overflows. Decimal literals and division produce floats.
//
// The zero Number is the integer 0.
type Number struct {
	f     float64
	i     int64
	float bool
}

// Int returns an integer Number.
func Int(x int64) Number {
	return Number{i: x}
}

// Float returns a floating-point Number.
func Float(x float64) Number {
	return Number{f: x, float: true}
}

// IsInt reports whether n holds an integer.
func (n Number) IsInt() bool {
	return !n.float
}

// Int64 returns n as an integer, truncating toward zero if n is a float.
func (n Number) Int64() int64 {
	if n.float {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns n as a float.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

// IsZero reports whether n is zero, including negative zero.
func (n Number) IsZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.i == 0
}

// Equal reports whether two numbers have the same type and value.
func (n Number) Equal(m Number) bool {
	if n.float != m.float {
		return false
	}
	if n.float {
		return n.f == m.f
	}
	return n.i == m.i
}

// String formats integers in decimal and floats in the shortest form that
// reads back exactly, keeping a ".0" on integral floats so that 1.0 and 1
// print differently.
func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// Format implements fmt.Formatter so that float verbs apply to either kind
// of number and %v and %s use String.
func (n Number) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), n.String())
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.Int64())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.Float64())
	}
}

// parseNumber converts the text of a TokenNum. Text containing a decimal
// point is a float. An integer literal too large for int64 becomes a float.
func parseNumber(text string) (Number, error) {
	if !strings.Contains(text, ".") {
		i, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return Int(i), nil
		}
		if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
			return Number{}, err
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
			return Number{}, err
		}
	}
	return Float(f), nil
}

func add(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() + b.Float64())
	}
	s := a.i + b.i
	// Signed overflow iff both operands have the sign the result lacks.
	if (a.i^s)&(b.i^s) < 0 {
		return Float(float64(a.i) + float64(b.i))
	}
	return Int(s)
}

func sub(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() - b.Float64())
	}
	d := a.i - b.i
	if (a.i^b.i)&(a.i^d) < 0 {
		return Float(float64(a.i) - float64(b.i))
	}
	return Int(d)
}

func mul(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() * b.Float64())
	}
	if mulOverflows(a.i, b.i) {
		return Float(float64(a.i) * float64(b.i))
	}
	return Int(a.i * b.i)
}

// mulOverflows reports whether x*y overflows int64.
func mulOverflows(x, y int64) bool {
	if x == 0 || y == 0 {
		return false
	}
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(absu(x), absu(y))
	if hi != 0 {
		return true
	}
	if neg {
		return lo > 1<<63
	}
	return lo > math.MaxInt64
}

func absu(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// quo always divides as floats. The caller checks for a zero divisor.
func quo(a, b Number) Number {
	return Float(a.Float64() / b.Float64())
}
