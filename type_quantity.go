package ytd

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// precision is the number of fractional digits kept by every value type.
const precision = 2

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// normalize rounds half away from zero to the fixed precision.
func normalize(d decimal.Decimal) decimal.Decimal { return d.Round(precision) }

// scale computes d * to / from rounded to the fixed precision.
func scale(d decimal.Decimal, from, to int) (decimal.Decimal, error) {
	if from == 0 {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return d.Mul(decimal.NewFromInt(int64(to))).DivRound(decimal.NewFromInt(int64(from)), precision), nil
}

// parseDecimal parses an exact decimal literal such as "12.5" or "-3".
func parseDecimal(str string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return normalize(d), nil
}

// Quantity is a number of units of a security, kept with 2 fractional digits.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity rounded half-up to 2 fractional digits.
func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: normalize(newDecimal(value))}
}

// ZeroQuantity returns the zero quantity.
func ZeroQuantity() Quantity { return Quantity{value: normalize(decimal.Zero)} }

// ParseQuantity parses a decimal literal into a Quantity.
func ParseQuantity(str string) (Quantity, error) {
	d, err := parseDecimal(str)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", str, err)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) Cmp(p Quantity) int          { return q.value.Cmp(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: normalize(q.value.Add(p.value))} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: normalize(q.value.Sub(p.value))} }
func (q Quantity) Neg() Quantity               { return Quantity{value: q.value.Neg()} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }
func (q Quantity) String() string              { return q.value.StringFixed(precision) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }

// Scale maps q measured over 'from' to the 'to' denominator: q * to / from.
func (q Quantity) Scale(from, to int) (Quantity, error) {
	d, err := scale(q.value, from, to)
	return Quantity{value: d}, err
}

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.StringFixed(precision)), nil
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	if err := q.value.UnmarshalJSON(decimalBytes); err != nil {
		return err
	}
	q.value = normalize(q.value)
	return nil
}
