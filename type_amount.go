package ytd

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single, implicit currency of every Amount.
const Currency = money.USD

var zeroAmount = Amount{value: normalize(decimal.Zero)}

// Amount represents a monetary value in Currency, kept with 2 fractional digits.
type Amount struct {
	value decimal.Decimal // as major unit value
}

// A returns an Amount rounded half-up to 2 fractional digits.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: normalize(newDecimal(value))}
}

// ZeroAmount returns the zero amount.
func ZeroAmount() Amount { return zeroAmount }

// ParseAmount parses a decimal literal into an Amount.
func ParseAmount(str string) (Amount, error) {
	d, err := parseDecimal(str)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Amount{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(str string) Amount {
	a, err := ParseAmount(str)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Decimal() decimal.Decimal  { return a.value }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: normalize(a.value.Add(b.value))} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: normalize(a.value.Sub(b.value))} }

// Mul returns the value of q units priced at a.
func (a Amount) Mul(q Quantity) Amount { return Amount{value: normalize(a.value.Mul(q.value))} }

// Scale maps a measured over 'from' to the 'to' denominator: a * to / from.
func (a Amount) Scale(from, to int) (Amount, error) {
	d, err := scale(a.value, from, to)
	return Amount{value: d}, err
}

// String returns the plain decimal followed by the currency code, e.g. "12.30 USD".
func (a Amount) String() string { return a.value.StringFixed(precision) + " " + Currency }

// Format returns the amount the way the currency is usually displayed, e.g. "$1,234.50".
func (a Amount) Format() string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, Currency).Currency()
	return cur.Formatter().Format(a.value.Shift(int32(cur.Fraction)).IntPart())
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.StringFixed(precision)), nil
}

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	if err := a.value.UnmarshalJSON(decimalBytes); err != nil {
		return err
	}
	a.value = normalize(a.value)
	return nil
}
