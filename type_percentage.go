package ytd

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	zeroPercentage    = Percentage{value: normalize(decimal.Zero)}
	hundredPercentage = Percentage{value: normalize(decimal.NewFromInt(100))}
)

// Percentage is a ratio expressed in hundredths, kept with 2 fractional digits.
type Percentage struct {
	value decimal.Decimal
}

// P returns a Percentage rounded half-up to 2 fractional digits.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percentage {
	return Percentage{value: normalize(newDecimal(value))}
}

// ZeroPercentage returns 0.00%.
func ZeroPercentage() Percentage { return zeroPercentage }

// Hundred returns 100.00%.
func Hundred() Percentage { return hundredPercentage }

// ParsePercentage parses a decimal literal, without the '%' sign, into a Percentage.
func ParsePercentage(str string) (Percentage, error) {
	d, err := parseDecimal(str)
	if err != nil {
		return Percentage{}, fmt.Errorf("invalid percentage %q: %w", str, err)
	}
	return Percentage{value: d}, nil
}

func (p Percentage) Equal(q Percentage) bool       { return p.value.Equal(q.value) }
func (p Percentage) Cmp(q Percentage) int          { return p.value.Cmp(q.value) }
func (p Percentage) IsZero() bool                  { return p.value.IsZero() }
func (p Percentage) IsNegative() bool              { return p.value.IsNegative() }
func (p Percentage) Neg() Percentage               { return Percentage{value: p.value.Neg()} }
func (p Percentage) Add(q Percentage) Percentage   { return Percentage{value: normalize(p.value.Add(q.value))} }
func (p Percentage) Sub(q Percentage) Percentage   { return Percentage{value: normalize(p.value.Sub(q.value))} }
func (p Percentage) Decimal() decimal.Decimal      { return p.value }
func (p Percentage) String() string                { return p.value.StringFixed(precision) + "%" }

// Scale maps a ratio measured over 'from' (e.g. elapsed days) to the 'to'
// denominator (e.g. a nominal year): p * to / from, rounded to 2 digits.
// E.g. 3 on 4 scaled to 8 gives 6.
func (p Percentage) Scale(from, to int) (Percentage, error) {
	d, err := scale(p.value, from, to)
	return Percentage{value: d}, err
}

// SignedString returns the percentage with an explicit sign, "-" for zero.
func (p Percentage) SignedString() string {
	if p.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.value.StringFixed(precision)), nil
}

func (p *Percentage) UnmarshalJSON(decimalBytes []byte) error {
	if err := p.value.UnmarshalJSON(decimalBytes); err != nil {
		return err
	}
	p.value = normalize(p.value)
	return nil
}
