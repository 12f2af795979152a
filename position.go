package ytd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/ytd/date"
)

// SecurityPosition is the quantity held of a single security.
type SecurityPosition struct {
	Security Security
	Quantity Quantity
}

// NewSecurityPosition returns the holding of q units of sec.
func NewSecurityPosition(sec Security, q Quantity) SecurityPosition {
	return SecurityPosition{Security: sec, Quantity: q}
}

// IsFlat reports whether nothing is held.
func (s SecurityPosition) IsFlat() bool { return s.Quantity.IsZero() }

func (s SecurityPosition) String() string {
	return fmt.Sprintf("SecurityPosition[security=%s, quantity=%s]", s.Security, s.Quantity)
}

// Position is the content of an account: a cash balance and the quantity held
// of each security.
//
// A Position is mutated in place and is not safe for concurrent use. Use Copy
// to work on an independent snapshot.
type Position struct {
	cash       Amount
	securities map[Security]Quantity
}

// NewPosition returns a position holding cash and the given securities.
func NewPosition(cash Amount, holdings ...SecurityPosition) *Position {
	p := &Position{cash: cash, securities: make(map[Security]Quantity, len(holdings))}
	p.AddSecurityPositions(holdings...)
	return p
}

// Cash returns the cash balance.
func (p *Position) Cash() Amount { return p.cash }

// AddCash adds delta to the cash balance. The balance may become negative.
func (p *Position) AddCash(delta Amount) { p.cash = p.cash.Add(delta) }

// AddSecurityPosition adds delta to the quantity held of sec.
//
// An entry that drops to zero is kept: it is flat and does not count in
// valuations.
func (p *Position) AddSecurityPosition(sec Security, delta Quantity) {
	if p.securities == nil {
		p.securities = make(map[Security]Quantity)
	}
	if q, ok := p.securities[sec]; ok {
		p.securities[sec] = q.Add(delta)
		return
	}
	p.securities[sec] = delta
}

// AddSecurityPositions adds every holding to the position.
func (p *Position) AddSecurityPositions(holdings ...SecurityPosition) {
	for _, h := range holdings {
		p.AddSecurityPosition(h.Security, h.Quantity)
	}
}

// SecurityPosition returns the quantity held of sec, zero if it was never held.
func (p *Position) SecurityPosition(sec Security) Quantity {
	if q, ok := p.securities[sec]; ok {
		return q
	}
	return ZeroQuantity()
}

// SecurityPositions returns every holding, flat ones included, in ticker order.
func (p *Position) SecurityPositions() []SecurityPosition {
	secs := slices.SortedFunc(maps.Keys(p.securities), func(a, b Security) int {
		return strings.Compare(a.Ticker(), b.Ticker())
	})
	holdings := make([]SecurityPosition, 0, len(secs))
	for _, sec := range secs {
		holdings = append(holdings, NewSecurityPosition(sec, p.securities[sec]))
	}
	return holdings
}

// SecurityPositionValue returns the market value of the securities held on day.
//
// Flat holdings are skipped and never priced, so a flat position can be valued
// on a day the source has no price for it.
func (p *Position) SecurityPositionValue(day date.Date, prices PriceSource) (Amount, error) {
	total := ZeroAmount()
	for _, h := range p.SecurityPositions() {
		if h.IsFlat() {
			continue
		}
		price, err := prices.Price(day, h.Security)
		if err != nil {
			return Amount{}, fmt.Errorf("cannot value %s on %s: %w", h.Security, day, err)
		}
		total = total.Add(price.Mul(h.Quantity))
	}
	return total, nil
}

// Value returns the cash balance plus the market value of the securities on day.
func (p *Position) Value(day date.Date, prices PriceSource) (Amount, error) {
	securities, err := p.SecurityPositionValue(day, prices)
	if err != nil {
		return Amount{}, err
	}
	return p.cash.Add(securities), nil
}

// Copy returns a position that shares no mutable state with p.
func (p *Position) Copy() *Position {
	return &Position{cash: p.cash, securities: maps.Clone(p.securities)}
}

func (p *Position) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position{cash=%s, securityPositions={", p.cash)
	for i, h := range p.SecurityPositions() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", h.Security, h.Quantity)
	}
	b.WriteString("}}")
	return b.String()
}
