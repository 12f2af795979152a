package ytd

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/etnz/ytd/date"
)

// PriceSource gives the price of a security on a given day.
//
// Implementations return an error wrapping ErrPriceNotFound when they have no
// price for that exact day and security.
type PriceSource interface {
	Price(day date.Date, sec Security) (Amount, error)
}

// PriceFunc adapts a function to the PriceSource interface.
type PriceFunc func(day date.Date, sec Security) (Amount, error)

func (f PriceFunc) Price(day date.Date, sec Security) (Amount, error) { return f(day, sec) }

// Market holds daily prices for a set of securities.
//
// A Market is meant to be filled before being shared: Price can be called
// concurrently, and concurrently with Set.
type Market struct {
	mu     sync.RWMutex
	prices map[Security]*date.History[Amount]
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{prices: make(map[Security]*date.History[Amount])}
}

// Set records the price of sec on day, replacing any previous one.
func (m *Market) Set(day date.Date, sec Security, price Amount) *Market {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.prices[sec]
	if !ok {
		h = new(date.History[Amount])
		m.prices[sec] = h
	}
	h.Append(day, price)
	return m
}

// Price returns the price of sec on day.
func (m *Market) Price(day date.Date, sec Security) (Amount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.prices[sec]; ok {
		if price, ok := h.Get(day); ok {
			return price, nil
		}
	}
	return Amount{}, fmt.Errorf("%w for %s on %s", ErrPriceNotFound, sec, day)
}

// Securities returns the securities with at least one price, in ticker order.
func (m *Market) Securities() []Security {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(m.prices), func(a, b Security) int {
		return strings.Compare(a.Ticker(), b.Ticker())
	})
}

// Prices iterates over the prices of sec in chronological order.
func (m *Market) Prices(sec Security) iter.Seq2[date.Date, Amount] {
	return func(yield func(date.Date, Amount) bool) {
		m.mu.RLock()
		h, ok := m.prices[sec]
		m.mu.RUnlock()
		if !ok {
			return
		}
		for day, price := range h.Values() {
			if !yield(day, price) {
				return
			}
		}
	}
}

// Len returns the number of (day, security) prices held.
func (m *Market) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, h := range m.prices {
		n += h.Len()
	}
	return n
}
