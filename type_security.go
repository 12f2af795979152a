package ytd

import (
	"encoding/json"
	"fmt"
)

// Security identifies one of the tradable assets. The set is closed.
type Security int

// Tradable securities. The zero value is not a valid security.
const (
	GOOGL Security = iota + 1
	APPL
	IBM
	INTC
)

var tickers = [...]string{GOOGL: "GOOGL", APPL: "APPL", IBM: "IBM", INTC: "INTC"}

// Securities returns every tradable security, in ticker order.
func Securities() []Security { return []Security{APPL, GOOGL, IBM, INTC} }

// ParseSecurity returns the security for a ticker.
func ParseSecurity(ticker string) (Security, error) {
	for s, t := range tickers {
		if t != "" && t == ticker {
			return Security(s), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSecurity, ticker)
}

// Valid reports whether s is one of the tradable securities.
func (s Security) Valid() bool { return s > 0 && int(s) < len(tickers) }

// Ticker returns the human-friendly ticker symbol of the security.
func (s Security) Ticker() string {
	if !s.Valid() {
		return ""
	}
	return tickers[s]
}

func (s Security) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Security(%d)", int(s))
	}
	return tickers[s]
}

func (s Security) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownSecurity, int(s))
	}
	return []byte(s.Ticker()), nil
}

func (s *Security) UnmarshalText(text []byte) error {
	sec, err := ParseSecurity(string(text))
	if err != nil {
		return err
	}
	*s = sec
	return nil
}

var _ json.Marshaler = (*Security)(nil)

func (s Security) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (s *Security) UnmarshalJSON(data []byte) error {
	var ticker string
	if err := json.Unmarshal(data, &ticker); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(ticker))
}
