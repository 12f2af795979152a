package ytd

import (
	"encoding/json"
	"fmt"
	"io"
)

// jposition is the file representation of a Position.
type jposition struct {
	Cash       Amount                `json:"cash"`
	Securities map[Security]Quantity `json:"securities,omitempty"`
}

func (p *Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(jposition{Cash: p.cash, Securities: p.securities})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var jp jposition
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	*p = Position{cash: A(jp.Cash.Decimal()), securities: make(map[Security]Quantity, len(jp.Securities))}
	for sec, q := range jp.Securities {
		p.AddSecurityPosition(sec, q)
	}
	return nil
}

// DecodePosition reads a position from a JSON document such as
//
//	{"cash": 1000, "securities": {"GOOGL": 10, "IBM": 2.5}}
func DecodePosition(r io.Reader) (*Position, error) {
	p := NewPosition(ZeroAmount())
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}
	return p, nil
}

// EncodePosition writes p as an indented JSON document.
func EncodePosition(w io.Writer, p *Position) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode position: %w", err)
	}
	return nil
}
