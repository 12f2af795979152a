package ytd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ytd/date"
)

// jprice is one line of a market file.
type jprice struct {
	Date     date.Date `json:"date"`
	Security Security  `json:"security"`
	Price    Amount    `json:"price"`
}

// DecodeMarket reads a market from JSONL data, one price per line:
//
//	{"date":"2025-01-02","security":"GOOGL","price":151.2}
func DecodeMarket(r io.Reader) (*Market, error) {
	m := NewMarket()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}
		var jp jprice
		if err := json.Unmarshal(txt, &jp); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(txt), err)
		}
		if jp.Date.IsZero() || !jp.Security.Valid() {
			return nil, fmt.Errorf("format error on line %d %q: date and security are required", line, string(txt))
		}
		m.Set(jp.Date, jp.Security, jp.Price)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read market: %w", err)
	}
	return m, nil
}

// EncodeMarket writes every price of m as JSONL, grouped by security in
// ticker order then chronologically.
func EncodeMarket(w io.Writer, m *Market) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, sec := range m.Securities() {
		for day, price := range m.Prices(sec) {
			if err := enc.Encode(jprice{Date: day, Security: sec, Price: price}); err != nil {
				return fmt.Errorf("failed to encode price of %s on %s: %w", sec, day, err)
			}
		}
	}
	return bw.Flush()
}

// ImportMarket reads prices out of an arbitrary JSON document. The JSONPath
// expression selects the list of price records, each record having the
// "date", "security" and "price" fields of a market file line. For instance
// "$.data.quotes[*]" on
//
//	{"data": {"quotes": [{"date": "2025-01-02", "security": "IBM", "price": 210.5}]}}
func ImportMarket(r io.Reader, expr string) (*Market, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep prices exact
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	selected, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	// jsonpath returns either a list of answers or a single answer
	records, ok := selected.([]any)
	if !ok {
		records = []any{selected}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no price record selected by %q", expr)
	}

	m := NewMarket()
	for i, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		var jp jprice
		if err := json.Unmarshal(raw, &jp); err != nil {
			return nil, fmt.Errorf("record %d %s: %w", i, raw, err)
		}
		if jp.Date.IsZero() || !jp.Security.Valid() {
			return nil, fmt.Errorf("record %d %s: date and security are required", i, raw)
		}
		m.Set(jp.Date, jp.Security, jp.Price)
	}
	return m, nil
}
