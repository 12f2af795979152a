package ytd

import (
	"fmt"

	"github.com/etnz/ytd/date"
	"github.com/rs/zerolog"
)

// YTDReport details how the year-to-date return of a position was computed.
type YTDReport struct {
	Range      date.Range // From the first day of the year to today.
	YearLength int        // Days in the nominal year used to annualize.

	Initial  *Position // Position rewound to the first day of the year.
	Current  *Position // Position as of today.
	Reverted []Transaction

	InitialValue Amount
	CurrentValue Amount // Zero when InitialValue is zero.

	Raw    Percentage // Return over the elapsed part of the year.
	Return Percentage // Raw annualized to YearLength days.
}

// ReportingService computes returns on investment for the current day.
type ReportingService struct {
	prefs  *Preferences
	prices PriceSource
	clock  Clock
	log    zerolog.Logger
}

// NewReportingService returns a service reading the year length from prefs and
// security prices from prices.
func NewReportingService(prefs *Preferences, prices PriceSource, clock Clock, log zerolog.Logger) *ReportingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ReportingService{
		prefs:  prefs,
		prices: prices,
		clock:  clock,
		log:    log.With().Str("service", "reporting").Logger(),
	}
}

// ReturnOnInvestmentYTD returns the annualized year-to-date return of current,
// given every transaction that produced it.
func (s *ReportingService) ReturnOnInvestmentYTD(current *Position, txs []Transaction) (Percentage, error) {
	r, err := s.Report(current, txs)
	if err != nil {
		return Percentage{}, err
	}
	return r.Return, nil
}

// Report is like ReturnOnInvestmentYTD but returns the intermediate values as well.
func (s *ReportingService) Report(current *Position, txs []Transaction) (*YTDReport, error) {
	yearLength, err := s.prefs.Integer(LengthOfYear)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	r, err := report(current, txs, today, yearLength, s.prices, s.log)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Stringer("today", today).
		Stringer("initial", r.InitialValue).
		Stringer("current", r.CurrentValue).
		Stringer("return", r.Return).
		Msg("computed year-to-date return")
	return r, nil
}

// Rewind returns the position as of the start of the year of today.
func (s *ReportingService) Rewind(current *Position, txs []Transaction) (*Position, error) {
	p, _, err := rewind(current, txs, s.clock.Today(), s.log)
	return p, err
}

// ReturnOnInvestmentYTD returns the return of current from the first day of
// the year of today to today, annualized to a year of yearLength days.
//
// txs are all the transactions that led to current, in any order. Transactions
// before the start of the year or after today are ignored. current is left
// unchanged.
func ReturnOnInvestmentYTD(current *Position, txs []Transaction, today date.Date, yearLength int, prices PriceSource) (Percentage, error) {
	r, err := report(current, txs, today, yearLength, prices, zerolog.Nop())
	if err != nil {
		return Percentage{}, err
	}
	return r.Return, nil
}

// Rewind returns a copy of current with every transaction dated from the
// first day of the year of today to today reverted.
func Rewind(current *Position, txs []Transaction, today date.Date) (*Position, error) {
	p, _, err := rewind(current, txs, today, zerolog.Nop())
	return p, err
}

func rewind(current *Position, txs []Transaction, today date.Date, log zerolog.Logger) (*Position, []Transaction, error) {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, nil, err
		}
	}
	working := current.Copy()
	sorted := SortAntichronological(txs)

	i := 0
	// Not yet happened as of today.
	for i < len(sorted) && sorted[i].Date().After(today) {
		i++
	}
	var reverted []Transaction
	for day := range date.YearToDate(today).Backward() {
		if i >= len(sorted) {
			break
		}
		for i < len(sorted) && sorted[i].Date() == day {
			sorted[i].Revert(working)
			reverted = append(reverted, sorted[i])
			log.Debug().Stringer("transaction", sorted[i]).Msg("reverted")
			i++
		}
	}
	return working, reverted, nil
}

func report(current *Position, txs []Transaction, today date.Date, yearLength int, prices PriceSource, log zerolog.Logger) (*YTDReport, error) {
	if yearLength <= 0 {
		return nil, fmt.Errorf("%w %s=%d: must be positive", ErrInvalidPreference, LengthOfYear, yearLength)
	}
	period := date.YearToDate(today)
	initial, reverted, err := rewind(current, txs, today, log)
	if err != nil {
		return nil, err
	}
	r := &YTDReport{
		Range:        period,
		YearLength:   yearLength,
		Initial:      initial,
		Current:      current.Copy(),
		Reverted:     reverted,
		CurrentValue: ZeroAmount(),
		Raw:          ZeroPercentage(),
		Return:       ZeroPercentage(),
	}

	r.InitialValue, err = initial.Value(period.From, prices)
	if err != nil {
		return nil, fmt.Errorf("cannot value position on %s: %w", period.From, err)
	}
	if r.InitialValue.IsZero() {
		log.Debug().Msg("nothing invested at the start of the year")
		return r, nil
	}

	r.CurrentValue, err = current.Value(today, prices)
	if err != nil {
		return nil, fmt.Errorf("cannot value position on %s: %w", today, err)
	}

	gain := r.CurrentValue.Sub(r.InitialValue).Decimal()
	ratio := gain.DivRound(r.InitialValue.Decimal(), 10).Mul(Hundred().Decimal())
	r.Raw = P(ratio)
	r.Return, err = r.Raw.Scale(today.YearDay(), yearLength)
	if err != nil {
		return nil, err
	}
	return r, nil
}
