package ytd

import "errors"

var (
	// ErrUnknownPreference is returned when a required preference is not set.
	ErrUnknownPreference = errors.New("not a known preference")
	// ErrInvalidPreference is returned when a preference cannot be read as the requested type.
	ErrInvalidPreference = errors.New("invalid preference")
	// ErrPriceNotFound is returned by a PriceSource that has no price for a (date, security) pair.
	ErrPriceNotFound = errors.New("price not found")
	// ErrDivisionByZero is returned when scaling from a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidTransaction is returned for transactions breaking their type's invariants.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrUnknownSecurity is returned when a ticker is not one of the tradable securities.
	ErrUnknownSecurity = errors.New("unknown security")
)
