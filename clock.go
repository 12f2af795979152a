package ytd

import "github.com/etnz/ytd/date"

// Clock tells which day is today.
type Clock interface {
	Today() date.Date
}

// SystemClock reads today from the system clock.
type SystemClock struct{}

func (SystemClock) Today() date.Date { return date.Today() }

// FixedClock is always on the same day.
type FixedClock date.Date

func (c FixedClock) Today() date.Date { return date.Date(c) }
