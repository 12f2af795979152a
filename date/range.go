package date

import "iter"

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// YearToDate returns the range from the first day of d's year up to d.
func YearToDate(d Date) Range { return Range{From: d.StartOfYear(), To: d} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, 0 if the range is empty.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.YearDay() - r.From.YearDay() + 1 + daysInYears(r.From.Year(), r.To.Year())
}

// daysInYears counts the days of the years in [from, to).
func daysInYears(from, to int) int {
	n := 0
	for y := from; y < to; y++ {
		n += New(y, 12, 31).YearDay()
	}
	return n
}

// Forward iterates over every day of the range in chronological order.
func (r Range) Forward() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := r.From; !day.After(r.To); day = day.Add(1) {
			if !yield(day) {
				return
			}
		}
	}
}

// Backward iterates over every day of the range from To down to From.
func (r Range) Backward() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := r.To; !day.Before(r.From); day = day.Add(-1) {
			if !yield(day) {
				return
			}
		}
	}
}

// String returns the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
