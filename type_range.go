package acctreports

import (
	"iter"
	"slices"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		// Start from the beginning of the original range.
		for current := r.From; !current.After(r.To); {
			// Get the full period range containing the current date.
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period to start the next iteration.
			current = periodRange.To.Add(1)
		}
	}
}

// Ends returns an iterator over the last day of every period 'p' touched by the range.
func (r Range) Ends(p Period) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for period := range r.Periods(p) {
			if !yield(period.To) {
				return
			}
		}
	}
}

// Months returns the last day of every calendar month touched by [begin, end],
// in chronological order.
//
// The first entry is the end of the month containing begin, the last one the
// end of the month containing end. It returns an empty sequence when end is
// before begin.
func Months(begin, end Date) []Date {
	return PeriodEnds(begin, end, Monthly)
}

// PeriodEnds is like Months for any period.
func PeriodEnds(begin, end Date, p Period) []Date {
	if end.Before(begin) {
		return []Date{}
	}
	return slices.Collect(Range{From: begin, To: end}.Ends(p))
}
