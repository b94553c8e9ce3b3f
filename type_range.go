package kopilka

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of calendar dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true when the date is inside the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Len returns the number of days in the range.
func (r Range) Len() int { return r.From.DaysUntil(r.To) + 1 }

// Previous returns the immediately preceding range of equal length.
func (r Range) Previous() Range {
	n := r.Len()
	return Range{From: r.From.Add(-n), To: r.From.Add(-1)}
}

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential range of the given
// period that contains at least one day of r.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			current = periodRange.To.Add(1)
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
