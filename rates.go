package kopilka

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// RateTable is a sparse mapping from (calendar date, currency code) to the
// value of 1 unit of that currency in the reporting currency. The table is
// populated externally and may have gaps for any given date; a miss for a
// past date is reported as such, never fabricated.
type RateTable struct {
	// per currency, entries sorted by date
	entries map[string][]rateEntry
}

type rateEntry struct {
	on   Date
	rate decimal.Decimal
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{entries: make(map[string][]rateEntry)}
}

// Add records the rate for 1 unit of currency on a date. Adding a second
// rate for the same (date, currency) replaces the first: last write wins.
func (t *RateTable) Add(on Date, currency string, rate decimal.Decimal) {
	series := t.entries[currency]
	i := sort.Search(len(series), func(i int) bool { return !series[i].on.Before(on) })
	if i < len(series) && series[i].on == on {
		series[i].rate = rate
		return
	}
	series = append(series, rateEntry{})
	copy(series[i+1:], series[i:])
	series[i] = rateEntry{on: on, rate: rate}
	t.entries[currency] = series
}

// Rate resolves the rate for a currency on a date. For dates at or before
// today only an exact entry counts; later dates fall back to the latest
// known rate at or before today. The reporting currency is always 1.
func (t *RateTable) Rate(on Date, currency string, today Date) (decimal.Decimal, bool) {
	if currency == ReportingCurrency {
		return decimal.NewFromInt(1), true
	}
	if !on.After(today) {
		return t.exact(on, currency)
	}
	return t.latestOnOrBefore(today, currency)
}

// exact is phase one of the lookup: the entry for this very day, or a miss.
func (t *RateTable) exact(on Date, currency string) (decimal.Decimal, bool) {
	series := t.entries[currency]
	i := sort.Search(len(series), func(i int) bool { return !series[i].on.Before(on) })
	if i < len(series) && series[i].on == on {
		return series[i].rate, true
	}
	return decimal.Decimal{}, false
}

// latestOnOrBefore is phase two: the most recent known rate at or before
// the given day, or a miss when the currency has no history at all yet.
func (t *RateTable) latestOnOrBefore(on Date, currency string) (decimal.Decimal, bool) {
	series := t.entries[currency]
	i := sort.Search(len(series), func(i int) bool { return series[i].on.After(on) })
	if i == 0 {
		return decimal.Decimal{}, false
	}
	return series[i-1].rate, true
}

// Currencies iterates over currencies with at least one entry, sorted.
func (t *RateTable) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		currencies := slices.Collect(maps.Keys(t.entries))
		slices.Sort(currencies)
		for _, currency := range currencies {
			if !yield(currency) {
				return
			}
		}
	}
}

// Len returns the total number of entries in the table.
func (t *RateTable) Len() int {
	n := 0
	for _, series := range t.entries {
		n += len(series)
	}
	return n
}

// RateGap identifies a (date, currency) pair a valuation needs but the
// table does not hold.
type RateGap struct {
	On       Date
	Currency string
}

// Gaps lists every (date, currency) the table is missing to value the given
// range up to today. Days after today forward-fill and so only need some
// past entry to exist; such currencies with no history at all are reported
// as a single gap at today.
func (t *RateTable) Gaps(rng Range, currencies []string, today Date) []RateGap {
	var gaps []RateGap
	for _, currency := range currencies {
		if currency == ReportingCurrency {
			continue
		}
		needsFill := false
		missedToday := false
		for on := range rng.Days() {
			if on.After(today) {
				needsFill = true
				break
			}
			if _, ok := t.exact(on, currency); !ok {
				gaps = append(gaps, RateGap{On: on, Currency: currency})
				missedToday = missedToday || on == today
			}
		}
		if needsFill && !missedToday {
			if _, ok := t.latestOnOrBefore(today, currency); !ok {
				gaps = append(gaps, RateGap{On: today, Currency: currency})
			}
		}
	}
	return gaps
}
