package kopilka

// DailyValue is one point of a net-worth series. Known is false when some
// active item's rate was missing for that day: the total is unknown, not
// zero, and must never be displayed as a number.
type DailyValue struct {
	Date  Date
	Value Money
	Known bool
}

// NetWorthSeries is the day-by-day total value of a set of items in the
// reporting currency, split at today into a realized segment and a
// projected one.
type NetWorthSeries struct {
	days  []DailyValue
	today Date
}

// AggregateNetWorth converts every item's daily balance to the reporting
// currency and sums them, assets positive, liabilities negative. Archived
// and closed items stop counting from the day the mark was set; items count
// only from their own start date. If any single item's rate is missing on a
// day the whole day is unknown rather than partially summed, so a reported
// net worth is never silently understated.
func AggregateNetWorth(balances Balances, items []Item, rates *RateTable, rng Range, today Date) *NetWorthSeries {
	series := &NetWorthSeries{today: today, days: make([]DailyValue, 0, rng.Len())}
	for on := range rng.Days() {
		total := int64(0)
		known := true
		for _, it := range items {
			if it.EffectiveStart().After(on) || !it.ActiveOn(on) {
				continue
			}
			units, ok := balances.On(it.ID, on)
			if !ok {
				continue
			}
			value := int64(0)
			if it.Currency == ReportingCurrency {
				value = units
			} else {
				rate, ok := rates.Rate(on, it.Currency, today)
				if !ok {
					known = false
					break
				}
				value = M(units, it.Currency).Convert(rate, ReportingCurrency).Units()
			}
			total += it.Sign() * value
		}
		if !known {
			series.days = append(series.days, DailyValue{Date: on, Known: false})
			continue
		}
		series.days = append(series.days, DailyValue{Date: on, Value: RUB(total), Known: true})
	}
	return series
}

// Days returns the full series, realized and projected.
func (s *NetWorthSeries) Days() []DailyValue { return s.days }

// Realized returns the segment built from realized transactions only:
// every day at or before today.
func (s *NetWorthSeries) Realized() []DailyValue {
	return s.segment(func(d Date) bool { return !d.After(s.today) })
}

// Projected returns the segment built by continuing from the last realized
// balances and applying planned transactions. It includes the point at
// today so the two segments join without a gap on a chart.
func (s *NetWorthSeries) Projected() []DailyValue {
	return s.segment(func(d Date) bool { return !d.Before(s.today) })
}

func (s *NetWorthSeries) segment(keep func(Date) bool) []DailyValue {
	var out []DailyValue
	for _, dv := range s.days {
		if keep(dv.Date) {
			out = append(out, dv)
		}
	}
	return out
}

// On returns the value of the series on a day. found is false when the day
// is outside the series range.
func (s *NetWorthSeries) On(on Date) (value DailyValue, found bool) {
	for _, dv := range s.days {
		if dv.Date == on {
			return dv, true
		}
	}
	return DailyValue{}, false
}

// ChangeSince returns the percentage change of the value at today against
// the value on the given period-start day. The change is undefined (nil)
// when either day is missing or unknown, or the start value is zero.
func (s *NetWorthSeries) ChangeSince(periodStart Date) *Percent {
	start, ok := s.On(periodStart)
	if !ok || !start.Known {
		return nil
	}
	current, ok := s.On(s.today)
	if !ok || !current.Known {
		return nil
	}
	return changePercent(current.Value.Units(), start.Value.Units())
}
