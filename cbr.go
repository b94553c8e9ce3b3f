package kopilka

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "Date": "2024-01-05T11:30:00+03:00",
	    "Valute": {
	        "USD": {
	            "ID": "R01235",
	            "NumCode": "840",
	            "CharCode": "USD",
	            "Nominal": 1,
	            "Value": 90.9239,
	            "Previous": 89.6883
	        },
	        ...
	    }
	}
*/

// cbrDailyURL returns the address of the Bank of Russia daily quote archive
// for a given day.
func cbrDailyURL(on Date) string {
	return fmt.Sprintf("https://www.cbr-xml-daily.ru/archive/%04d/%02d/%02d/daily_json.js",
		on.Year(), on.Month(), on.Day())
}

// cbrRate extracts one currency quote from a decoded daily archive document.
// Quotes are published per nominal (10 CZK, 100 JPY), so the value is
// divided back to a single unit.
func cbrRate(jobj any, currency string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(fmt.Sprintf("$.Valute.%s.Value", currency), jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %w", currency, err)
	}
	value, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: value is not a float: %v", currency, jval)
	}
	jnom, err := jsonpath.Get(fmt.Sprintf("$.Valute.%s.Nominal", currency), jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %w", currency, err)
	}
	nominal, ok := jnom.(float64)
	if !ok || nominal == 0 {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: invalid nominal %v", currency, jnom)
	}
	return decimal.NewFromFloat(value).Div(decimal.NewFromFloat(nominal)), nil
}

// FetchDailyRates retrieves the quotes published by the Bank of Russia for
// one day and returns the rate per currency. Currencies missing from the
// archive are skipped with a log line.
func FetchDailyRates(client *http.Client, on Date, currencies []string) (map[string]decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, cbrDailyURL(on), &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving quotes for %s: %w", on, err)
	}

	rates := make(map[string]decimal.Decimal)
	for _, currency := range currencies {
		if currency == ReportingCurrency {
			continue
		}
		rate, err := cbrRate(jobj, currency)
		if err != nil {
			log.Printf("skipping %s on %s: %v", currency, on, err)
			continue
		}
		rates[currency] = rate
	}
	return rates, nil
}

// FillGaps fetches quotes for every (date, currency) pair the table is
// missing over the range and stores them. Days the archive does not cover
// (weekends, bank holidays) are skipped. It returns the number of rates
// added.
func (t *RateTable) FillGaps(client *http.Client, rng Range, currencies []string, today Date) (int, error) {
	gaps := t.Gaps(rng, currencies, today)
	if len(gaps) == 0 {
		return 0, nil
	}

	// group by day so each archive document is fetched once
	byDay := make(map[Date][]string)
	var days []Date
	for _, gap := range gaps {
		if _, seen := byDay[gap.On]; !seen {
			days = append(days, gap.On)
		}
		byDay[gap.On] = append(byDay[gap.On], gap.Currency)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	added := 0
	for _, on := range days {
		rates, err := FetchDailyRates(client, on, byDay[on])
		if err != nil {
			// no publication that day
			log.Printf("no quotes for %s: %v", on, err)
			continue
		}
		for currency, rate := range rates {
			t.Add(on, currency, rate)
			added++
		}
	}
	return added, nil
}
