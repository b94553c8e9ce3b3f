package kopilka

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency every aggregate is expressed in.
const ReportingCurrency = "RUB"

// Money represents a monetary value as an integer number of minor units
// (cents, kopecks) of a currency. Keeping amounts integral avoids any
// floating-point drift in balances.
type Money struct {
	units int64 // minor units
	cur   string
}

// M returns a Money of the given minor units in a currency.
func M(units int64, currency string) Money { return Money{units: units, cur: currency} }

// RUB returns a Money of the given minor units in the reporting currency.
func RUB(units int64) Money { return Money{units: units, cur: ReportingCurrency} }

// Units returns the amount in minor units.
func (m Money) Units() int64 { return m.units }

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

func (m Money) IsZero() bool     { return m.units == 0 }
func (m Money) IsPositive() bool { return m.units > 0 }
func (m Money) IsNegative() bool { return m.units < 0 }

func (m Money) Equal(n Money) bool { return m.units == n.units && m.cur == n.cur }

func (m Money) Neg() Money { return Money{units: -m.units, cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{units: m.units + n.units, cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{units: m.units - n.units, cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// fraction returns the number of minor unit digits for a currency code,
// defaulting to 2 for codes go-money does not know.
func fraction(currency string) int32 {
	if c := money.GetCurrency(currency); c != nil {
		return int32(c.Fraction)
	}
	return 2
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.units, -fraction(m.cur))
}

// Convert returns the amount expressed in the target currency at the given
// rate, where rate is the value of 1 major unit of m's currency in major
// units of the target. The result is rounded half-up to the target's minor
// unit.
func (m Money) Convert(rate decimal.Decimal, target string) Money {
	units := m.Decimal().Mul(rate).Shift(fraction(target)).Round(0)
	return Money{units: units.IntPart(), cur: target}
}

// ParseAmount parses a user-written major unit amount ("1200.50") into the
// minor units of a currency.
func ParseAmount(s, currency string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Shift(fraction(currency)).Round(0).IntPart(), nil
}

// String renders the amount with the currency's own formatting rules.
func (m Money) String() string {
	return money.New(m.units, m.cur).Display()
}

// SignedString renders the amount with an explicit sign, or "-" for zero.
func (m Money) SignedString() string {
	if m.units == 0 {
		return "-"
	}
	if m.units > 0 {
		return "+" + m.String()
	}
	return m.String()
}
