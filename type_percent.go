package kopilka

import "fmt"

// Percent is a percentage value (5.0 means 5%).
type Percent float64

// Equal compares two percentages with a small tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// changePercent computes the percentage change from baseline to current,
// or nil when the baseline is zero and the change is undefined.
func changePercent(current, baseline int64) *Percent {
	if baseline == 0 {
		return nil
	}
	abs := baseline
	if abs < 0 {
		abs = -abs
	}
	p := Percent(float64(current-baseline) / float64(abs) * 100)
	return &p
}
