// Package renderer turns reports into markdown documents.
package renderer

import "github.com/mkraev/kopilka"

// delta formats an optional percentage change, "n/a" when there is no
// baseline to compare against.
func delta(p *kopilka.Percent) string {
	if p == nil {
		return "n/a"
	}
	return p.SignedString()
}
