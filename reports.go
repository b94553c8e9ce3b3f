package kopilka

import (
	"fmt"
	"slices"
)

// ItemLine is one item's valuation inside a net worth report.
type ItemLine struct {
	Name  string
	Kind  ItemKind
	Value Money
	Known bool
}

// NetWorthReport provides the full net worth picture over a range: the
// daily series, the per-item values at the end of the range, and the
// change since the range started.
type NetWorthReport struct {
	Range  Range
	Today  Date
	Series *NetWorthSeries
	Items  []ItemLine
	Latest DailyValue
	Change *Percent
}

// NewNetWorthReport computes the net worth of the ledger over a range of
// days, converted to the reporting currency with the given rate table.
func NewNetWorthReport(ledger *Ledger, rates *RateTable, rng Range, today Date) (*NetWorthReport, error) {
	items := ledger.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("ledger has no items to value")
	}

	balances := ReplayBalances(items, ledger.All(), rng, today)
	series := AggregateNetWorth(balances, items, rates, rng, today)

	report := &NetWorthReport{
		Range:  rng,
		Today:  today,
		Series: series,
		Change: series.ChangeSince(rng.From),
	}

	if latest, ok := series.On(rng.To); ok {
		report.Latest = latest
	}

	for _, it := range items {
		line := ItemLine{Name: it.Name, Kind: it.Kind}
		if units, ok := balances.On(it.ID, rng.To); ok {
			value := M(units, it.Currency)
			if rate, known := rates.Rate(rng.To, it.Currency, today); known {
				line.Value = value.Convert(rate, ReportingCurrency)
				line.Known = true
			}
		}
		report.Items = append(report.Items, line)
	}
	return report, nil
}

// BreakdownReport carries a category breakdown for one direction and
// window, ready for rendering.
type BreakdownReport struct {
	Window    Range
	Today     Date
	Direction Direction
	Breakdown Breakdown
}

// Display thresholds for a breakdown: at most maxVisibleBuckets named
// buckets, and the Other bucket never above maxOtherShare of the total.
const (
	maxVisibleBuckets = 6
	maxOtherShare     = 0.3
)

// NewBreakdownReport rolls realized transactions of one direction up by
// top category over a window.
func NewBreakdownReport(ledger *Ledger, dir Direction, window Range, today Date) (*BreakdownReport, error) {
	if dir == Transfer {
		return nil, fmt.Errorf("transfers have no category breakdown")
	}
	var txs []Transaction
	for _, tx := range ledger.Transactions(ByDirection(dir)) {
		txs = append(txs, tx)
	}
	return &BreakdownReport{
		Window:    window,
		Today:     today,
		Direction: dir,
		Breakdown: *RollupCategories(txs, dir, window, maxVisibleBuckets, maxOtherShare),
	}, nil
}

// TreeReport carries the category tree after a sync with the ledger's
// transaction history.
type TreeReport struct {
	Tree *CategoryTree
}

// NewTreeReport merges the categories seen in the ledger into the stored
// tree and returns the result.
func NewTreeReport(repo TreeRepository, ledger *Ledger) (*TreeReport, error) {
	tree, err := SyncTree(repo, ledger.All())
	if err != nil {
		return nil, fmt.Errorf("cannot sync category tree: %w", err)
	}
	return &TreeReport{Tree: tree}, nil
}

// Nodes walks the tree depth first, yielding each node with its depth.
func (r *TreeReport) Nodes(visit func(node *CategoryNode, depth int)) {
	var walk func(nodes []*CategoryNode, depth int)
	walk = func(nodes []*CategoryNode, depth int) {
		for _, n := range nodes {
			visit(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(r.Tree.Roots, 0)
}

// MissingRates lists the rate gaps that would leave days of the range
// unknown, sorted for display.
func MissingRates(ledger *Ledger, rates *RateTable, rng Range, today Date) []RateGap {
	currencies := slices.Collect(ledger.ForeignCurrencies())
	return rates.Gaps(rng, currencies, today)
}
