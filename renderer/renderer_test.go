package renderer

import (
	"strings"
	"testing"

	"github.com/mkraev/kopilka"
)

func TestBreakdownMarkdown(t *testing.T) {
	window := kopilka.NewRange(kopilka.MustDate("2024-03-01"), kopilka.MustDate("2024-03-31"))
	today := kopilka.MustDate("2024-04-02")

	ledger := kopilka.NewLedger()
	wallet := kopilka.NewItem("Wallet", kopilka.Asset, "RUB", 0, kopilka.MustDate("2024-01-01"))
	ledger.AddItems(wallet)
	ledger.Append(
		spend(wallet.ID, "2024-03-05", 700000, "Food"),
		spend(wallet.ID, "2024-03-10", 200000, "Transport"),
		spend(wallet.ID, "2024-03-15", 100000, "Health"),
	)

	report, err := kopilka.NewBreakdownReport(ledger, kopilka.Expense, window, today)
	if err != nil {
		t.Fatalf("NewBreakdownReport() error = %v", err)
	}
	got := BreakdownMarkdown(report)

	for _, want := range []string{"Spending by category", "Food", "Transport", "Health", "70.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("BreakdownMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestBreakdownMarkdownEmptyWindow(t *testing.T) {
	window := kopilka.NewRange(kopilka.MustDate("2024-03-01"), kopilka.MustDate("2024-03-31"))
	today := kopilka.MustDate("2024-04-02")

	report, err := kopilka.NewBreakdownReport(kopilka.NewLedger(), kopilka.Expense, window, today)
	if err != nil {
		t.Fatalf("NewBreakdownReport() error = %v", err)
	}
	got := BreakdownMarkdown(report)
	if !strings.Contains(got, "No realized expense in this window.") {
		t.Errorf("BreakdownMarkdown() = %q, want empty window notice", got)
	}
}

func TestNetWorthMarkdown(t *testing.T) {
	rng := kopilka.NewRange(kopilka.MustDate("2024-01-01"), kopilka.MustDate("2024-01-03"))
	today := kopilka.MustDate("2024-01-03")

	ledger := kopilka.NewLedger()
	wallet := kopilka.NewItem("Wallet", kopilka.Asset, "RUB", 5000000, kopilka.MustDate("2024-01-01"))
	ledger.AddItems(wallet)

	report, err := kopilka.NewNetWorthReport(ledger, kopilka.NewRateTable(), rng, today)
	if err != nil {
		t.Fatalf("NewNetWorthReport() error = %v", err)
	}
	got := NetWorthMarkdown(report)

	for _, want := range []string{"Net Worth", "Wallet", "asset", "realized"} {
		if !strings.Contains(got, want) {
			t.Errorf("NetWorthMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTreeMarkdown(t *testing.T) {
	tree := &kopilka.CategoryTree{Roots: []*kopilka.CategoryNode{
		{ID: "1", Name: "Food", Icon: "🍞", Scope: kopilka.ScopeExpense, Children: []*kopilka.CategoryNode{
			{ID: "2", Name: "Groceries", Scope: kopilka.ScopeExpense},
		}},
	}}
	got := TreeMarkdown(&kopilka.TreeReport{Tree: tree})

	for _, want := range []string{"# Categories", "🍞 Food (expense)", "  - Groceries"} {
		if !strings.Contains(got, want) {
			t.Errorf("TreeMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func spend(itemID, on string, amount int64, category string) kopilka.Transaction {
	return kopilka.NewTransaction(kopilka.MustDate(on), kopilka.Expense, itemID, amount, kopilka.NewCategoryPath(category))
}
