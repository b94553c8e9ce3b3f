package kopilka

import "testing"

func TestAggregateNetWorthSigns(t *testing.T) {
	today := MustDate("2024-01-03")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-03"))

	items := []Item{
		testItem("bank", "Bank", Asset, 300000, "2024-01-01"),
		testItem("loan", "Loan", Liability, 100000, "2024-01-01"),
	}
	balances := ReplayBalances(items, nil, rng, today)
	series := AggregateNetWorth(balances, items, NewRateTable(), rng, today)

	for _, dv := range series.Days() {
		if !dv.Known {
			t.Fatalf("day %s unknown, want known", dv.Date)
		}
		if dv.Value.Units() != 200000 {
			t.Errorf("net worth on %s = %d, want 200000", dv.Date, dv.Value.Units())
		}
	}
}

func TestAggregateNetWorthForeignCurrency(t *testing.T) {
	today := MustDate("2024-01-03")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-02"))

	usd := testItem("usd", "Dollars", Asset, 10000, "2024-01-01") // $100.00
	usd.Currency = "USD"
	items := []Item{
		testItem("bank", "Bank", Asset, 50000, "2024-01-01"),
		usd,
	}
	balances := ReplayBalances(items, nil, rng, today)

	rates := NewRateTable()
	rates.Add(MustDate("2024-01-01"), "USD", rate("90"))

	series := AggregateNetWorth(balances, items, rates, rng, today)

	day1, _ := series.On(MustDate("2024-01-01"))
	if !day1.Known || day1.Value.Units() != 50000+900000 {
		t.Errorf("day 1 = %+v, want known 950000", day1)
	}

	// no USD quote on day 2: the whole day is unknown, not a partial sum
	day2, _ := series.On(MustDate("2024-01-02"))
	if day2.Known {
		t.Errorf("day 2 = %+v, want unknown", day2)
	}
}

func TestNetWorthSplitSharesToday(t *testing.T) {
	today := MustDate("2024-01-05")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-10"))

	items := []Item{testItem("acc", "Account", Asset, 1000, "2024-01-01")}
	balances := ReplayBalances(items, nil, rng, today)
	series := AggregateNetWorth(balances, items, NewRateTable(), rng, today)

	realized := series.Realized()
	projected := series.Projected()

	if len(realized) != 5 {
		t.Errorf("realized has %d days, want 5", len(realized))
	}
	if len(projected) != 6 {
		t.Errorf("projected has %d days, want 6", len(projected))
	}
	if realized[len(realized)-1].Date != today || projected[0].Date != today {
		t.Error("both segments must contain the point at today")
	}
}

func TestNetWorthChangeSince(t *testing.T) {
	today := MustDate("2024-01-10")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-10"))

	items := []Item{testItem("acc", "Account", Asset, 100000, "2024-01-01")}
	txs := []Transaction{testTx("2024-01-06", Income, "acc", 10000)}
	balances := ReplayBalances(items, txs, rng, today)
	series := AggregateNetWorth(balances, items, NewRateTable(), rng, today)

	got := series.ChangeSince(MustDate("2024-01-01"))
	if got == nil || !got.Equal(Percent(10)) {
		t.Errorf("ChangeSince = %v, want 10%%", got)
	}

	if got := series.ChangeSince(MustDate("2023-12-01")); got != nil {
		t.Errorf("ChangeSince outside the series = %v, want nil", got)
	}

	// zero baseline has no defined percent change
	zero := []Item{testItem("z", "Zero", Asset, 0, "2024-01-01")}
	zb := ReplayBalances(zero, nil, rng, today)
	zs := AggregateNetWorth(zb, zero, NewRateTable(), rng, today)
	if got := zs.ChangeSince(MustDate("2024-01-01")); got != nil {
		t.Errorf("ChangeSince with zero baseline = %v, want nil", got)
	}
}

func TestNetWorthArchivedItem(t *testing.T) {
	today := MustDate("2024-01-10")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-04"))

	acc := testItem("acc", "Account", Asset, 1000, "2024-01-01")
	acc.ArchivedAt = MustDate("2024-01-03")
	items := []Item{acc}

	balances := ReplayBalances(items, nil, rng, today)
	series := AggregateNetWorth(balances, items, NewRateTable(), rng, today)

	before, _ := series.On(MustDate("2024-01-02"))
	if before.Value.Units() != 1000 {
		t.Errorf("before archiving = %d, want 1000", before.Value.Units())
	}
	after, _ := series.On(MustDate("2024-01-03"))
	if after.Value.Units() != 0 {
		t.Errorf("from the archive day on = %d, want 0", after.Value.Units())
	}
}
