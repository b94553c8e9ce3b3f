package kopilka

import "testing"

func testItem(id, name string, kind ItemKind, initial int64, start string) Item {
	return Item{
		ID:           id,
		Name:         name,
		Kind:         kind,
		Currency:     "RUB",
		InitialValue: initial,
		StartDate:    MustDate(start),
	}
}

func testTx(on string, dir Direction, itemID string, amount int64) Transaction {
	return Transaction{
		ID:        "tx-" + on + "-" + itemID,
		Date:      MustDate(on),
		Direction: dir,
		Type:      Actual,
		ItemID:    itemID,
		Amount:    amount,
	}
}

func TestReplayBalances(t *testing.T) {
	today := MustDate("2024-06-01")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-10"))

	items := []Item{testItem("acc", "Account", Asset, 100000, "2024-01-01")}
	txs := []Transaction{testTx("2024-01-05", Expense, "acc", 5000)}

	balances := ReplayBalances(items, txs, rng, today)

	for on := range NewRange(MustDate("2024-01-01"), MustDate("2024-01-04")).Days() {
		if got, ok := balances.On("acc", on); !ok || got != 100000 {
			t.Errorf("balance on %s = %d, %v, want 100000", on, got, ok)
		}
	}
	for on := range NewRange(MustDate("2024-01-05"), MustDate("2024-01-10")).Days() {
		if got, ok := balances.On("acc", on); !ok || got != 95000 {
			t.Errorf("balance on %s = %d, %v, want 95000", on, got, ok)
		}
	}
}

func TestReplayAppliesDeltasBeforeRange(t *testing.T) {
	today := MustDate("2024-06-01")
	rng := NewRange(MustDate("2024-03-01"), MustDate("2024-03-02"))

	items := []Item{testItem("acc", "Account", Asset, 100000, "2024-01-01")}
	txs := []Transaction{
		testTx("2024-01-15", Income, "acc", 30000),
		testTx("2024-02-10", Expense, "acc", 10000),
	}

	balances := ReplayBalances(items, txs, rng, today)

	if got, ok := balances.On("acc", MustDate("2024-03-01")); !ok || got != 120000 {
		t.Errorf("balance = %d, %v, want 120000 (history before the range applied)", got, ok)
	}
	if _, ok := balances.On("acc", MustDate("2024-02-28")); ok {
		t.Error("balances should only be recorded inside the range")
	}
}

func TestReplayTransferLegs(t *testing.T) {
	today := MustDate("2024-06-01")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-02"))

	items := []Item{
		testItem("bank", "Bank", Asset, 50000, "2024-01-01"),
		testItem("cash", "Cash", Asset, 1000, "2024-01-01"),
		testItem("loan", "Loan", Liability, 200000, "2024-01-01"),
	}

	t.Run("asset to asset", func(t *testing.T) {
		tx := testTx("2024-01-02", Transfer, "bank", 10000)
		tx.CounterpartyID = "cash"
		balances := ReplayBalances(items, []Transaction{tx}, rng, today)

		if got, _ := balances.On("bank", MustDate("2024-01-02")); got != 40000 {
			t.Errorf("bank = %d, want 40000", got)
		}
		if got, _ := balances.On("cash", MustDate("2024-01-02")); got != 11000 {
			t.Errorf("cash = %d, want 11000", got)
		}
	})

	t.Run("paying down a liability", func(t *testing.T) {
		tx := testTx("2024-01-02", Transfer, "bank", 10000)
		tx.CounterpartyID = "loan"
		balances := ReplayBalances(items, []Transaction{tx}, rng, today)

		if got, _ := balances.On("bank", MustDate("2024-01-02")); got != 40000 {
			t.Errorf("bank = %d, want 40000", got)
		}
		if got, _ := balances.On("loan", MustDate("2024-01-02")); got != 190000 {
			t.Errorf("loan = %d, want 190000: a transfer in pays debt down", got)
		}
	})

	t.Run("borrowing from a liability", func(t *testing.T) {
		tx := testTx("2024-01-02", Transfer, "loan", 10000)
		tx.CounterpartyID = "bank"
		balances := ReplayBalances(items, []Transaction{tx}, rng, today)

		if got, _ := balances.On("loan", MustDate("2024-01-02")); got != 210000 {
			t.Errorf("loan = %d, want 210000: a transfer out grows debt", got)
		}
		if got, _ := balances.On("bank", MustDate("2024-01-02")); got != 60000 {
			t.Errorf("bank = %d, want 60000", got)
		}
	})

	t.Run("cross currency legs carry their own amounts", func(t *testing.T) {
		tx := testTx("2024-01-02", Transfer, "bank", 10000)
		tx.CounterpartyID = "cash"
		tx.CounterpartyAmount = 9900
		balances := ReplayBalances(items, []Transaction{tx}, rng, today)

		if got, _ := balances.On("cash", MustDate("2024-01-02")); got != 10900 {
			t.Errorf("cash = %d, want 10900", got)
		}
	})
}

func TestReplayPlans(t *testing.T) {
	today := MustDate("2024-01-05")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-10"))

	items := []Item{testItem("acc", "Account", Asset, 100000, "2024-01-01")}

	pending := testTx("2024-01-03", Expense, "acc", 5000)
	pending.Type = Planned

	realized := testTx("2024-01-04", Expense, "acc", 2000)
	realized.Type = Planned
	realized.Status = StatusRealized

	future := testTx("2024-01-08", Expense, "acc", 10000)
	future.Type = Planned

	balances := ReplayBalances(items, []Transaction{pending, realized, future}, rng, today)

	// the pending past plan is skipped, the realized one applies
	if got, _ := balances.On("acc", MustDate("2024-01-05")); got != 98000 {
		t.Errorf("balance on today = %d, want 98000", got)
	}
	// the future plan applies regardless of status
	if got, _ := balances.On("acc", MustDate("2024-01-08")); got != 88000 {
		t.Errorf("balance on future day = %d, want 88000", got)
	}
}

func TestReplayEdgeCases(t *testing.T) {
	today := MustDate("2024-06-01")
	rng := NewRange(MustDate("2024-01-01"), MustDate("2024-01-05"))

	t.Run("dangling reference is skipped", func(t *testing.T) {
		items := []Item{testItem("acc", "Account", Asset, 1000, "2024-01-01")}
		txs := []Transaction{
			testTx("2024-01-02", Expense, "ghost", 500),
			testTx("2024-01-02", Expense, "acc", 100),
		}
		balances := ReplayBalances(items, txs, rng, today)
		if got, _ := balances.On("acc", MustDate("2024-01-02")); got != 900 {
			t.Errorf("balance = %d, want 900", got)
		}
		if _, ok := balances["ghost"]; ok {
			t.Error("unknown item must not appear in the result")
		}
	})

	t.Run("deleted transaction is skipped", func(t *testing.T) {
		items := []Item{testItem("acc", "Account", Asset, 1000, "2024-01-01")}
		tx := testTx("2024-01-02", Expense, "acc", 500)
		tx.Deleted = true
		balances := ReplayBalances(items, []Transaction{tx}, rng, today)
		if got, _ := balances.On("acc", MustDate("2024-01-02")); got != 1000 {
			t.Errorf("balance = %d, want 1000", got)
		}
	})

	t.Run("item starting after the range is absent", func(t *testing.T) {
		items := []Item{testItem("late", "Late", Asset, 1000, "2024-02-01")}
		balances := ReplayBalances(items, nil, rng, today)
		if _, ok := balances["late"]; ok {
			t.Error("item starting after the range must not appear")
		}
	})

	t.Run("item starting mid-range has no earlier days", func(t *testing.T) {
		items := []Item{testItem("mid", "Mid", Asset, 1000, "2024-01-03")}
		balances := ReplayBalances(items, nil, rng, today)
		if _, ok := balances.On("mid", MustDate("2024-01-02")); ok {
			t.Error("item must not have a balance before its start")
		}
		if got, ok := balances.On("mid", MustDate("2024-01-03")); !ok || got != 1000 {
			t.Errorf("balance on start = %d, %v, want 1000", got, ok)
		}
	})
}
