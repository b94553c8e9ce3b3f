package kopilka

// Balances holds the reconstructed running balance of every item on every
// day of a replayed range: item id -> date -> minor units in the item's own
// currency. A missing date means the item did not exist yet on that day,
// which is different from a zero balance.
type Balances map[string]map[Date]int64

// On returns the balance of an item on a day. ok is false when the item is
// unknown or did not exist yet on that day.
func (b Balances) On(itemID string, on Date) (int64, bool) {
	days, ok := b[itemID]
	if !ok {
		return 0, false
	}
	units, ok := days[on]
	return units, ok
}

// ReplayBalances reconstructs the day-by-day balance of every item over
// [rng.From, rng.To] from its opening value and its transaction history.
//
// The walk always begins at the item's own start date so that deltas before
// rng.From are still applied; balances are only recorded from
// max(startDate, rng.From) onward. On days at or before today only realized
// transactions apply; transactions dated after today are applied regardless
// of status, as a projection.
//
// Each item's replay is independent of every other item's: transfers couple
// items only through the two opposite-signed deltas they post. A transaction
// referencing an item outside the provided set is skipped; that is a data
// integrity concern for the caller, not the engine.
func ReplayBalances(items []Item, transactions []Transaction, rng Range, today Date) Balances {
	index := make(map[string]Item, len(items))
	for _, it := range items {
		index[it.ID] = it
	}

	// Per item, the summed signed delta of each day.
	deltas := make(map[string]map[Date]int64, len(items))
	post := func(itemID string, on Date, units int64) {
		if _, ok := index[itemID]; !ok {
			return // dangling reference, deliberately a no-op
		}
		day := deltas[itemID]
		if day == nil {
			day = make(map[Date]int64)
			deltas[itemID] = day
		}
		day[on] += units
	}

	for _, tx := range transactions {
		if tx.Deleted {
			continue
		}
		if !tx.Date.After(today) && !tx.Realized() {
			continue // unrealized plans do not touch history
		}
		switch tx.Direction {
		case Income:
			post(tx.ItemID, tx.Date, +tx.Amount)
		case Expense:
			post(tx.ItemID, tx.Date, -tx.Amount)
		case Transfer:
			post(tx.ItemID, tx.Date, transferDelta(index[tx.ItemID], true, tx.Amount))
			post(tx.CounterpartyID, tx.Date, transferDelta(index[tx.CounterpartyID], false, tx.counterpartyLeg()))
		}
	}

	balances := make(Balances, len(items))
	for _, it := range items {
		start := it.EffectiveStart()
		if start.After(rng.To) {
			continue // item does not exist within the range
		}
		days := make(map[Date]int64, rng.Len())
		balance := it.InitialValue
		for on := start; !on.After(rng.To); on = on.Add(1) {
			balance += deltas[it.ID][on]
			if !on.Before(rng.From) {
				days[on] = balance
			}
		}
		balances[it.ID] = days
	}
	return balances
}

// transferDelta is the signed delta a transfer posts to one of its legs.
// Funds leave the primary item and arrive at the counterparty; for a
// liability the convention flips symmetrically, a transfer in pays debt
// down and a transfer out grows it.
func transferDelta(it Item, primaryLeg bool, amount int64) int64 {
	out := -amount
	in := +amount
	if it.Kind == Liability {
		out, in = in, out
	}
	if primaryLeg {
		return out
	}
	return in
}
