package kopilka

import "fmt"

// Validate checks the whole ledger for structural problems: duplicate ids,
// transactions on unknown items, transfers looping on one item. Dangling
// references are tolerated by the valuation engine but still worth
// surfacing to the user.
func (l *Ledger) Validate() []error {
	var errs []error

	seen := make(map[string]struct{}, len(l.transactions))
	for _, tx := range l.transactions {
		if tx.ID != "" {
			if _, dup := seen[tx.ID]; dup {
				errs = append(errs, fmt.Errorf("duplicate transaction id %s", tx.ID))
			}
			seen[tx.ID] = struct{}{}
		}

		if err := tx.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("transaction %s: %w", tx.ID, err))
		}
		if tx.Deleted {
			continue
		}

		if _, ok := l.items[tx.ItemID]; !ok && tx.ItemID != "" {
			errs = append(errs, fmt.Errorf("transaction %s on %s references unknown item %s", tx.ID, tx.Date, tx.ItemID))
		}
		if tx.Direction == Transfer {
			if _, ok := l.items[tx.CounterpartyID]; !ok && tx.CounterpartyID != "" {
				errs = append(errs, fmt.Errorf("transfer %s on %s references unknown counterparty %s", tx.ID, tx.Date, tx.CounterpartyID))
			}
			if tx.CounterpartyID == tx.ItemID {
				errs = append(errs, fmt.Errorf("transfer %s on %s moves money from item %s to itself", tx.ID, tx.Date, tx.ItemID))
			}
		}
	}

	for _, it := range l.items {
		if it.Currency == "" {
			errs = append(errs, fmt.Errorf("item %q has no currency", it.Name))
		}
		if !it.ClosedAt.IsZero() && it.ClosedAt.Before(it.EffectiveStart()) {
			errs = append(errs, fmt.Errorf("item %q closes before it starts", it.Name))
		}
	}

	return errs
}
