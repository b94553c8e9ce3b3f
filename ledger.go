package kopilka

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger holds the items and transactions of one user.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	items        map[string]Item
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		items:        make(map[string]Item),
		transactions: make([]Transaction, 0),
	}
}

// Item returns the item with this id, or false if unknown.
func (l *Ledger) Item(id string) (Item, bool) {
	it, ok := l.items[id]
	return it, ok
}

// AddItems registers items, replacing any previous item with the same id.
func (l *Ledger) AddItems(items ...Item) {
	for _, it := range items {
		l.items[it.ID] = it
	}
}

// Append appends transactions and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Items returns all items sorted by name then id.
func (l *Ledger) Items() []Item {
	items := slices.Collect(maps.Values(l.items))
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// FindItem resolves a user-given reference to an item, by id first, then
// by case-insensitive name.
func (l *Ledger) FindItem(ref string) (Item, bool) {
	if it, ok := l.items[ref]; ok {
		return it, true
	}
	key := nameKey(ref)
	for _, it := range l.Items() {
		if nameKey(it.Name) == key {
			return it, true
		}
	}
	return Item{}, false
}

// Realize marks a planned transaction as realized.
func (l *Ledger) Realize(txID string) error {
	for i := range l.transactions {
		if l.transactions[i].ID != txID {
			continue
		}
		if l.transactions[i].Type != Planned {
			return fmt.Errorf("transaction %s is not a plan", txID)
		}
		l.transactions[i].Status = StatusRealized
		return nil
	}
	return fmt.Errorf("no transaction with id %s", txID)
}

// Delete soft-deletes a transaction, keeping the line in the file.
func (l *Ledger) Delete(txID string) error {
	for i := range l.transactions {
		if l.transactions[i].ID == txID {
			l.transactions[i].Deleted = true
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %s", txID)
}

// Transactions returns an iterator over non-deleted transactions in
// chronological order. With no filters every transaction is yielded;
// otherwise a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if tx.Deleted {
				continue
			}
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns the non-deleted transactions as a slice.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.Transactions() {
		out = append(out, tx)
	}
	return out
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Currencies iterates over all currencies items are denominated in,
// in sorted order.
func (l *Ledger) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, it := range l.items {
			visited[it.Currency] = struct{}{}
		}
		currencies := slices.Collect(maps.Keys(visited))
		slices.Sort(currencies)
		for _, currency := range currencies {
			if !yield(currency) {
				return
			}
		}
	}
}

// ForeignCurrencies iterates over item currencies other than the reporting one.
func (l *Ledger) ForeignCurrencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		for currency := range l.Currencies() {
			if currency == ReportingCurrency {
				continue
			}
			if !yield(currency) {
				return
			}
		}
	}
}
