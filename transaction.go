package kopilka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Direction classifies a transaction as income, expense or a transfer
// between two items.
type Direction int

const (
	Income Direction = iota
	Expense
	Transfer
)

func (d Direction) String() string {
	switch d {
	case Income:
		return "income"
	case Expense:
		return "expense"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	case "transfer":
		return Transfer, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q", s)
	}
}

func (d Direction) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TxType distinguishes actual transactions from planned (future) ones.
type TxType int

const (
	Actual TxType = iota
	Planned
)

func (t TxType) String() string {
	switch t {
	case Actual:
		return "actual"
	case Planned:
		return "planned"
	default:
		return "unknown"
	}
}

// ParseTxType parses a transaction type name.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "actual", "":
		return Actual, nil
	case "planned":
		return Planned, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

func (t TxType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TxType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTxType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TxStatus tracks the lifecycle of a planned transaction. StatusRealized
// marks a planned transaction as having actually occurred.
type TxStatus int

const (
	StatusPending TxStatus = iota
	StatusRealized
)

func (s TxStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRealized:
		return "realized"
	default:
		return "unknown"
	}
}

// ParseTxStatus parses a transaction status name.
func ParseTxStatus(s string) (TxStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "":
		return StatusPending, nil
	case "realized":
		return StatusRealized, nil
	default:
		return 0, fmt.Errorf("unknown transaction status: %q", s)
	}
}

func (s TxStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *TxStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTxStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Transaction is a single economic event: an income, an expense, or a
// transfer between two items. Amounts are non-negative minor units in the
// primary item's currency; for a cross-currency transfer
// CounterpartyAmount carries the face amount of the other leg.
type Transaction struct {
	ID             string       `json:"id"`
	Date           Date         `json:"date"`
	Direction      Direction    `json:"direction"`
	Type           TxType       `json:"type"`
	Status         TxStatus     `json:"status,omitempty"`
	ItemID         string       `json:"itemId"`
	CounterpartyID string       `json:"counterpartyId,omitempty"`
	Amount         int64        `json:"amount"`
	// CounterpartyAmount is zero when both legs share the face amount.
	CounterpartyAmount int64        `json:"counterpartyAmount,omitempty"`
	Category           CategoryPath `json:"category,omitempty"`
	Comment            string       `json:"comment,omitempty"`
	Deleted            bool         `json:"deleted,omitempty"`
}

// NewTransaction creates a transaction with a fresh id.
func NewTransaction(on Date, dir Direction, itemID string, amount int64, category CategoryPath) Transaction {
	if on.IsZero() {
		on = Today()
	}
	return Transaction{
		ID:        uuid.NewString(),
		Date:      on,
		Direction: dir,
		Type:      Actual,
		ItemID:    itemID,
		Amount:    amount,
		Category:  category,
	}
}

// When returns the date of the transaction.
func (t Transaction) When() Date { return t.Date }

// Realized reports whether the transaction counts toward historical totals:
// it is either of actual type or a planned transaction marked realized.
func (t Transaction) Realized() bool {
	return t.Type == Actual || t.Status == StatusRealized
}

// counterpartyLeg is the face amount of the counterparty side of a transfer.
func (t Transaction) counterpartyLeg() int64 {
	if t.CounterpartyAmount != 0 {
		return t.CounterpartyAmount
	}
	return t.Amount
}

// Validate checks the transaction for structural correctness. A transfer
// without a counterparty is a caller bug and a hard error.
func (t Transaction) Validate() error {
	if t.Amount < 0 {
		return fmt.Errorf("negative amount %d on %s", t.Amount, t.Date)
	}
	if t.ItemID == "" {
		return errors.New("missing primary item id")
	}
	if t.Direction == Transfer && t.CounterpartyID == "" {
		return fmt.Errorf("transfer on %s is missing a counterparty item id", t.Date)
	}
	if t.Direction != Transfer && t.CounterpartyID != "" {
		return fmt.Errorf("%s on %s must not name a counterparty", t.Direction, t.Date)
	}
	return nil
}

// ByDirection returns a predicate that filters transactions by direction.
func ByDirection(dir Direction) func(Transaction) bool {
	return func(t Transaction) bool { return t.Direction == dir }
}

// newID returns a fresh transaction or item identifier.
func newID() string { return uuid.NewString() }
