package kopilka

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ItemKind tells whether an item adds to or subtracts from net worth.
type ItemKind int

const (
	// Asset is a cash account, deposit, security, property and the like.
	Asset ItemKind = iota
	// Liability is a loan or any other debt owed.
	Liability
)

func (k ItemKind) String() string {
	switch k {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	default:
		return "unknown"
	}
}

// ParseItemKind parses an item kind name.
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	default:
		return 0, fmt.Errorf("unknown item kind: %q", s)
	}
}

func (k ItemKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseItemKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Item is an account or liability tracked by the ledger. Items are created
// and archived by callers; the engine only ever reads them.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         ItemKind `json:"kind"`
	Currency     string   `json:"currency"`
	InitialValue int64    `json:"initialValue"` // opening balance, minor units
	// CurrentValue is a convenience cache of the latest known balance. It is
	// never used as ground truth for historical days.
	CurrentValue int64 `json:"currentValue,omitempty"`
	StartDate    Date  `json:"startDate,omitzero"`
	CreatedAt    Date  `json:"createdAt,omitzero"`
	ArchivedAt   Date  `json:"archivedAt,omitzero"`
	ClosedAt     Date  `json:"closedAt,omitzero"`
}

// NewItem creates an item with a fresh id starting today.
func NewItem(name string, kind ItemKind, currency string, initialValue int64, start Date) Item {
	if start.IsZero() {
		start = Today()
	}
	return Item{
		ID:           uuid.NewString(),
		Name:         name,
		Kind:         kind,
		Currency:     currency,
		InitialValue: initialValue,
		CurrentValue: initialValue,
		StartDate:    start,
		CreatedAt:    Today(),
	}
}

// EffectiveStart is the first day the item participates in replay: its start
// date, falling back to the creation date when the start date was never set.
func (it Item) EffectiveStart() Date {
	if !it.StartDate.IsZero() {
		return it.StartDate
	}
	return it.CreatedAt
}

// ActiveOn reports whether the item still counts toward aggregates on the
// given day. Archived and closed items are excluded from the day the mark
// was set onward.
func (it Item) ActiveOn(on Date) bool {
	if !it.ArchivedAt.IsZero() && !on.Before(it.ArchivedAt) {
		return false
	}
	if !it.ClosedAt.IsZero() && !on.Before(it.ClosedAt) {
		return false
	}
	return true
}

// Sign is +1 for assets and -1 for liabilities.
func (it Item) Sign() int64 {
	if it.Kind == Liability {
		return -1
	}
	return 1
}
