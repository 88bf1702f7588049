package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial event, either income or expense.
// The JSON field names double as the backup wire format, so they must stay stable.
type Transaction struct {
	ID        string          `json:"id"`        // Primary key (UUID), assigned at creation, immutable
	Title     string          `json:"title"`     // Non-empty display label (enforced at the DTO boundary)
	Amount    decimal.Decimal `json:"amount"`    // Always positive; sign is carried by IsExpense
	Category  string          `json:"category"`  // Drawn from the category vocabulary, not strictly enforced
	Date      int64           `json:"date"`      // Epoch milliseconds, user-selectable
	IsExpense bool            `json:"isExpense"` // true = reduces balance, false = increases it
}

// Time returns the transaction date as a time.Time in the given location.
func (t Transaction) Time(loc *time.Location) time.Time {
	return time.UnixMilli(t.Date).In(loc)
}

// InMonth reports whether the transaction falls in the same calendar month and
// year as ref, interpreted in ref's location. A matching month number in a
// different year does not count.
func (t Transaction) InMonth(ref time.Time) bool {
	tt := t.Time(ref.Location())
	return tt.Month() == ref.Month() && tt.Year() == ref.Year()
}
