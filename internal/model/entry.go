package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is an accepted double-entry posting: one amount moved from the
// credit account to the debit account. Entries are immutable once appended;
// corrections are made with new offsetting entries.
type Entry struct {
	ID              string          // "2025-01-001", assigned at acceptance
	Date            time.Time       // date of the economic event
	Description     string          //nolint:revive // plain field name is clearest
	DebitAccountID  string          //nolint:revive
	CreditAccountID string          //nolint:revive
	Amount          decimal.Decimal // positive, two decimal places
	Reference       string          // external reference (bank ref, invoice no)
	PostedAt        time.Time       // wall-clock acceptance time
}

// Involves reports whether the entry touches the given account on either leg.
func (e Entry) Involves(accountID string) bool {
	return e.DebitAccountID == accountID || e.CreditAccountID == accountID
}

// SideFor returns the leg side the given account takes in this entry.
// The account must be involved; callers filter with Involves first.
func (e Entry) SideFor(accountID string) Side {
	if e.DebitAccountID == accountID {
		return SideDebit
	}
	return SideCredit
}
