// Package book is the posting gateway: the one write path into the
// journal. Validation and reporting are pure; the book serializes
// validate-then-append behind a single writer lock and hands readers
// consistent snapshots.
package book

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tallybook-dev/tallybook/internal/accounts"
	"github.com/tallybook-dev/tallybook/internal/id"
	"github.com/tallybook-dev/tallybook/internal/journal"
	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/report"
)

// ErrStorageUnavailable marks a store failure. The in-memory state is
// untouched when it is returned; callers may retry.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrAccountNotFound is returned by AccountLedger for an unknown account.
var ErrAccountNotFound = errors.New("account not found")

// Store is the journal persistence contract the book requires: append one
// accepted entry, or read a snapshot of all entries in storage order. The
// returned slice must never alias store-internal state.
type Store interface {
	Append(model.Entry) error
	All() ([]model.Entry, error)
}

// DateRange is an optional inclusive filter for ListTransactions.
type DateRange struct {
	From time.Time // zero = open
	To   time.Time // zero = open
}

// Book ties the chart of accounts, the validator, and a journal store
// together behind the posting gateway contract.
type Book struct {
	mu      sync.Mutex // serializes validate-then-append
	catalog *accounts.Service
	store   Store
	seq     map[[2]int]int // (year, month) -> last assigned sequence
	now     func() time.Time
}

// Open creates a Book over a catalog and store, scanning the store once to
// seed per-month entry sequences.
func Open(catalog *accounts.Service, store Store) (*Book, error) {
	entries, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("%w: reading journal: %v", ErrStorageUnavailable, err)
	}

	seq := make(map[[2]int]int)
	for _, e := range entries {
		year, month, n, err := id.Parse(e.ID)
		if err != nil {
			continue
		}
		key := [2]int{year, month}
		if n > seq[key] {
			seq[key] = n
		}
	}

	return &Book{
		catalog: catalog,
		store:   store,
		seq:     seq,
		now:     time.Now,
	}, nil
}

// PostEntry validates a candidate and, on success, assigns an entry ID and
// appends it to the journal. Concurrent callers are serialized; a rejected
// candidate or a failed append leaves no partial state behind.
func (b *Book) PostEntry(c journal.Candidate) (model.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, err := journal.Validate(c, b.catalog)
	if err != nil {
		return model.Entry{}, err
	}

	key := [2]int{entry.Date.Year(), int(entry.Date.Month())}
	next := b.seq[key] + 1
	entry.ID = id.Format(key[0], key[1], next)
	entry.PostedAt = b.now().UTC()

	if err := b.store.Append(entry); err != nil {
		return model.Entry{}, fmt.Errorf("%w: appending entry: %v", ErrStorageUnavailable, err)
	}

	// Consume the sequence number only after the append lands.
	b.seq[key] = next
	return entry, nil
}

// ListAccounts returns the chart of accounts in catalog order.
func (b *Book) ListAccounts() []model.Account {
	return b.catalog.All()
}

// Accounts exposes the underlying catalog for lookups.
func (b *Book) Accounts() *accounts.Service {
	return b.catalog
}

// ListTransactions returns a snapshot of the journal in storage order,
// optionally narrowed to an inclusive date range. Callers needing date
// order sort themselves, as the ledger engine does.
func (b *Book) ListTransactions(filter *DateRange) ([]model.Entry, error) {
	entries, err := b.store.All()
	if err != nil {
		return nil, fmt.Errorf("%w: reading journal: %v", ErrStorageUnavailable, err)
	}
	if filter == nil {
		return entries, nil
	}
	return report.Between(entries, filter.From, filter.To), nil
}

// AccountLedger computes the ledger for one account over an optional date
// range.
func (b *Book) AccountLedger(accountID string, filter *DateRange) (ledger.Ledger, error) {
	acct, ok := b.catalog.Get(accountID)
	if !ok {
		return ledger.Ledger{}, fmt.Errorf("%w: %q", ErrAccountNotFound, accountID)
	}

	entries, err := b.ListTransactions(filter)
	if err != nil {
		return ledger.Ledger{}, err
	}
	return ledger.ForAccount(acct, entries), nil
}

// TrialBalance computes the trial balance over an optional date range.
func (b *Book) TrialBalance(filter *DateRange) (report.TrialBalanceReport, error) {
	entries, err := b.ListTransactions(filter)
	if err != nil {
		return report.TrialBalanceReport{}, err
	}
	return report.TrialBalance(b.catalog.All(), entries), nil
}

// IncomeStatement computes the income statement over an optional date range.
func (b *Book) IncomeStatement(filter *DateRange) (report.IncomeStatementReport, error) {
	entries, err := b.ListTransactions(filter)
	if err != nil {
		return report.IncomeStatementReport{}, err
	}
	return report.IncomeStatement(b.catalog.All(), entries), nil
}

// BalanceSheet computes the balance sheet over an optional date range.
func (b *Book) BalanceSheet(filter *DateRange) (report.BalanceSheetReport, error) {
	entries, err := b.ListTransactions(filter)
	if err != nil {
		return report.BalanceSheetReport{}, err
	}
	return report.BalanceSheet(b.catalog.All(), entries), nil
}
