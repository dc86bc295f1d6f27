// Package ledger computes per-account ledgers from the journal. All
// functions are pure: they read the entry slice they are given and never
// touch shared state, so any number of callers may run concurrently.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Row is one journal entry as seen from a single account's ledger.
type Row struct {
	Entry model.Entry
	Side  model.Side // the leg this account takes
	// Balance is the running balance after this row, signed relative to
	// the account's normal side: postings on the normal side add, postings
	// on the opposite side subtract. It can go negative.
	Balance decimal.Decimal
}

// Ledger is the computed view of one account over a set of entries.
type Ledger struct {
	Account      model.Account
	Rows         []Row
	TotalDebits  decimal.Decimal // raw debit movement, non-negative
	TotalCredits decimal.Decimal // raw credit movement, non-negative
	// EndingBalance is |TotalDebits - TotalCredits|; EndingSide tells which
	// column it sits in. A zero-activity account is balanced on its normal
	// side.
	EndingBalance decimal.Decimal
	EndingSide    model.Side
}

// ForAccount computes the ledger for one account. Entries involving the
// account are taken in date order, ties broken by input order, so the
// result is deterministic for a given journal snapshot.
func ForAccount(acct model.Account, entries []model.Entry) Ledger {
	var involved []model.Entry
	for _, e := range entries {
		if e.Involves(acct.ID) {
			involved = append(involved, e)
		}
	}
	sort.SliceStable(involved, func(i, j int) bool {
		return involved[i].Date.Before(involved[j].Date)
	})

	led := Ledger{
		Account:      acct,
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	balance := decimal.Zero
	for _, e := range involved {
		side := e.SideFor(acct.ID)
		if side == model.SideDebit {
			led.TotalDebits = led.TotalDebits.Add(e.Amount)
		} else {
			led.TotalCredits = led.TotalCredits.Add(e.Amount)
		}

		if side == acct.NormalBalance {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}

		led.Rows = append(led.Rows, Row{Entry: e, Side: side, Balance: balance})
	}

	diff := led.TotalDebits.Sub(led.TotalCredits)
	led.EndingBalance = diff.Abs()
	switch {
	case diff.IsPositive():
		led.EndingSide = model.SideDebit
	case diff.IsNegative():
		led.EndingSide = model.SideCredit
	default:
		led.EndingSide = acct.NormalBalance
	}
	return led
}

// EndingBalances computes the ending balance of every account, keyed by
// account ID. Reports build on this instead of recomputing filters.
func EndingBalances(accounts []model.Account, entries []model.Entry) map[string]Ledger {
	out := make(map[string]Ledger, len(accounts))
	for _, a := range accounts {
		out[a.ID] = ForAccount(a, entries)
	}
	return out
}
