// Package report derives the trial balance, income statement, and balance
// sheet from the chart of accounts and a journal snapshot. Every report is
// a pure function of its inputs; recomputing on an unchanged snapshot
// yields identical results.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// Between filters entries to those with from <= date <= to. A zero bound is
// open. Reports are period-agnostic; callers narrow the entry set first.
func Between(entries []model.Entry, from, to time.Time) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// TrialBalanceRow is one account's ending balance, in exactly one column.
type TrialBalanceRow struct {
	AccountID string
	Name      string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// TrialBalanceReport lists every account with activity and its ending
// balance. Debit and credit totals must always agree; a mismatch means an
// unbalanced entry got past validation, not a reporting bug.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// Balanced reports whether total debits equal total credits.
func (r TrialBalanceReport) Balanced() bool {
	return r.TotalDebits.Equal(r.TotalCredits)
}

// TrialBalance computes the trial balance. Accounts with no activity are
// omitted; rows follow catalog order.
func TrialBalance(accounts []model.Account, entries []model.Entry) TrialBalanceReport {
	rep := TrialBalanceReport{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, acct := range accounts {
		led := ledger.ForAccount(acct, entries)
		if len(led.Rows) == 0 {
			continue
		}

		row := TrialBalanceRow{
			AccountID: acct.ID,
			Name:      acct.Name,
			Debit:     decimal.Zero,
			Credit:    decimal.Zero,
		}
		if led.EndingSide == model.SideDebit {
			row.Debit = led.EndingBalance
			rep.TotalDebits = rep.TotalDebits.Add(led.EndingBalance)
		} else {
			row.Credit = led.EndingBalance
			rep.TotalCredits = rep.TotalCredits.Add(led.EndingBalance)
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

// BalanceRow is one account's ending balance within a report section.
type BalanceRow struct {
	AccountID string
	Name      string
	Amount    decimal.Decimal
}

// IncomeStatementReport summarizes revenue and expense accounts.
type IncomeStatementReport struct {
	Revenue      []BalanceRow
	Expenses     []BalanceRow
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
}

// IncomeStatement computes revenue, expense, and net income figures.
// Ending balances already carry the normal-balance sign convention, so
// revenue totals are positive "earned" figures.
func IncomeStatement(accounts []model.Account, entries []model.Entry) IncomeStatementReport {
	rep := IncomeStatementReport{
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, acct := range accounts {
		switch acct.Type {
		case model.AccountTypeRevenue, model.AccountTypeExpense:
		default:
			continue
		}

		led := ledger.ForAccount(acct, entries)
		if len(led.Rows) == 0 {
			continue
		}

		amount := signedBalance(led)
		row := BalanceRow{AccountID: acct.ID, Name: acct.Name, Amount: amount}
		if acct.Type == model.AccountTypeRevenue {
			rep.Revenue = append(rep.Revenue, row)
			rep.TotalRevenue = rep.TotalRevenue.Add(amount)
		} else {
			rep.Expenses = append(rep.Expenses, row)
			rep.TotalExpense = rep.TotalExpense.Add(amount)
		}
	}

	rep.NetIncome = rep.TotalRevenue.Sub(rep.TotalExpense)
	return rep
}

// BalanceSheetReport summarizes asset, liability, and equity positions.
// NetIncome for the same entry set is rolled into TotalEquity (retained
// earnings), which is what makes the accounting equation close.
type BalanceSheetReport struct {
	Assets           []BalanceRow
	Liabilities      []BalanceRow
	Equity           []BalanceRow
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	NetIncome        decimal.Decimal
}

// Balanced reports whether assets equal liabilities plus equity.
func (r BalanceSheetReport) Balanced() bool {
	return r.TotalAssets.Equal(r.TotalLiabilities.Add(r.TotalEquity))
}

// BalanceSheet computes the balance sheet for the given entry set.
func BalanceSheet(accounts []model.Account, entries []model.Entry) BalanceSheetReport {
	rep := BalanceSheetReport{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, acct := range accounts {
		switch acct.Type {
		case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity:
		default:
			continue
		}

		led := ledger.ForAccount(acct, entries)
		if len(led.Rows) == 0 {
			continue
		}

		amount := signedBalance(led)
		row := BalanceRow{AccountID: acct.ID, Name: acct.Name, Amount: amount}
		switch acct.Type {
		case model.AccountTypeAsset:
			rep.Assets = append(rep.Assets, row)
			rep.TotalAssets = rep.TotalAssets.Add(amount)
		case model.AccountTypeLiability:
			rep.Liabilities = append(rep.Liabilities, row)
			rep.TotalLiabilities = rep.TotalLiabilities.Add(amount)
		case model.AccountTypeEquity:
			rep.Equity = append(rep.Equity, row)
			rep.TotalEquity = rep.TotalEquity.Add(amount)
		}
	}

	rep.NetIncome = IncomeStatement(accounts, entries).NetIncome
	rep.TotalEquity = rep.TotalEquity.Add(rep.NetIncome)
	return rep
}

// signedBalance converts a ledger's ending balance into its type's
// conventional frame: assets and expenses debit-positive, the rest
// credit-positive. Contra accounts come out negative within their section
// (Drawings nets against equity), and an overdrawn asset shows as a
// negative asset. Summing in this frame is what makes the accounting
// equation close.
func signedBalance(led ledger.Ledger) decimal.Decimal {
	if led.EndingSide == led.Account.Type.NormalSide() {
		return led.EndingBalance
	}
	return led.EndingBalance.Neg()
}
