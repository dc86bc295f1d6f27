package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

var (
	cash = model.Account{ID: "1000", Name: "Cash", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit}
	bank = model.Account{ID: "1010", Name: "Bank", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit}
	svc  = model.Account{ID: "4000", Name: "Service Revenue", Type: model.AccountTypeRevenue, NormalBalance: model.SideCredit}
	draw = model.Account{ID: "3100", Name: "Drawings", Type: model.AccountTypeEquity, NormalBalance: model.SideDebit}
)

func entry(id string, d time.Time, debit, credit, amount string) model.Entry {
	return model.Entry{
		ID:              id,
		Date:            d,
		Description:     "test entry " + id,
		DebitAccountID:  debit,
		CreditAccountID: credit,
		Amount:          dec(amount),
	}
}

func TestForAccount_SingleDebit(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "5000.00"),
	}

	led := ForAccount(cash, entries)
	require.Len(t, led.Rows, 1)
	assert.Equal(t, model.SideDebit, led.Rows[0].Side)
	assert.True(t, led.Rows[0].Balance.Equal(dec("5000")))
	assert.True(t, led.TotalDebits.Equal(dec("5000")))
	assert.True(t, led.TotalCredits.IsZero())
	assert.True(t, led.EndingBalance.Equal(dec("5000")))
	assert.Equal(t, model.SideDebit, led.EndingSide)
}

func TestForAccount_SingleCredit(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "5000.00"),
	}

	led := ForAccount(svc, entries)
	require.Len(t, led.Rows, 1)
	assert.Equal(t, model.SideCredit, led.Rows[0].Side)
	// Credit posting on a credit-normal account increases the balance.
	assert.True(t, led.Rows[0].Balance.Equal(dec("5000")))
	assert.True(t, led.EndingBalance.Equal(dec("5000")))
	assert.Equal(t, model.SideCredit, led.EndingSide)
}

func TestForAccount_RunningBalance(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "5000.00"),
		entry("2024-01-002", date(2024, 1, 10), "5000", "1000", "1200.00"),
		entry("2024-01-003", date(2024, 1, 20), "1000", "4000", "300.00"),
	}

	led := ForAccount(cash, entries)
	require.Len(t, led.Rows, 3)
	assert.True(t, led.Rows[0].Balance.Equal(dec("5000")))
	assert.True(t, led.Rows[1].Balance.Equal(dec("3800")))
	assert.True(t, led.Rows[2].Balance.Equal(dec("4100")))
	assert.True(t, led.TotalDebits.Equal(dec("5300")))
	assert.True(t, led.TotalCredits.Equal(dec("1200")))
	assert.True(t, led.EndingBalance.Equal(dec("4100")))
	assert.Equal(t, model.SideDebit, led.EndingSide)
}

func TestForAccount_SortsByDateStable(t *testing.T) {
	// Storage order deliberately out of date order; same-date entries keep
	// their storage order.
	entries := []model.Entry{
		entry("2024-01-003", date(2024, 1, 20), "1000", "4000", "30.00"),
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "10.00"),
		entry("2024-01-002", date(2024, 1, 20), "1000", "4000", "20.00"),
	}

	led := ForAccount(cash, entries)
	require.Len(t, led.Rows, 3)
	assert.Equal(t, "2024-01-001", led.Rows[0].Entry.ID)
	assert.Equal(t, "2024-01-003", led.Rows[1].Entry.ID)
	assert.Equal(t, "2024-01-002", led.Rows[2].Entry.ID)
}

func TestForAccount_NegativeRunningBalance(t *testing.T) {
	// Credit an asset account past zero: running balance goes negative,
	// ending side flips to credit.
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "5000", "1010", "1200.00"),
	}

	led := ForAccount(bank, entries)
	require.Len(t, led.Rows, 1)
	assert.True(t, led.Rows[0].Balance.Equal(dec("-1200")))
	assert.True(t, led.EndingBalance.Equal(dec("1200")))
	assert.Equal(t, model.SideCredit, led.EndingSide)
}

func TestForAccount_ContraEquity(t *testing.T) {
	// Drawings is debit-normal despite being equity: a debit increases it.
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "3100", "1000", "400.00"),
	}

	led := ForAccount(draw, entries)
	require.Len(t, led.Rows, 1)
	assert.True(t, led.Rows[0].Balance.Equal(dec("400")))
	assert.Equal(t, model.SideDebit, led.EndingSide)
}

func TestForAccount_NoActivity(t *testing.T) {
	led := ForAccount(svc, nil)
	assert.Empty(t, led.Rows)
	assert.True(t, led.TotalDebits.IsZero())
	assert.True(t, led.TotalCredits.IsZero())
	assert.True(t, led.EndingBalance.IsZero())
	assert.Equal(t, svc.NormalBalance, led.EndingSide, "zero activity balances on the normal side")
}

func TestForAccount_ZeroNetActivity(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "100.00"),
		entry("2024-01-002", date(2024, 1, 6), "5000", "1000", "100.00"),
	}

	led := ForAccount(cash, entries)
	assert.True(t, led.EndingBalance.IsZero())
	assert.Equal(t, cash.NormalBalance, led.EndingSide, "ties default to the normal side")
}

func TestForAccount_Idempotent(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "5000.00"),
		entry("2024-01-002", date(2024, 1, 10), "5000", "1000", "1200.00"),
	}

	first := ForAccount(cash, entries)
	second := ForAccount(cash, entries)
	assert.Equal(t, first, second)
}

func TestEndingBalances(t *testing.T) {
	entries := []model.Entry{
		entry("2024-01-001", date(2024, 1, 5), "1000", "4000", "5000.00"),
	}

	balances := EndingBalances([]model.Account{cash, svc, bank}, entries)
	require.Len(t, balances, 3)
	assert.True(t, balances["1000"].EndingBalance.Equal(dec("5000")))
	assert.True(t, balances["4000"].EndingBalance.Equal(dec("5000")))
	assert.True(t, balances["1010"].EndingBalance.IsZero())
}
