package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryInvolves(t *testing.T) {
	e := Entry{DebitAccountID: "1000", CreditAccountID: "4000"}

	assert.True(t, e.Involves("1000"))
	assert.True(t, e.Involves("4000"))
	assert.False(t, e.Involves("5000"))
}

func TestEntrySideFor(t *testing.T) {
	e := Entry{DebitAccountID: "1000", CreditAccountID: "4000"}

	assert.Equal(t, SideDebit, e.SideFor("1000"))
	assert.Equal(t, SideCredit, e.SideFor("4000"))
}

func TestAccountIsContra(t *testing.T) {
	tests := []struct {
		name string
		acct Account
		want bool
	}{
		{"asset with debit balance", Account{Type: AccountTypeAsset, NormalBalance: SideDebit}, false},
		{"equity with credit balance", Account{Type: AccountTypeEquity, NormalBalance: SideCredit}, false},
		{"drawings: equity with debit balance", Account{Type: AccountTypeEquity, NormalBalance: SideDebit}, true},
		{"revenue with credit balance", Account{Type: AccountTypeRevenue, NormalBalance: SideCredit}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.acct.IsContra(), tt.name)
	}
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideCredit, SideDebit.Opposite())
	assert.Equal(t, SideDebit, SideCredit.Opposite())
}
