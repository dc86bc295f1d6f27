package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func TestReadAccounts(t *testing.T) {
	in := strings.Join([]string{
		"account_id,name,type,normal_balance,description",
		"1000,Cash,asset,debit,Cash on hand",
		"3100,Drawings,equity,debit,Owner withdrawals (contra equity)",
		"4000,Service Revenue,revenue,credit,",
	}, "\n")

	accts, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, accts, 3)

	assert.Equal(t, model.Account{
		ID:            "1000",
		Name:          "Cash",
		Type:          model.AccountTypeAsset,
		NormalBalance: model.SideDebit,
		Description:   "Cash on hand",
	}, accts[0])

	// Contra normal balance survives the round trip as explicit metadata.
	assert.Equal(t, model.AccountTypeEquity, accts[1].Type)
	assert.Equal(t, model.SideDebit, accts[1].NormalBalance)
}

func TestReadAccountsEmpty(t *testing.T) {
	accts, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, accts)
}

func TestReadAccountsInvalidType(t *testing.T) {
	in := "account_id,name,type,normal_balance,description\n1000,Cash,cash-like,debit,\n"
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid account type")
}

func TestReadAccountsInvalidBalance(t *testing.T) {
	in := "account_id,name,type,normal_balance,description\n1000,Cash,asset,sideways,\n"
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid normal balance")
}

func TestWriteReadRoundTrip(t *testing.T) {
	chart := DefaultChart()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, chart))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}

func TestUnmarshalAccountFieldCount(t *testing.T) {
	_, err := UnmarshalAccount([]string{"1000", "Cash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}
