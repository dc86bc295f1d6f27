package accounts

import "github.com/tallybook-dev/tallybook/internal/model"

// DefaultChart returns the standard starter chart of accounts. Drawings is
// a contra-equity account: it sits under equity but carries a debit normal
// balance, recorded as explicit metadata rather than derived from the type.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: "1000", Name: "Cash", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit, Description: "Cash on hand"},
		{ID: "1010", Name: "Bank", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit, Description: "Primary bank account"},
		{ID: "1100", Name: "Accounts Receivable", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit, Description: "Amounts owed by customers"},
		{ID: "1500", Name: "Furniture", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit},
		{ID: "1510", Name: "Office Equipment", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit},
		{ID: "2000", Name: "Accounts Payable", Type: model.AccountTypeLiability, NormalBalance: model.SideCredit, Description: "Amounts owed to vendors"},
		{ID: "3000", Name: "Owner's Capital", Type: model.AccountTypeEquity, NormalBalance: model.SideCredit, Description: "Owner's equity"},
		{ID: "3100", Name: "Drawings", Type: model.AccountTypeEquity, NormalBalance: model.SideDebit, Description: "Owner withdrawals (contra equity)"},
		{ID: "4000", Name: "Service Revenue", Type: model.AccountTypeRevenue, NormalBalance: model.SideCredit},
		{ID: "4010", Name: "Sales Revenue", Type: model.AccountTypeRevenue, NormalBalance: model.SideCredit},
		{ID: "5000", Name: "Rent Expense", Type: model.AccountTypeExpense, NormalBalance: model.SideDebit},
		{ID: "5010", Name: "Salary Expense", Type: model.AccountTypeExpense, NormalBalance: model.SideDebit},
		{ID: "5020", Name: "Utilities", Type: model.AccountTypeExpense, NormalBalance: model.SideDebit},
		{ID: "5100", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, NormalBalance: model.SideDebit},
	}
}
