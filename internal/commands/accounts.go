package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var booksDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsList(booksDir)
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	return cmd
}

func runAccountsList(dir string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tNORMAL\tDESCRIPTION")
	for _, a := range env.book.ListAccounts() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.NormalBalance, a.Description)
	}
	return tw.Flush()
}

func newAccountsAddCommand() *cobra.Command {
	var booksDir string
	var id, name, acctType, normal, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account to the chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsAdd(booksDir, model.Account{
				ID:            id,
				Name:          name,
				Type:          model.AccountType(acctType),
				NormalBalance: model.Side(normal),
				Description:   description,
			})
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&id, "id", "", "account ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&acctType, "type", "", "asset|liability|equity|revenue|expense (required)")
	cmd.Flags().StringVar(&normal, "normal-balance", "", "debit|credit; defaults to the type's convention")
	cmd.Flags().StringVar(&description, "description", "", "account description")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runAccountsAdd(dir string, a model.Account) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	if a.NormalBalance == "" && a.Type.Valid() {
		a.NormalBalance = a.Type.NormalSide()
	}

	if err := env.catalog.Add(a); err != nil {
		return err
	}
	if err := env.catalog.Save(env.root); err != nil {
		return err
	}

	env.logAndCommit("account-add", "", a.ID+" "+a.Name,
		fmt.Sprintf("accounts: add %s %s", a.ID, a.Name))

	fmt.Printf("Added account %s (%s, %s/%s)\n", a.ID, a.Name, a.Type, a.NormalBalance)
	return nil
}
