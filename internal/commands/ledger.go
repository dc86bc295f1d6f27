package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/journal"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func newLedgerCommand() *cobra.Command {
	var booksDir, from, to string

	cmd := &cobra.Command{
		Use:   "ledger <account-id>",
		Short: "Print an account's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(booksDir, args[0], from, to)
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func runLedger(dir, accountID, from, to string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	dr, err := parseRange(from, to)
	if err != nil {
		return err
	}

	led, err := env.book.AccountLedger(accountID, dr)
	if err != nil {
		return err
	}

	fmt.Printf("Ledger: %s %s (%s, normal %s)\n", led.Account.ID, led.Account.Name,
		led.Account.Type, led.Account.NormalBalance)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tENTRY\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE\t")
	for _, row := range led.Rows {
		debit, credit := "", ""
		if row.Side == model.SideDebit {
			debit = row.Entry.Amount.StringFixed(2)
		} else {
			credit = row.Entry.Amount.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Entry.Date.Format(journal.DateFormat), row.Entry.ID,
			row.Entry.Description, debit, credit, row.Balance.StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\tTOTALS\t%s\t%s\t\t\n",
		led.TotalDebits.StringFixed(2), led.TotalCredits.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("Ending balance: %s %s\n", led.EndingBalance.StringFixed(2), led.EndingSide)
	return nil
}
