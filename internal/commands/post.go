package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/journal"
)

func newPostCommand() *cobra.Command {
	var booksDir string
	var date, description, debit, credit, amount, reference string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(booksDir, journal.Candidate{
				Date:            date,
				Description:     description,
				DebitAccountID:  debit,
				CreditAccountID: credit,
				Amount:          mustDecimal(amount),
				Reference:       reference,
			})
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	cmd.Flags().StringVar(&debit, "debit", "", "debit account ID (required)")
	cmd.Flags().StringVar(&credit, "credit", "", "credit account ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&reference, "ref", "", "external reference")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// mustDecimal parses a flag value leniently; a malformed amount becomes
// zero and is rejected by the validator with a proper error kind.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func runPost(dir string, c journal.Candidate) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	entry, err := env.book.PostEntry(c)
	if err != nil {
		return err
	}

	env.logAndCommit("post", entry.ID, entry.Description,
		fmt.Sprintf("post: %s %s", entry.ID, entry.Description))

	fmt.Printf("Posted %s: %s  %s -> %s  %s\n",
		entry.ID, entry.Date.Format(journal.DateFormat),
		entry.CreditAccountID, entry.DebitAccountID, entry.Amount.StringFixed(2))
	return nil
}
