package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}

	var booksDir, from, to string
	reportCmd.PersistentFlags().StringVar(&booksDir, "books", ".", "books directory")
	reportCmd.PersistentFlags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")

	reportCmd.AddCommand(&cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrialBalance(booksDir, from, to)
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "income",
		Short: "Print the income statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncomeStatement(booksDir, from, to)
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalanceSheet(booksDir, from, to)
		},
	})

	return reportCmd
}

func runTrialBalance(dir, from, to string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	dr, err := parseRange(from, to)
	if err != nil {
		return err
	}

	rep, err := env.book.TrialBalance(dr)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ACCOUNT\tDEBIT\tCREDIT\t")
	for _, row := range rep.Rows {
		debit, credit := "", ""
		if !row.Debit.IsZero() {
			debit = row.Debit.StringFixed(2)
		}
		if !row.Credit.IsZero() {
			credit = row.Credit.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.Name, debit, credit)
	}
	fmt.Fprintf(tw, "TOTALS\t%s\t%s\t\n",
		rep.TotalDebits.StringFixed(2), rep.TotalCredits.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !rep.Balanced() {
		return fmt.Errorf("trial balance out of balance: debits %s, credits %s",
			rep.TotalDebits.StringFixed(2), rep.TotalCredits.StringFixed(2))
	}
	return nil
}

func runIncomeStatement(dir, from, to string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	dr, err := parseRange(from, to)
	if err != nil {
		return err
	}

	rep, err := env.book.IncomeStatement(dr)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Revenue\t\t")
	for _, row := range rep.Revenue {
		fmt.Fprintf(tw, "  %s\t%s\t\n", row.Name, row.Amount.StringFixed(2))
	}
	fmt.Fprintf(tw, "Total revenue\t%s\t\n", rep.TotalRevenue.StringFixed(2))
	fmt.Fprintln(tw, "Expenses\t\t")
	for _, row := range rep.Expenses {
		fmt.Fprintf(tw, "  %s\t%s\t\n", row.Name, row.Amount.StringFixed(2))
	}
	fmt.Fprintf(tw, "Total expenses\t%s\t\n", rep.TotalExpense.StringFixed(2))
	fmt.Fprintf(tw, "Net income\t%s\t\n", rep.NetIncome.StringFixed(2))
	return tw.Flush()
}

func runBalanceSheet(dir, from, to string) error {
	env, err := openBooks(dir)
	if err != nil {
		return err
	}
	defer env.close()

	dr, err := parseRange(from, to)
	if err != nil {
		return err
	}

	rep, err := env.book.BalanceSheet(dr)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	printSection := func(title string, rows []report.BalanceRow) {
		fmt.Fprintf(tw, "%s\t\t\n", title)
		for _, row := range rows {
			fmt.Fprintf(tw, "  %s\t%s\t\n", row.Name, row.Amount.StringFixed(2))
		}
	}
	printSection("Assets", rep.Assets)
	fmt.Fprintf(tw, "Total assets\t%s\t\n", rep.TotalAssets.StringFixed(2))
	printSection("Liabilities", rep.Liabilities)
	fmt.Fprintf(tw, "Total liabilities\t%s\t\n", rep.TotalLiabilities.StringFixed(2))
	printSection("Equity", rep.Equity)
	fmt.Fprintf(tw, "  Net income\t%s\t\n", rep.NetIncome.StringFixed(2))
	fmt.Fprintf(tw, "Total equity\t%s\t\n", rep.TotalEquity.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !rep.Balanced() {
		return fmt.Errorf("balance sheet out of balance: assets %s, liabilities+equity %s",
			rep.TotalAssets.StringFixed(2),
			rep.TotalLiabilities.Add(rep.TotalEquity).StringFixed(2))
	}
	return nil
}
