package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	asOf, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of date %q, expected YYYY-MM-DD", value)
	}
	return asOf, nil
}

func newBalanceCommand() *cobra.Command {
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's signed balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			var asOf *time.Time
			if asOfStr != "" {
				parsed, err := parseAsOf(asOfStr)
				if err != nil {
					return err
				}
				asOf = &parsed
			}

			balance, err := app.balances.AccountBalance(tenantFlag(cmd), args[0], asOf)
			if err != nil {
				return err
			}

			fmt.Printf("%.2f\n", balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "balance as of date (YYYY-MM-DD)")

	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			asOf, err := parseAsOf(asOfStr)
			if err != nil {
				return err
			}

			report, err := app.balances.TrialBalance(tenantFlag(cmd), asOf)
			if err != nil {
				return err
			}

			fmt.Printf("Trial balance as of %s\n\n", report.AsOfDate.Format("2006-01-02"))
			fmt.Printf("%-8s %-50s %14s %14s\n", "Number", "Account", "Debit", "Credit")
			for _, a := range report.Accounts {
				fmt.Printf("%-8s %-50s %14.2f %14.2f\n", a.AccountNumber, a.AccountName, a.TotalDebit, a.TotalCredit)
			}
			fmt.Printf("\n%-59s %14.2f %14.2f\n", "Total", report.TotalDebits, report.TotalCredits)
			if report.IsBalanced {
				fmt.Println("Ledger is balanced")
			} else {
				fmt.Println("WARNING: ledger is NOT balanced")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report as of date (YYYY-MM-DD), defaults to today")

	return cmd
}

func newExportCommand() *cobra.Command {
	var asOfStr, outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trial balance to an Excel file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			asOf, err := parseAsOf(asOfStr)
			if err != nil {
				return err
			}

			report, err := app.balances.TrialBalance(tenantFlag(cmd), asOf)
			if err != nil {
				return err
			}

			if err := app.export.ExportTrialBalance(report, outputFile); err != nil {
				return err
			}

			fmt.Printf("Trial balance written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report as of date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&outputFile, "out", "trial-balance.xlsx", "output file path")

	return cmd
}
