package commands

import (
	"accounting-ledger/internal/models"
	"accounting-ledger/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var chartType string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the tenant's standard chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.accounts.SeedStandardAccounts(tenantFlag(cmd), chartType)
			if err != nil {
				return err
			}

			fmt.Printf("Seeded chart %s: %d created, %d skipped\n", chartType, result.Created, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&chartType, "chart", service.ChartTypeSKR03, "chart template type")
	return cmd
}

func newCreateAccountCommand() *cobra.Command {
	var req models.CreateAccountRequest

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create a single ledger account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			account, err := app.accounts.CreateAccount(tenantFlag(cmd), req)
			if err != nil {
				return err
			}

			fmt.Printf("Created account %s (%s) with id %s\n", account.AccountNumber, account.Name, account.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.AccountNumber, "number", "", "account number")
	cmd.Flags().StringVar(&req.Name, "name", "", "account name")
	cmd.Flags().StringVar(&req.Description, "description", "", "account description")
	cmd.Flags().StringVar(&req.AccountType, "type", "", "account type (asset, liability, equity, revenue, expense, contra_asset, contra_liability)")
	cmd.Flags().StringVar(&req.AccountClass, "class", "", "account class")
	cmd.Flags().StringVar(&req.TaxCode, "tax-code", "", "tax code")
	cmd.Flags().BoolVar(&req.TaxRelevant, "tax-relevant", false, "tax relevant flag")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newListAccountsCommand() *cobra.Command {
	var filter models.AccountFilter

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the tenant's chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			accounts, err := app.accounts.ListAccounts(tenantFlag(cmd), filter)
			if err != nil {
				return err
			}

			for _, a := range accounts {
				active := "active"
				if !a.IsActive {
					active = "inactive"
				}
				fmt.Printf("%-8s %-50s %-16s %s\n", a.AccountNumber, a.Name, a.AccountType, active)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.AccountType, "type", "", "filter by account type")
	cmd.Flags().StringVar(&filter.AccountClass, "class", "", "filter by account class")
	cmd.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active accounts")
	cmd.Flags().StringVar(&filter.Search, "search", "", "search over number and name")

	return cmd
}

func newDeactivateAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate-account <account-id>",
		Short: "Deactivate an unused account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.accounts.DeactivateAccount(tenantFlag(cmd), args[0]); err != nil {
				return err
			}

			fmt.Printf("Account %s deactivated\n", args[0])
			return nil
		},
	}

	return cmd
}
