package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Double-entry ledger engine administration",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("tenant", "", "tenant id (required)")
	_ = rootCmd.MarkPersistentFlagRequired("tenant")

	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newCreateAccountCommand())
	rootCmd.AddCommand(newListAccountsCommand())
	rootCmd.AddCommand(newDeactivateAccountCommand())
	rootCmd.AddCommand(newCreateEntryCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newReverseCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

func tenantFlag(cmd *cobra.Command) string {
	tenant, _ := cmd.Flags().GetString("tenant")
	return tenant
}
