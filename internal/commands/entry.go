package commands

import (
	"accounting-ledger/internal/models"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCreateEntryCommand() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "create-entry",
		Short: "Create a draft journal entry from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read entry file: %w", err)
			}

			var req models.CreateEntryRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("failed to parse entry file: %w", err)
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			entry, err := app.journal.CreateEntry(tenantFlag(cmd), req)
			if err != nil {
				return err
			}

			fmt.Printf("Created draft entry %s with id %s\n", entry.EntryNumber, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFile, "file", "", "JSON file with the entry")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPostCommand() *cobra.Command {
	var postedBy string

	cmd := &cobra.Command{
		Use:   "post <entry-id>",
		Short: "Post a draft journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			entry, err := app.journal.PostEntry(tenantFlag(cmd), args[0], postedBy)
			if err != nil {
				return err
			}

			fmt.Printf("Posted entry %s\n", entry.EntryNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&postedBy, "by", "ledgerctl", "identity to stamp as poster")

	return cmd
}

func newReverseCommand() *cobra.Command {
	var reason, performedBy string

	cmd := &cobra.Command{
		Use:   "reverse <entry-id>",
		Short: "Reverse a posted journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			entry, err := app.journal.ReverseEntry(tenantFlag(cmd), args[0], reason, performedBy)
			if err != nil {
				return err
			}

			fmt.Printf("Reversed entry %s, reversal id %s\n", entry.EntryNumber, *entry.ReversedByEntryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reversal reason")
	cmd.Flags().StringVar(&performedBy, "by", "ledgerctl", "identity to stamp on the reversal")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
