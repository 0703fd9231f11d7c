package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the ledger database schema",
		Long: `Bring the ledger database schema up to the current version.
Running it on an up-to-date database is a no-op. Other commands migrate
on open as well; this exists to prepare a database ahead of time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.FormatSuccess("Ledger schema is up to date"))
			return nil
		},
	}
}
