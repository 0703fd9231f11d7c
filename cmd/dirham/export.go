package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dirhamflow/dirhamflow/internal/cli"
	"github.com/dirhamflow/dirhamflow/internal/service"
	"github.com/dirhamflow/dirhamflow/internal/sheets"
)

func exportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to Google Sheets",
		Long: `Append ledger transactions to the configured Google Sheets
spreadsheet. Authentication uses either OAuth2 credentials or a service
account key file from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			config := sheetsConfig()
			writer, err := sheets.NewWriter(ctx, config, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			var filter service.RecordFilter
			if month != "" {
				year, m, err := monthRange(month)
				if err != nil {
					return err
				}
				start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
				end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
				filter.StartDate = &start
				filter.EndDate = &end
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.GetRecords(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to load records: %w", err)
			}
			if len(records) == 0 {
				fmt.Println(cli.FormatWarning("Nothing to export"))
				return nil
			}

			if err := writer.Write(ctx, records); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d records", len(records))))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "export only one month (YYYY-MM, default all)")

	return cmd
}

// sheetsConfig builds the writer config from viper. Validation happens in
// the writer so all auth errors surface in one place.
func sheetsConfig() sheets.Config {
	config := sheets.DefaultConfig()

	config.ClientID = viper.GetString("sheets.client_id")
	config.ClientSecret = viper.GetString("sheets.client_secret")
	config.RefreshToken = viper.GetString("sheets.refresh_token")
	config.ServiceAccountPath = viper.GetString("sheets.service_account_path")
	config.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")

	if name := viper.GetString("sheets.sheet_name"); name != "" {
		config.SheetName = name
	}

	return config
}
