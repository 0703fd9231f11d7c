package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

func historyCmd() *cobra.Command {
	var (
		month    string
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded transactions",
		Long: `List transactions from the local ledger, newest first.
Use --month YYYY-MM to restrict to one calendar month and --category to
filter by spending category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter := service.RecordFilter{
				Category: category,
				Limit:    limit,
			}
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
				fmt.Println(cli.FormatWarning("No transactions found"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Transaction history"))
			for _, record := range records {
				fmt.Printf("%s  %8.2f %s  %-6s  %-10s  %s\n",
					record.Date,
					record.Amount,
					record.Currency,
					record.Type,
					record.Category,
					record.Merchant)
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transactions", len(records))))

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to one month (YYYY-MM)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of records to show (0 for all)")

	return cmd
}
