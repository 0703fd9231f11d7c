package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a monthly spending summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			year, m, err := monthRange(month)
			if err != nil {
				return err
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := store.GetMonthlySummary(ctx, year, m)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %d", m, year)))
			fmt.Println(cli.RenderSummary(summary))

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default current)")

	return cmd
}
