package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/parse"
)

func parseCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a single bank SMS into a transaction record",
		Long: `Parse one bank SMS notification and print the extracted transaction.

The message is read from the argument, or from stdin when no argument is
given. With --save the record is also written to the local ledger.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			message, err := readMessage(args)
			if err != nil {
				return err
			}

			extractor, err := newExtractor(ctx)
			if err != nil {
				return err
			}
			slog.Debug("parsing message", "strategy", extractor.Name())

			parser := parse.NewParser(extractor)
			record, err := parser.ParseMessage(ctx, message)
			if err != nil {
				switch {
				case errors.Is(err, common.ErrEmptyInput):
					return common.NewUserError("No message to parse", err)
				case errors.Is(err, common.ErrIncompleteExtraction):
					return common.NewUserError("Message does not look like a bank transaction SMS", err)
				default:
					return fmt.Errorf("failed to parse message: %w", err)
				}
			}

			fmt.Println(cli.RenderRecord(record))

			if !save {
				return nil
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveRecord(ctx, &record); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					fmt.Println(cli.FormatWarning("Already in the ledger, not saved again"))
					return nil
				}
				return fmt.Errorf("failed to save record: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Saved to ledger"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save the parsed record to the local ledger")

	return cmd
}

// readMessage takes the SMS text from the argument or from stdin.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
