package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/parse"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a file of bank SMS messages into the ledger",
		Long: `Import bank SMS notifications from a text file, one message per line.
Blank lines are skipped. Duplicate messages within the file are reported
and imported once; messages already in the ledger are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			messages, err := readMessages(args[0])
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println(cli.FormatWarning("No messages found in file"))
				return nil
			}

			extractor, err := newExtractor(ctx)
			if err != nil {
				return err
			}
			parser := parse.NewParser(extractor)

			bar := progressbar.NewOptions(len(messages),
				progressbar.OptionSetDescription("Parsing messages"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var (
				records    []model.TransactionRecord
				duplicates int
				failures   []importFailure
			)

			for i, message := range messages {
				record, parseErr := parser.ParseMessage(ctx, message)
				_ = bar.Add(1)

				switch {
				case parseErr == nil:
					records = append(records, record)
				case errors.Is(parseErr, common.ErrDuplicateMessage):
					duplicates++
				default:
					failures = append(failures, importFailure{line: i + 1, err: parseErr})
				}
			}

			slog.Info("import parsed",
				"total", len(messages),
				"parsed", len(records),
				"duplicates", duplicates,
				"failed", len(failures))

			for _, failure := range failures {
				fmt.Println(cli.FormatError(fmt.Sprintf("line %d: %v", failure.line, failure.err)))
			}

			if dryRun {
				fmt.Println(cli.FormatTitle("Dry run"))
				fmt.Printf("%d parsed, %d duplicates, %d failed; nothing saved\n",
					len(records), duplicates, len(failures))
				return nil
			}

			if len(records) > 0 {
				store, err := openStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				if err := store.SaveRecords(ctx, records); err != nil {
					return fmt.Errorf("failed to save records: %w", err)
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d records (%d duplicates, %d failed)",
				len(records), duplicates, len(failures))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing to the ledger")

	return cmd
}

type importFailure struct {
	line int
	err  error
}

// readMessages loads one SMS per line, skipping blanks.
func readMessages(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var messages []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		messages = append(messages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return messages, nil
}
