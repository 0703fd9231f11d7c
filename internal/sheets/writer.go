package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

// Header row written before the first record. Column order mirrors the
// record's JSON field order, which downstream formulas depend on.
var headerRow = []any{"Date", "Amount", "Currency", "Type", "Merchant", "Card Last 4", "Category", "Raw Message"}

// Writer implements the service.ReportWriter interface for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets ledger writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Write implements the ReportWriter interface. Records are appended below
// any existing rows; a header is written only when the sheet is empty.
func (w *Writer) Write(ctx context.Context, records []model.TransactionRecord) error {
	w.logger.Info("starting sheet export",
		"records", len(records),
		"spreadsheet_id", w.config.SpreadsheetID)

	values, err := w.prepareRows(ctx, records)
	if err != nil {
		return err
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.appendRows(ctx, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	w.logger.Info("sheet export completed",
		"spreadsheet_id", w.config.SpreadsheetID,
		"rows_written", len(values))

	return nil
}

// prepareRows converts records to sheet rows, prefixing a header when the
// target sheet has no data yet.
func (w *Writer) prepareRows(ctx context.Context, records []model.TransactionRecord) ([][]any, error) {
	resp, err := w.service.Spreadsheets.Values.
		Get(w.config.SpreadsheetID, w.config.SheetName+"!A1:A1").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect sheet: %w", err)
	}

	var values [][]any
	if len(resp.Values) == 0 {
		values = append(values, headerRow)
	}

	for _, record := range records {
		values = append(values, []any{
			record.Date,
			record.Amount,
			record.Currency,
			string(record.Type),
			record.Merchant,
			record.CardLast4,
			string(record.Category),
			record.Raw,
		})
	}

	return values, nil
}

func (w *Writer) appendRows(ctx context.Context, values [][]any) error {
	valueRange := &sheets.ValueRange{Values: values}

	_, err := w.service.Spreadsheets.Values.
		Append(w.config.SpreadsheetID, w.config.SheetName+"!A1", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append failed: %w", err)
	}

	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		// Use service account authentication
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		// Use OAuth2 authentication
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}
