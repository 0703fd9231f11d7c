// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// Extractor converts one raw SMS message into a structured transaction
// record. Implementations are interchangeable strategies: the deterministic
// template router, the generic shared-extractor composition, or a remote
// model-backed extractor.
type Extractor interface {
	Extract(ctx context.Context, message string) (model.TransactionRecord, error)

	// Name identifies the strategy for logging and diagnostics.
	Name() string
}

// RecordFilter defines filtering options for ledger queries.
type RecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage defines the contract for the ledger persistence layer.
type Storage interface {
	SaveRecord(ctx context.Context, record *model.TransactionRecord) error
	SaveRecords(ctx context.Context, records []model.TransactionRecord) error
	GetRecords(ctx context.Context, filter RecordFilter) ([]model.TransactionRecord, error)
	GetRecordCount(ctx context.Context) (int, error)
	GetMonthlySummary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// MonthlySummary aggregates the ledger for one calendar month.
type MonthlySummary struct {
	TotalDebit  float64
	TotalCredit float64
	Net         float64
	Count       int
}

// ReportWriter exports parsed records to an external destination such as
// a spreadsheet.
type ReportWriter interface {
	Write(ctx context.Context, records []model.TransactionRecord) error
}

// RetryOptions configures retry behavior for network-bound operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
