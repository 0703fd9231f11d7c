package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidRecord = errors.New("invalid record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a slice of records.
func validateRecords(records []model.TransactionRecord) error {
	if records == nil {
		return fmt.Errorf("%w: records", ErrNilParameter)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: records", ErrEmptySlice)
	}

	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateRecord validates a single record before it enters the ledger.
func validateRecord(record *model.TransactionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if record.Date == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidRecord)
	}
	if record.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRecord)
	}
	if record.Currency == "" {
		return fmt.Errorf("%w: missing currency", ErrInvalidRecord)
	}
	switch record.Type {
	case model.TypeCredit, model.TypeDebit:
		// Valid type
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, record.Type)
	}
	if record.Raw == "" {
		return fmt.Errorf("%w: missing raw message", ErrInvalidRecord)
	}
	return nil
}
