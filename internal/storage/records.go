package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

// SaveRecord persists one parsed record. A record whose raw text or hash
// is already in the ledger is rejected with common.ErrDuplicateEntry.
func (s *SQLiteStorage) SaveRecord(ctx context.Context, record *model.TransactionRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO records (
			hash, date, amount, currency, type, merchant, card_last4, category, raw
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.GenerateHash(),
		record.Date,
		record.Amount,
		record.Currency,
		string(record.Type),
		record.Merchant,
		record.CardLast4,
		string(record.Category),
		record.Raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: record already in ledger", common.ErrDuplicateEntry)
	}

	return nil
}

// SaveRecords persists a batch of records in one database transaction.
// Records already present are skipped silently.
func (s *SQLiteStorage) SaveRecords(ctx context.Context, records []model.TransactionRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO records (
			hash, date, amount, currency, type, merchant, card_last4, category, raw
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range records {
		record := &records[i]
		if _, err := stmt.ExecContext(ctx,
			record.GenerateHash(),
			record.Date,
			record.Amount,
			record.Currency,
			string(record.Type),
			record.Merchant,
			record.CardLast4,
			string(record.Category),
			record.Raw,
		); err != nil {
			return fmt.Errorf("failed to save record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetRecords returns ledger records matching the filter, newest first.
func (s *SQLiteStorage) GetRecords(ctx context.Context, filter service.RecordFilter) ([]model.TransactionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT date, amount, currency, type, merchant, card_last4, category, raw
		FROM records
	`
	var conditions []string
	var args []any

	if filter.StartDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, filter.EndDate.Format("2006-01-02"))
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY date DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TransactionRecord
	for rows.Next() {
		var record model.TransactionRecord
		var txnType, category string
		if err := rows.Scan(
			&record.Date,
			&record.Amount,
			&record.Currency,
			&txnType,
			&record.Merchant,
			&record.CardLast4,
			&category,
			&record.Raw,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record.Type = model.TransactionType(txnType)
		record.Category = model.Category(category)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// GetRecordCount returns the total number of records in the ledger.
func (s *SQLiteStorage) GetRecordCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// GetMonthlySummary aggregates debits, credits and the net total for one
// calendar month.
func (s *SQLiteStorage) GetMonthlySummary(ctx context.Context, year int, month time.Month) (*service.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	row := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0),
			COUNT(*)
		FROM records
		WHERE date >= ? AND date < ?
	`,
		string(model.TypeDebit),
		string(model.TypeCredit),
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)

	summary := &service.MonthlySummary{}
	if err := row.Scan(&summary.TotalDebit, &summary.TotalCredit, &summary.Count); err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}
	summary.Net = summary.TotalCredit - summary.TotalDebit

	return summary, nil
}
