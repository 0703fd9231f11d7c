package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecord(raw string) model.TransactionRecord {
	return model.TransactionRecord{
		Date:      "2026-02-16",
		Amount:    15.75,
		Currency:  "AED",
		Type:      model.TypeDebit,
		Merchant:  "OOTTUPURA RESTA",
		CardLast4: "9098",
		Category:  model.CategoryOther,
		Raw:       raw,
	}
}

func TestSQLiteStorage_SaveRecord(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := testRecord("msg one")
	require.NoError(t, store.SaveRecord(ctx, &record))

	count, err := store.GetRecordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_SaveRecord_Duplicate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := testRecord("msg one")
	require.NoError(t, store.SaveRecord(ctx, &record))

	err := store.SaveRecord(ctx, &record)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	count, err := store.GetRecordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_SaveRecord_Invalid(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.TransactionRecord)
		name   string
	}{
		{name: "missing date", mutate: func(r *model.TransactionRecord) { r.Date = "" }},
		{name: "zero amount", mutate: func(r *model.TransactionRecord) { r.Amount = 0 }},
		{name: "missing currency", mutate: func(r *model.TransactionRecord) { r.Currency = "" }},
		{name: "unknown type", mutate: func(r *model.TransactionRecord) { r.Type = "Sideways" }},
		{name: "missing raw", mutate: func(r *model.TransactionRecord) { r.Raw = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := testRecord("invalid candidate")
			tt.mutate(&record)
			assert.ErrorIs(t, store.SaveRecord(ctx, &record), ErrInvalidRecord)
		})
	}
}

func TestSQLiteStorage_SaveRecords_SkipsDuplicates(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := testRecord("msg one")
	require.NoError(t, store.SaveRecord(ctx, &first))

	batch := []model.TransactionRecord{
		testRecord("msg one"), // already stored
		testRecord("msg two"),
		testRecord("msg three"),
	}
	require.NoError(t, store.SaveRecords(ctx, batch))

	count, err := store.GetRecordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSQLiteStorage_GetRecords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	older := testRecord("older")
	older.Date = "2026-01-10"
	older.Category = model.CategoryGroceries

	newer := testRecord("newer")
	newer.Date = "2026-02-16"

	require.NoError(t, store.SaveRecords(ctx, []model.TransactionRecord{older, newer}))

	t.Run("newest first", func(t *testing.T) {
		records, err := store.GetRecords(ctx, service.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "newer", records[0].Raw)
		assert.Equal(t, "older", records[1].Raw)
	})

	t.Run("filter by category", func(t *testing.T) {
		records, err := store.GetRecords(ctx, service.RecordFilter{Category: "Groceries"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "older", records[0].Raw)
	})

	t.Run("filter by date range", func(t *testing.T) {
		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		records, err := store.GetRecords(ctx, service.RecordFilter{StartDate: &start})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "newer", records[0].Raw)
	})

	t.Run("limit", func(t *testing.T) {
		records, err := store.GetRecords(ctx, service.RecordFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		records, err := store.GetRecords(ctx, service.RecordFilter{})
		require.NoError(t, err)
		got := records[0]
		assert.Equal(t, newer.Date, got.Date)
		assert.InDelta(t, newer.Amount, got.Amount, 0.001)
		assert.Equal(t, newer.Type, got.Type)
		assert.Equal(t, newer.Merchant, got.Merchant)
		assert.Equal(t, newer.CardLast4, got.CardLast4)
		assert.Equal(t, newer.Category, got.Category)
	})
}

func TestSQLiteStorage_GetMonthlySummary(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	debit := testRecord("debit feb")
	debit.Date = "2026-02-10"
	debit.Amount = 200

	credit := testRecord("credit feb")
	credit.Date = "2026-02-20"
	credit.Amount = 500
	credit.Type = model.TypeCredit

	otherMonth := testRecord("jan")
	otherMonth.Date = "2026-01-05"
	otherMonth.Amount = 999

	require.NoError(t, store.SaveRecords(ctx, []model.TransactionRecord{debit, credit, otherMonth}))

	summary, err := store.GetMonthlySummary(ctx, 2026, time.February)
	require.NoError(t, err)

	assert.InDelta(t, 200, summary.TotalDebit, 0.001)
	assert.InDelta(t, 500, summary.TotalCredit, 0.001)
	assert.InDelta(t, 300, summary.Net, 0.001)
	assert.Equal(t, 2, summary.Count)
}

func TestSQLiteStorage_Migrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)

	// Running migrations again on an up-to-date database is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}
