package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRecord_JSONContract(t *testing.T) {
	record := TransactionRecord{
		Date:      "2026-02-16",
		Amount:    15.75,
		Currency:  "AED",
		Type:      TypeDebit,
		Merchant:  "OOTTUPURA RESTA",
		CardLast4: "9098",
		Category:  CategoryOther,
		Raw:       "raw message",
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// Field names are the compatibility contract with the spreadsheet
	// backend; a rename here breaks downstream consumers.
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, name := range []string{"date", "amount", "currency", "type", "merchant", "card_last4", "category", "raw"} {
		assert.Contains(t, fields, name)
	}
	assert.Len(t, fields, 8)
	assert.Equal(t, "Debit", fields["type"])
	assert.Equal(t, "Other", fields["category"])
}

func TestTransactionRecord_Complete(t *testing.T) {
	valid := TransactionRecord{
		Date:     "2026-02-16",
		Amount:   15.75,
		Currency: "AED",
		Type:     TypeDebit,
	}

	tests := []struct {
		mutate func(*TransactionRecord)
		name   string
		want   bool
	}{
		{name: "all required fields present", mutate: func(*TransactionRecord) {}, want: true},
		{name: "missing date", mutate: func(r *TransactionRecord) { r.Date = "" }, want: false},
		{name: "zero amount means not found", mutate: func(r *TransactionRecord) { r.Amount = 0 }, want: false},
		{name: "missing currency", mutate: func(r *TransactionRecord) { r.Currency = "" }, want: false},
		{name: "missing type", mutate: func(r *TransactionRecord) { r.Type = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)
			assert.Equal(t, tt.want, record.Complete())
		})
	}
}

func TestTransactionRecord_GenerateHash(t *testing.T) {
	a := TransactionRecord{Date: "2026-02-16", Amount: 15.75, Merchant: "SHOP", Raw: "msg"}
	b := a
	c := a
	c.Amount = 16.75

	assert.Equal(t, a.GenerateHash(), b.GenerateHash())
	assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
}
