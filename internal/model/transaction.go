// Package model defines the core domain types for parsed bank SMS
// transactions.
package model

import (
	"crypto/sha256"
	"fmt"
)

// TransactionType indicates the direction of money movement.
type TransactionType string

const (
	// TypeCredit represents money coming into the account.
	TypeCredit TransactionType = "Credit"
	// TypeDebit represents money leaving the account.
	TypeDebit TransactionType = "Debit"
)

// Category is a spending category derived from the merchant name.
type Category string

const (
	// CategoryGroceries covers supermarket and grocery spending.
	CategoryGroceries Category = "Groceries"
	// CategoryShopping covers retail and online shopping.
	CategoryShopping Category = "Shopping"
	// CategoryFuel covers petrol station spending.
	CategoryFuel Category = "Fuel"
	// CategoryFood covers restaurants and food delivery.
	CategoryFood Category = "Food"
	// CategoryOther is the fallback when no rule matches.
	CategoryOther Category = "Other"
)

// TransactionRecord is the structured result of parsing one bank SMS.
//
// The JSON field names are a compatibility contract with the spreadsheet
// backend and downstream consumers; do not rename them.
type TransactionRecord struct {
	Date      string          `json:"date"`
	Amount    float64         `json:"amount"`
	Currency  string          `json:"currency"`
	Type      TransactionType `json:"type"`
	Merchant  string          `json:"merchant"`
	CardLast4 string          `json:"card_last4"`
	Category  Category        `json:"category"`
	Raw       string          `json:"raw"`
}

// Complete reports whether all required fields were extracted.
// An amount of zero means "not found", never a legitimate zero-value
// transaction.
func (r *TransactionRecord) Complete() bool {
	return r.Date != "" && r.Amount > 0 && r.Currency != "" && r.Type != ""
}

// GenerateHash creates a stable identifier for storage-level duplicate
// detection across sessions.
func (r *TransactionRecord) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		r.Date,
		r.Amount,
		r.Merchant,
		r.Raw)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
