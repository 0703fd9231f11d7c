package parse

import (
	"strings"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// Keyword tables for direction detection. Credit keywords are checked
// first; "transfered" stays because real bank messages misspell it.
var (
	creditKeywords = []string{"credited", "received", "transfered", "transferred", "refund", "deposited"}
	debitKeywords  = []string{"spent", "purchase", "debited", "charged", "withdrawn", "transfer out"}
)

// DetectType determines whether the message describes a credit or a debit.
// Ambiguous messages default to Debit.
func DetectType(message string) model.TransactionType {
	lower := strings.ToLower(message)

	for _, keyword := range creditKeywords {
		if strings.Contains(lower, keyword) {
			return model.TypeCredit
		}
	}

	for _, keyword := range debitKeywords {
		if strings.Contains(lower, keyword) {
			return model.TypeDebit
		}
	}

	return model.TypeDebit
}
