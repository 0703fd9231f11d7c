package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultCurrency is the domestic currency assumed when a message carries
// no recognizable currency code.
const DefaultCurrency = "AED"

// A 3-letter uppercase code followed by a number that may use comma
// thousands separators and an optional decimal point.
var amountCurrencyPattern = regexp.MustCompile(`([A-Z]{3})\s*([\d,]+\.?\d*)`)

// ExtractAmountCurrency scans the message for a currency code and amount.
// When nothing matches it returns amount 0 and the default currency;
// callers must treat amount 0 as "not found", not a zero-value transaction.
func ExtractAmountCurrency(message string) (float64, string) {
	m := amountCurrencyPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, DefaultCurrency
	}

	amountStr := strings.ReplaceAll(m[2], ",", "")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return 0, m[1]
	}

	return amount, m[1]
}
