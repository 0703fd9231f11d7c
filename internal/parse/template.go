package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// templateKind identifies one of the fixed SMS phrasings the router
// recognizes.
type templateKind int

const (
	templateDebitCard templateKind = iota
	templateCreditCard
	templateCreditDeposit
	templateTransfer
	templateATMWithdrawal
	templateGeneric
)

func (k templateKind) String() string {
	switch k {
	case templateDebitCard:
		return "debit-card"
	case templateCreditCard:
		return "credit-card"
	case templateCreditDeposit:
		return "credit-deposit"
	case templateTransfer:
		return "transfer"
	case templateATMWithdrawal:
		return "atm-withdrawal"
	default:
		return "generic"
	}
}

// templateRule pairs a signature predicate with its extraction function.
type templateRule struct {
	match   func(string) bool
	extract func(string, *model.TransactionRecord)
	kind    templateKind
}

// Inline per-template patterns. These deliberately differ from the shared
// generic extractors (notably the card-suffix rules); merging them would
// change observable output.
var (
	debitCardSuffixPattern  = regexp.MustCompile(`(?i)debit card\s+XXX(\d{4})`)
	creditCardSuffixPattern = regexp.MustCompile(`(?i)(?:Cr\.Card\s+XXX|credit card.*?XXX)(\d{4})`)

	usedForAmountPattern  = regexp.MustCompile(`(?i)was used for\s+AED\s*([\d.]+)`)
	ofAEDAmountPattern    = regexp.MustCompile(`(?i)of\s+AED\s*([\d.]+)`)
	leadingAEDPattern     = regexp.MustCompile(`(?i)^AED\s*([\d.]+)`)
	transferAmountPattern = regexp.MustCompile(`(?i)^AED\s*([\d.]+)|of\s+AED\s*([\d.]+)`)
	anyAEDAmountPattern   = regexp.MustCompile(`(?i)AED\s+([\d.]+)|[\d.]+\s+AED`)
	bareNumberPattern     = regexp.MustCompile(`[\d.]+`)

	onToAtDatePattern      = regexp.MustCompile(`(?i)on\s+(.*?)\s+at`)
	onNumericDatePattern   = regexp.MustCompile(`on\s+(\d{1,2}/\d{1,2}/\d{4})`)
	onToVerbDatePattern    = regexp.MustCompile(`(?i)on\s+([^.]+?)\s+(?:was|at)`)
	onToEndDatePattern     = regexp.MustCompile(`(?i)on\s+([^.]+?)(?:\.|$)`)
	onLazyToEndDatePattern = regexp.MustCompile(`(?i)on\s+(.*?)(?:\.|$)`)
	genericDatePattern     = regexp.MustCompile(`(?i)(?:on|date)\s+(.*?)(?:at|$)`)

	afterAtMerchantPattern = regexp.MustCompile(`(?i)at\s+([^,]+)`)

	trailingCountryPattern   = regexp.MustCompile(`(?i),AE$`)
	trailingSeparatorPattern = regexp.MustCompile(`[,-]+$`)
)

// templateRules is evaluated in strict priority order; the first matching
// signature is final even if field extraction later misses.
var templateRules = []templateRule{
	{
		kind: templateDebitCard,
		match: func(m string) bool {
			return strings.Contains(m, "debit card") && strings.Contains(m, "was used for")
		},
		extract: extractDebitCard,
	},
	{
		kind: templateCreditCard,
		match: func(m string) bool {
			return (strings.Contains(m, "Cr.Card") || strings.Contains(m, "credit card")) &&
				strings.Contains(m, "was used for")
		},
		extract: extractCreditCard,
	},
	{
		kind: templateCreditDeposit,
		match: func(m string) bool {
			return strings.Contains(m, "Cr. transaction") ||
				(strings.Contains(strings.ToLower(m), "credit") && strings.Contains(m, "successful"))
		},
		extract: extractCreditDeposit,
	},
	{
		kind: templateTransfer,
		match: func(m string) bool {
			return strings.Contains(m, "transferred") || strings.Contains(m, "transfer")
		},
		extract: extractTransfer,
	},
	{
		kind: templateATMWithdrawal,
		match: func(m string) bool {
			return strings.Contains(m, "withdrawn") && strings.Contains(m, "ATM")
		},
		extract: extractATMWithdrawal,
	},
	{
		kind:    templateGeneric,
		match:   func(string) bool { return true },
		extract: extractGeneric,
	},
}

// routeMessage dispatches the message to the first matching template and
// applies the shared post-processing. It never fails: missing fields stay
// zero/empty and the validation layer decides what to do about them.
func routeMessage(message string, now func() time.Time) model.TransactionRecord {
	record := model.TransactionRecord{
		Type:     model.TypeDebit,
		Currency: DefaultCurrency,
		Raw:      message,
	}

	for _, rule := range templateRules {
		if rule.match(message) {
			rule.extract(message, &record)
			break
		}
	}

	// Never leave the date blank.
	if record.Date == "" {
		record.Date = now().Format("2006-01-02")
	}

	record.Merchant = cleanMerchant(record.Merchant)
	record.Category = Categorize(record.Merchant)

	return record
}

// "Your debit card XXX9098 linked to acc. XXX910001 was used for AED15.75
// on Feb 16 2026  8:52PM at OOTTUPURA RESTA,AE"
func extractDebitCard(message string, record *model.TransactionRecord) {
	record.Type = model.TypeDebit

	if m := debitCardSuffixPattern.FindStringSubmatch(message); m != nil {
		record.CardLast4 = m[1]
	}
	if m := usedForAmountPattern.FindStringSubmatch(message); m != nil {
		record.Amount = parseNumber(m[1])
	}
	if m := onToAtDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}
	if m := afterAtMerchantPattern.FindStringSubmatch(message); m != nil {
		record.Merchant = strings.TrimSpace(m[1])
	}
}

// "Your Cr.Card XXX5186 was used for AED10.00 on 17/02/2026 17:27:35 at
// NEW GRILL LAND REST,DUBAI-AE"
func extractCreditCard(message string, record *model.TransactionRecord) {
	// Card spending is a debit regardless of which card was used.
	record.Type = model.TypeDebit

	if m := creditCardSuffixPattern.FindStringSubmatch(message); m != nil {
		record.CardLast4 = m[1]
	}
	if m := usedForAmountPattern.FindStringSubmatch(message); m != nil {
		record.Amount = parseNumber(m[1])
	}
	if m := onNumericDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}
	if m := afterAtMerchantPattern.FindStringSubmatch(message); m != nil {
		record.Merchant = strings.TrimSpace(m[1])
	}
}

// "A Cr. transaction of AED 2100.00 on your account no. XXX910001 was
// successful"
func extractCreditDeposit(message string, record *model.TransactionRecord) {
	record.Type = model.TypeCredit

	if m := ofAEDAmountPattern.FindStringSubmatch(message); m != nil {
		record.Amount = parseNumber(m[1])
	}

	m := onToVerbDatePattern.FindStringSubmatch(message)
	if m == nil {
		m = onToEndDatePattern.FindStringSubmatch(message)
	}
	if m != nil {
		record.Date = NormalizeDate(m[1])
	}

	// Direct credits carry no named counterparty.
	record.Merchant = "Bank Credit"
}

// "AED2067.00 transferred via ADCB Personal Internet Banking / Mobile App
// from acc. no. XXX910001 on Feb 16 2026 10:53PM"
func extractTransfer(message string, record *model.TransactionRecord) {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "transfer out") || strings.Contains(lower, "transferred via") {
		record.Type = model.TypeDebit
	} else {
		record.Type = model.TypeCredit
	}

	if m := transferAmountPattern.FindStringSubmatch(message); m != nil {
		if m[1] != "" {
			record.Amount = parseNumber(m[1])
		} else {
			record.Amount = parseNumber(m[2])
		}
	}

	if m := onLazyToEndDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}

	record.Merchant = "Bank Transfer"
}

// "AED200.00 withdrawn from acc. XXX910001 on Feb  5 2026 12:57PM at
// ATM-EMIRATES BANK INTL    DUB"
func extractATMWithdrawal(message string, record *model.TransactionRecord) {
	record.Type = model.TypeDebit

	if m := leadingAEDPattern.FindStringSubmatch(message); m != nil {
		record.Amount = parseNumber(m[1])
	}
	if m := onToAtDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}

	record.Merchant = "ATM Withdrawal"
}

// Fallback when no signature matched: scrape for an amount and a date
// anywhere in the message.
func extractGeneric(message string, record *model.TransactionRecord) {
	if m := anyAEDAmountPattern.FindStringSubmatch(message); m != nil {
		if m[1] != "" {
			record.Amount = parseNumber(m[1])
		} else if num := bareNumberPattern.FindString(m[0]); num != "" {
			record.Amount = parseNumber(num)
		}
	}

	if m := genericDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}

	record.Merchant = "Transaction"
}

// cleanMerchant strips the trailing country suffix and dangling
// separators left behind by the capture rules.
func cleanMerchant(merchant string) string {
	merchant = trailingCountryPattern.ReplaceAllString(merchant, "")
	merchant = trailingSeparatorPattern.ReplaceAllString(merchant, "")
	return strings.TrimSpace(merchant)
}

func parseNumber(s string) float64 {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount
}
