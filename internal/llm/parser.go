package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

var (
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cardLast4Pattern = regexp.MustCompile(`^\d{4}$`)
)

// parseResponse validates the model output as a strict transaction record.
// Model output is untrusted: every field is checked against the same
// contract the deterministic engine guarantees.
func parseResponse(raw string, message string) (model.TransactionRecord, error) {
	clean := cleanModelJSON(raw)

	var payload struct {
		Date      string  `json:"date"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
		Type      string  `json:"type"`
		Merchant  string  `json:"merchant"`
		CardLast4 string  `json:"card_last4"`
		Category  string  `json:"category"`
	}

	decoder := json.NewDecoder(strings.NewReader(clean))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: %w", err)
	}

	if !isoDatePattern.MatchString(payload.Date) {
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: bad date %q", payload.Date)
	}
	if payload.Amount <= 0 {
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: non-positive amount %v", payload.Amount)
	}
	if len(payload.Currency) != 3 {
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: bad currency %q", payload.Currency)
	}
	if payload.CardLast4 != "" && !cardLast4Pattern.MatchString(payload.CardLast4) {
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: bad card suffix %q", payload.CardLast4)
	}

	txnType := model.TransactionType(payload.Type)
	switch txnType {
	case model.TypeCredit, model.TypeDebit:
	default:
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: unknown type %q", payload.Type)
	}

	category := model.Category(payload.Category)
	switch category {
	case model.CategoryGroceries, model.CategoryShopping, model.CategoryFuel,
		model.CategoryFood, model.CategoryOther:
	case "":
		category = model.CategoryOther
	default:
		return model.TransactionRecord{}, fmt.Errorf("invalid model response: unknown category %q", payload.Category)
	}

	return model.TransactionRecord{
		Date:      payload.Date,
		Amount:    payload.Amount,
		Currency:  strings.ToUpper(payload.Currency),
		Type:      txnType,
		Merchant:  payload.Merchant,
		CardLast4: payload.CardLast4,
		Category:  category,
		Raw:       message,
	}, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk if the model
// ignored the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only the outermost object if junk surrounds it.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
