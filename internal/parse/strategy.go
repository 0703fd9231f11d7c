package parse

import (
	"context"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// TemplateExtractor is the default extraction strategy: template signature
// routing with inline per-template patterns and hardcoded AED currency.
type TemplateExtractor struct {
	now func() time.Time
}

// NewTemplateExtractor creates the template-routing extraction strategy.
func NewTemplateExtractor() *TemplateExtractor {
	return &TemplateExtractor{now: time.Now}
}

// Name implements service.Extractor.
func (e *TemplateExtractor) Name() string {
	return "template"
}

// Extract implements service.Extractor. It is pure string work and never
// fails; missing fields are left zero/empty for the validation layer.
func (e *TemplateExtractor) Extract(_ context.Context, message string) (model.TransactionRecord, error) {
	return routeMessage(message, e.now), nil
}

// GenericExtractor is the alternate strategy built from the shared leaf
// extractors. Unlike the template router it detects arbitrary currencies
// and uses the loose card-suffix rule.
type GenericExtractor struct {
	now func() time.Time
}

// NewGenericExtractor creates the shared-extractor composition strategy.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{now: time.Now}
}

// Name implements service.Extractor.
func (e *GenericExtractor) Name() string {
	return "generic"
}

// Extract implements service.Extractor.
func (e *GenericExtractor) Extract(_ context.Context, message string) (model.TransactionRecord, error) {
	amount, currency := ExtractAmountCurrency(message)

	record := model.TransactionRecord{
		Amount:    amount,
		Currency:  currency,
		Type:      DetectType(message),
		Merchant:  ExtractMerchant(message),
		CardLast4: ExtractCardLast4(message),
		Raw:       message,
	}

	if m := genericDatePattern.FindStringSubmatch(message); m != nil {
		record.Date = NormalizeDate(m[1])
	}
	if record.Date == "" {
		record.Date = e.now().Format("2006-01-02")
	}

	record.Merchant = cleanMerchant(record.Merchant)
	if record.Merchant == "" {
		record.Merchant = "Transaction"
	}
	record.Category = Categorize(record.Merchant)

	return record, nil
}
