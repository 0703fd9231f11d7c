package parse

import (
	"strings"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

// Categorize maps a merchant name to a spending category using the static
// keyword table. Categories are tested in table order and the first
// keyword substring hit wins; no merchant or no match yields Other.
func Categorize(merchant string) model.Category {
	if merchant == "" {
		return model.CategoryOther
	}

	lower := strings.ToLower(merchant)

	for _, rule := range model.CategoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}

	return model.CategoryOther
}
