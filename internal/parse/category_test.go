package parse

import (
	"testing"

	"github.com/dirhamflow/dirhamflow/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		merchant string
		want     model.Category
	}{
		{"grocery chain", "CARREFOUR CITY CENTRE", model.CategoryGroceries},
		{"grocery lowercase", "carrefour", model.CategoryGroceries},
		{"online shopping", "Amazon.ae ORDER", model.CategoryShopping},
		{"fuel station", "ADNOC Service Station", model.CategoryFuel},
		{"food delivery", "TALABAT DUBAI", model.CategoryFood},
		{"restaurant keyword", "The Grand Restaurant", model.CategoryFood},
		{"unknown merchant", "OOTTUPURA RESTA", model.CategoryOther},
		{"empty merchant", "", model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.merchant); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.merchant, got, tt.want)
			}
		})
	}
}

func TestCategorize_TableOrder(t *testing.T) {
	// A merchant matching both Groceries and Shopping keywords resolves to
	// Groceries because the table is scanned in order.
	if got := Categorize("lulu amazon"); got != model.CategoryGroceries {
		t.Errorf("Categorize(%q) = %q, want %q", "lulu amazon", got, model.CategoryGroceries)
	}
}
