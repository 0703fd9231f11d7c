package model

// CategoryRule maps a category to the lowercase merchant substrings that
// select it.
type CategoryRule struct {
	Category Category
	Keywords []string
}

// CategoryRules is the process-wide category keyword table. Order matters:
// categories are tested top to bottom and the first keyword hit wins.
var CategoryRules = []CategoryRule{
	{CategoryGroceries, []string{"carrefour", "lulu", "union", "safeway", "choithrams", "spinneys"}},
	{CategoryShopping, []string{"amazon", "noon", "shein", "h&m", "zara", "forever 21"}},
	{CategoryFuel, []string{"adnoc", "enoc", "shell", "bp"}},
	{CategoryFood, []string{"talabat", "deliveroo", "uber eats", "zomato", "restaurant"}},
}
