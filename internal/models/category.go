package models

// CategoryUncategorized is the literal label assigned when the statistical
// fallback cannot produce a category. It is never part of the rule table.
const CategoryUncategorized = "Uncategorized"

// CategoryRule maps a category name to an ordered list of lowercase keyword
// substrings. Table order matters: the first category with a matching keyword
// wins, so more specific categories must be enumerated before general ones
// ("amazon prime" under Entertainment before "amazon" under Shopping).
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RulesConfig is the YAML document shape for a category rule file.
type RulesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}

// Default category names, in enumeration order.
const (
	CategoryFood          = "Food & Dining"
	CategoryEntertainment = "Entertainment"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryUtilities     = "Utilities"
	CategoryHousing       = "Housing"
	CategoryHealthcare    = "Healthcare"
	CategoryIncome        = "Income"
)

// DefaultRules returns the compiled-in rule table, used when no categories
// file is configured. Keywords are lowercase; matching is case-insensitive
// because descriptions are normalized before the rule pass.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Name: CategoryFood, Keywords: []string{
			"whole foods", "trader joe", "safeway", "restaurant", "cafe", "coffee",
		}},
		{Name: CategoryEntertainment, Keywords: []string{
			"netflix", "spotify", "hulu", "amazon prime", "movie", "theater",
		}},
		{Name: CategoryTransport, Keywords: []string{
			"uber", "lyft", "taxi", "gas", "fuel", "parking",
		}},
		{Name: CategoryShopping, Keywords: []string{
			"amazon", "target", "walmart", "costco",
		}},
		{Name: CategoryUtilities, Keywords: []string{
			"electricity", "water", "internet", "phone",
		}},
		{Name: CategoryHousing, Keywords: []string{
			"rent", "mortgage", "property tax", "home insurance",
		}},
		{Name: CategoryHealthcare, Keywords: []string{
			"pharmacy", "doctor", "hospital", "medical",
		}},
		{Name: CategoryIncome, Keywords: []string{
			"salary", "deposit", "transfer in",
		}},
	}
}

// CategoryNames returns the category names of a rule table in enumeration
// order. The statistical fallback maps cluster indices onto this slice.
func CategoryNames(rules []CategoryRule) []string {
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}
