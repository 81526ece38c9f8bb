package fintrack

import "strings"

// Categories are free text on expenses and budgets, and the same logical
// category shows up with different casing, punctuation, and wording
// ("Food & Dining", "food", "FOODDINING"). Canonicalization is the single
// predicate used by both the expense write path and the reconciliation
// sweep, so the two can never disagree on what matches.

// categorySynonyms maps canonical spellings of common variants to a single
// canonical form. Keys and values are already canonical (lowercase,
// punctuation and spacing stripped).
var categorySynonyms = map[string]string{
	"fooddining":     "food",
	"foodanddining":  "food",
	"dining":         "food",
	"diningout":      "food",
	"restaurants":    "food",
	"groceries":      "food",
	"transport":      "transportation",
	"travel":         "transportation",
	"commute":        "transportation",
	"rent":           "housing",
	"mortgage":       "housing",
	"utility":        "utilities",
	"bills":          "utilities",
	"billsutilities": "utilities",
	"medical":        "healthcare",
	"health":         "healthcare",
	"fun":            "entertainment",
	"leisure":        "entertainment",
	"salary":         "income",
	"wages":          "income",
}

// CanonicalCategory reduces a category string to its canonical form:
// lowercase, punctuation and spacing stripped, known synonyms folded.
func CanonicalCategory(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	c := b.String()
	if canonical, ok := categorySynonyms[c]; ok {
		return canonical
	}
	return c
}

// SameCategory reports whether two category strings name the same logical
// category once canonicalized.
func SameCategory(a, b string) bool {
	return CanonicalCategory(a) == CanonicalCategory(b)
}
