package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// latinIngredient permits Latin letters with spaces, hyphens,
	// parentheses, digits, and percent signs (e.g. "cocoa solids (70%)").
	latinIngredient = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s\-()%]*$`)

	// arabicIngredient permits Arabic-range characters with the same
	// structural punctuation.
	arabicIngredient = regexp.MustCompile(`^[\p{Arabic}][\p{Arabic}0-9\s\-()%]*$`)
)

// ValidateNutrition drops nutrient values that fall outside their plausible
// per-100g range.
//
// Values are dropped, never clamped: an implausible reading is evidence of
// an OCR misread, not a measurement worth salvaging. Keys outside the known
// vocabulary pass through when non-negative but are not range-checked.
// The input map is not modified.
func ValidateNutrition(facts map[string]float64) map[string]float64 {
	validated := make(map[string]float64, len(facts))

	for key, value := range facts {
		if rule, ok := ruleFor(key); ok {
			if value >= rule.Min && value <= rule.Max {
				validated[key] = value
			}
			continue
		}
		if value >= 0 {
			validated[key] = value
		}
	}

	return validated
}

// ValidateIngredients keeps entries that look like real ingredient names:
// length strictly between 2 and 100 characters after trimming, written in
// either the Latin or the Arabic permitted character class. Ill-formed
// entries are dropped silently. The result is capped at 50 entries.
func ValidateIngredients(items []string) []string {
	validated := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)

		n := utf8.RuneCountInString(item)
		if n <= 2 || n >= 100 {
			continue
		}
		if !latinIngredient.MatchString(item) && !arabicIngredient.MatchString(item) {
			continue
		}

		validated = append(validated, item)
		if len(validated) == maxIngredients {
			break
		}
	}

	return validated
}
