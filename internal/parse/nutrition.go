package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// NutrientRule binds one nutrient key to its recognition pattern and its
// plausible value range. The table below is the single source of truth for
// both parsing and range validation, so adding a nutrient or a language
// synonym is a data change, not a code change.
type NutrientRule struct {
	// Key is the canonical nutrient identifier.
	Key string

	// Pattern recognizes the nutrient's English and Arabic label synonyms
	// followed by a numeric value and an optional unit suffix. Units are
	// matched but not converted: label values are taken as printed
	// (per 100g basis).
	Pattern *regexp.Regexp

	// Min and Max bound the humanly plausible value per 100g. Values
	// outside the range are evidence of an OCR misread, not a measurement.
	Min, Max float64
}

// nutrientRules covers the 14 tracked nutrition-facts fields. Patterns run
// against lower-cased text.
var nutrientRules = []NutrientRule{
	{Key: "energy", Pattern: regexp.MustCompile(`(?:energy|calories?|طاقة|سعرات)[:\s]*(\d+(?:\.\d+)?)\s*(?:kcal|cal|kj)?`), Min: 0, Max: 9000},
	{Key: "protein", Pattern: regexp.MustCompile(`(?:protein|بروتين)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "total_fat", Pattern: regexp.MustCompile(`(?:total\s*fat|fat|دهون)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "saturated_fat", Pattern: regexp.MustCompile(`(?:saturated\s*fat|دهون\s*مشبعة)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "trans_fat", Pattern: regexp.MustCompile(`(?:trans\s*fat|دهون\s*متحولة)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "cholesterol", Pattern: regexp.MustCompile(`(?:cholesterol|كوليسترول)[:\s]*(\d+(?:\.\d+)?)\s*(?:mg|milligrams?)?`), Min: 0, Max: 1000},
	{Key: "sodium", Pattern: regexp.MustCompile(`(?:sodium|صوديوم)[:\s]*(\d+(?:\.\d+)?)\s*(?:mg|milligrams?)?`), Min: 0, Max: 10000},
	{Key: "total_carbs", Pattern: regexp.MustCompile(`(?:total\s*carb|carbohydrate|كربوهيدرات)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "dietary_fiber", Pattern: regexp.MustCompile(`(?:dietary\s*fiber|fiber|fibre|ألياف)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "sugars", Pattern: regexp.MustCompile(`(?:total\s*sugars?|sugars?|سكر)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "added_sugars", Pattern: regexp.MustCompile(`(?:added\s*sugars?|سكر\s*مضاف)[:\s]*(\d+(?:\.\d+)?)\s*(?:g|gm|grams?)?`), Min: 0, Max: 100},
	{Key: "vitamin_c", Pattern: regexp.MustCompile(`(?:vitamin\s*c|فيتامين\s*ج)[:\s]*(\d+(?:\.\d+)?)\s*(?:mg|milligrams?)?`), Min: 0, Max: 1000},
	{Key: "calcium", Pattern: regexp.MustCompile(`(?:calcium|كالسيوم)[:\s]*(\d+(?:\.\d+)?)\s*(?:mg|milligrams?)?`), Min: 0, Max: 2000},
	{Key: "iron", Pattern: regexp.MustCompile(`(?:iron|حديد)[:\s]*(\d+(?:\.\d+)?)\s*(?:mg|milligrams?)?`), Min: 0, Max: 100},
}

// ruleFor looks up the rule for a nutrient key.
func ruleFor(key string) (NutrientRule, bool) {
	for _, rule := range nutrientRules {
		if rule.Key == key {
			return rule, true
		}
	}
	return NutrientRule{}, false
}

// NutrientKeys returns the canonical key vocabulary in table order.
func NutrientKeys() []string {
	keys := make([]string, len(nutrientRules))
	for i, rule := range nutrientRules {
		keys[i] = rule.Key
	}
	return keys
}

// Nutrition converts free OCR text into a mapping of nutrient key to
// numeric value.
//
// Each rule matches independently against the lower-cased text; only the
// first match per nutrient is kept, and a match is accepted only if its
// captured number parses as a non-negative float. Missing nutrients are
// absent from the map, never defaulted to zero. Range checking is a
// separate step (ValidateNutrition).
func Nutrition(text string) map[string]float64 {
	facts := make(map[string]float64)
	if text == "" {
		return facts
	}

	lower := strings.ToLower(text)

	for _, rule := range nutrientRules {
		m := rule.Pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || value < 0 {
			continue
		}
		facts[rule.Key] = value
	}

	return facts
}
