// Package parse converts free OCR text from food labels into structured
// data: ordered ingredient lists, nutrient-value mappings, and a heuristic
// confidence score.
//
// All functions are pure: output is a deterministic function of the input
// text and the fixed bilingual vocabularies, with no state carried between
// calls. Malformed tokens and implausible values are dropped silently —
// parsing never fails on bad input.
//
// # Languages
//
// The grammar covers English and Arabic label text (plus common European
// spellings of the ingredients header). Nutrient recognition is driven by
// a single rule table binding each of the 14 tracked nutrient keys to its
// bilingual pattern and plausible value range, so new nutrients or
// languages are additive data changes.
//
// # Validation
//
// Range validation drops values, never clamps them: a sodium reading of
// 50000 mg/100g is a misread, not a number to coerce into range. Ingredient
// validation enforces per-script character classes and length bounds.
package parse
