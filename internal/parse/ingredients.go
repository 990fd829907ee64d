package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxIngredients caps parsed and validated ingredient lists.
const maxIngredients = 50

// ingredientKeywords are the bilingual section headers that open an
// ingredient list on packaging, with the common European-language variants.
var ingredientKeywords = []string{
	"ingredients", "مكونات", "ingrédients", "ingredientes",
	"zutaten", "ingredienti", "składniki",
}

var (
	// ingredientSeparators splits a line into tokens: comma, semicolon,
	// their Arabic variants, and line breaks.
	ingredientSeparators = regexp.MustCompile(`[,;،؛\n\r]`)

	leadingPunct  = regexp.MustCompile(`^[-:\s]+`)
	trailingPunct = regexp.MustCompile(`[-:\s]+$`)
	allDigits     = regexp.MustCompile(`^[0-9]+$`)
	spaceRun      = regexp.MustCompile(`\s+`)

	// ingredientCleaner strips everything outside letters, digits,
	// underscores, whitespace, hyphens, parentheses, and percent signs —
	// the characters the validator later admits; this clears most stray
	// OCR artifacts without touching Arabic script.
	ingredientCleaner = regexp.MustCompile(`[^\p{L}\p{N}_\s\-()%]`)
)

// Ingredients converts free OCR text into an ordered, deduplicated list of
// ingredient names.
//
// The parser is a two-state machine over the lines of the text. It scans
// for a line containing one of the bilingual section-header keywords; any
// text after the keyword on that line is the first batch of tokens, and
// every subsequent line is tokenized and collected. There is no end-of-
// section marker, so once collecting starts it never stops — trailing
// nutrition-panel text that follows an ingredient block with no separator
// will be collected too, and downstream validation compensates.
//
// If no header line is found the result is empty: guessing ingredients out
// of unstructured panel clutter produces worse false positives than
// returning nothing.
//
// Output entries keep their first-seen casing, deduplicate
// case-insensitively, and are capped at 50.
func Ingredients(text string) []string {
	collected := make([]string, 0)
	if text == "" {
		return collected
	}

	collecting := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)

		// Header lines always restart token extraction after the keyword,
		// even when already collecting.
		if idx, kw := findKeyword(lower); idx >= 0 {
			collecting = true
			if after := idx + len(kw); after < len(line) {
				collected = append(collected, tokenizeIngredients(line[after:])...)
			}
			continue
		}

		if collecting {
			collected = append(collected, tokenizeIngredients(line)...)
		}
	}

	return dedupeIngredients(collected)
}

// findKeyword returns the byte offset and matched keyword of the first
// section header found in a lower-cased line, or (-1, "").
func findKeyword(lower string) (int, string) {
	for _, kw := range ingredientKeywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			return idx, kw
		}
	}
	return -1, ""
}

// tokenizeIngredients splits a line on the separator class, trims edge
// punctuation, and drops empty or purely numeric tokens.
func tokenizeIngredients(s string) []string {
	tokens := make([]string, 0)

	for _, tok := range ingredientSeparators.Split(s, -1) {
		tok = strings.TrimSpace(tok)
		tok = leadingPunct.ReplaceAllString(tok, "")
		tok = trailingPunct.ReplaceAllString(tok, "")
		if tok == "" || allDigits.MatchString(tok) {
			continue
		}

		tok = spaceRun.ReplaceAllString(tok, " ")
		if utf8.RuneCountInString(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// dedupeIngredients cleans residual punctuation out of each token, then
// deduplicates case-insensitively keeping the first-seen casing and order,
// capped at maxIngredients.
func dedupeIngredients(items []string) []string {
	unique := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		clean := strings.TrimSpace(ingredientCleaner.ReplaceAllString(item, ""))
		if utf8.RuneCountInString(clean) <= 2 {
			continue
		}

		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true

		unique = append(unique, clean)
		if len(unique) == maxIngredients {
			break
		}
	}

	return unique
}
