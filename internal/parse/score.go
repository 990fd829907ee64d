package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foodKeywords is the bilingual vocabulary whose presence raises confidence
// in an extracted text block: real label text mentions these, OCR noise
// rarely does.
var foodKeywords = []string{
	"ingredients", "nutrition", "calories", "protein", "fat", "carb",
	"مكونات", "سعرات", "بروتين", "دهون", "كربوهيدرات",
	"vitamin", "mineral", "sodium", "sugar", "fiber",
}

// Score estimates the reliability of an extracted text block on a 0-100
// scale. It is a heuristic quality estimate, not a statistical probability.
//
// The formula:
//   - empty or fewer than 5 characters after trimming: 0
//   - fewer than 2 words: 20
//   - otherwise base = min(70, words*3), plus min(25, keywords*5) for
//     domain keywords found as substrings of words, minus
//     floor(specialCharRatio*30) where the ratio counts characters that
//     are neither letters, digits, nor whitespace (an OCR-noise proxy)
//
// The result is always clamped to [0, 100].
func Score(text string) int {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < 5 {
		return 0
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return 20
	}

	base := len(words) * 3
	if base > 70 {
		base = 70
	}

	keywordCount := 0
	for _, word := range words {
		lower := strings.ToLower(word)
		for _, kw := range foodKeywords {
			if strings.Contains(lower, kw) {
				keywordCount++
				break
			}
		}
	}
	bonus := keywordCount * 5
	if bonus > 25 {
		bonus = 25
	}

	special, total := 0, 0
	for _, r := range text {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '_' {
			special++
		}
	}
	penalty := int(float64(special) / float64(total) * 30)

	score := base + bonus - penalty
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
