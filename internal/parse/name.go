package parse

import (
	"strings"
	"unicode/utf8"
)

// nameExclusions are section headers that disqualify a line from being the
// product name.
var nameExclusions = []string{"ingredients", "nutrition", "مكونات"}

// ProductName guesses the product name from extracted label text.
//
// The name is usually among the first few printed lines and tends to be the
// longest of them. The heuristic considers the first five lines with a
// trimmed length between 6 and 99 characters that do not start with a
// section header, and picks the longest, breaking ties by earlier position.
// Returns "" when no line qualifies; callers choose their own fallback
// naming.
func ProductName(text string) string {
	best := ""
	bestLen := 0

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		n := utf8.RuneCountInString(line)
		if n <= 5 || n >= 100 {
			continue
		}

		lower := strings.ToLower(line)
		excluded := false
		for _, prefix := range nameExclusions {
			if strings.HasPrefix(lower, prefix) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		if n > bestLen {
			best = line
			bestLen = n
		}
	}

	return best
}
