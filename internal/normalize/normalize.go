// Package normalize canonicalises user supplied names for lookups.
package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Name returns the lookup key for a player, map or faction name.
// The key is case folded with collapsed inner whitespace.
func Name(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
	"aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthNumber resolves a month token ("March", "mar", "03") to 1..12.
func MonthNumber(month string) (int, bool) {
	key := Name(month)
	if n, ok := months[key]; ok {
		return n, true
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}
