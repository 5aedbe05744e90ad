package payment

import (
	"strconv"
	"strings"
)

// NormalizeExpiry splits "MM / YY" into month and a four digit year.
// Ranges are not checked; the gateway rejects bad values.
func NormalizeExpiry(raw string) (month, year string) {
	parts := strings.Split(raw, "/")
	month = stripSpaces(parts[0])
	if len(parts) > 1 {
		year = stripSpaces(parts[1])
	}

	if len(year) == 2 {
		if yy, err := strconv.Atoi(year); err == nil {
			year = strconv.Itoa(2000 + yy)
		}
	}
	return month, year
}

// NormalizeCardNumber removes every whitespace rune from the number.
func NormalizeCardNumber(raw string) string {
	return stripSpaces(raw)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
