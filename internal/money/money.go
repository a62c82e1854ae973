// Package money handles fixed-point amounts. Amounts are stored as cents in
// an int64 so sums and per-category totals stay exact.
package money

import (
	"fmt"
	"math"
	"strings"
)

// Parse converts a decimal string such as "50", "7.5", or "-12.34" into
// cents. Fractional digits beyond the second are rounded half away from
// zero. Signs are accepted: the ledger does not reject negative or zero
// amounts.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("malformed amount")
	}

	var cents int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("malformed amount")
		}
		if cents > (math.MaxInt64-int64(r-'0'))/10 {
			return 0, fmt.Errorf("amount out of range")
		}
		cents = cents*10 + int64(r-'0')
	}
	// Leave headroom for the two fractional digits and the rounding carry.
	if cents > (math.MaxInt64-100)/100 {
		return 0, fmt.Errorf("amount out of range")
	}
	cents *= 100

	if hasFrac {
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("malformed amount")
			}
		}
		if len(fracPart) >= 1 {
			cents += int64(fracPart[0]-'0') * 10
		}
		if len(fracPart) >= 2 {
			cents += int64(fracPart[1] - '0')
		}
		if len(fracPart) >= 3 && fracPart[2] >= '5' {
			cents++
		}
	}

	if negative {
		cents = -cents
	}
	return cents, nil
}

// Format renders cents as a decimal string with two fractional digits,
// e.g. 5000 -> "50.00", -250 -> "-2.50".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
