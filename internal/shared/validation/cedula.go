// Package validation holds the form-level validators shared by every
// handler: Dominican cédula checksum, strict email syntax, and the
// per-field Spanish error messages the UI shows inline.
package validation

import "strings"

// cedulaMultipliers is the alternating 1-2 weight sequence applied to the
// 11 digits of a Dominican cédula.
var cedulaMultipliers = [11]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1}

// ValidateCedula reports whether s is a valid Dominican cédula. Separators
// (dashes and spaces) are stripped first; the remaining string must be
// exactly 11 digits whose weighted sum is divisible by 10. Two-digit
// products contribute the sum of their digits.
func ValidateCedula(s string) bool {
	if s == "" {
		return false
	}

	clean := strings.NewReplacer("-", "", " ", "").Replace(s)
	if len(clean) != 11 {
		return false
	}

	total := 0
	for i := 0; i < 11; i++ {
		d := clean[i]
		if d < '0' || d > '9' {
			return false
		}
		product := int(d-'0') * cedulaMultipliers[i]
		if product < 10 {
			total += product
		} else {
			total += product/10 + product%10
		}
	}

	return total%10 == 0
}

// FormatCedula strips every non-digit from raw, keeps at most 11 digits and
// re-inserts the XXX-XXXXXXX-X separators. Partial input yields partial
// formatting so the function can back a live input mask; it never errors.
func FormatCedula(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 11 {
				break
			}
		}
	}

	limited := digits.String()
	switch {
	case len(limited) >= 10:
		return limited[:3] + "-" + limited[3:10] + "-" + limited[10:]
	case len(limited) >= 3:
		return limited[:3] + "-" + limited[3:]
	default:
		return limited
	}
}
