package domain

import "strings"

// NormalizeHexCode canonicalizes a paint color hex code: surrounding space is
// trimmed, a missing leading '#' is added, and hex digits are uppercased.
// Accepts the 3- and 6-digit forms. Anything else fails validation.
func NormalizeHexCode(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")

	if len(s) != 3 && len(s) != 6 {
		return "", NewValidationError([]FieldViolation{
			{Field: "hexCode", Message: "hex code must have 3 or 6 hex digits"},
		})
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return "", NewValidationError([]FieldViolation{
				{Field: "hexCode", Message: "hex code contains a non-hex character"},
			})
		}
	}

	return "#" + strings.ToUpper(s), nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}
