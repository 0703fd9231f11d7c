package parse

import "regexp"

// Loose rule: an optional lead-in word followed by exactly 4 digits. The
// template router overrides this with stricter per-template patterns so an
// account-number fragment is not mistaken for a card suffix.
var cardSuffixPattern = regexp.MustCompile(`(?i)(?:ending|card|number)?\s*(\d{4})`)

// ExtractCardLast4 extracts a 4-digit card suffix from the message, or
// returns the empty string when none is present.
func ExtractCardLast4(message string) string {
	if m := cardSuffixPattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}
