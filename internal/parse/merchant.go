package parse

import (
	"regexp"
	"strings"
)

// Positional merchant heuristics, tried in order. First match wins.
var (
	merchantAtPattern      = regexp.MustCompile(`(?i)at\s+([A-Za-z0-9&\s'-]+?)(?:\s+on|\s+using|\s+with|$)`)
	merchantViaPattern     = regexp.MustCompile(`(?i)via\s+([A-Za-z0-9&\s'/-]+?)(?:\s+from|\s+on|\s+using|\s+with|$)`)
	merchantLeadingPattern = regexp.MustCompile(`(?i)^([A-Z][A-Za-z0-9&\s'-]+?)(?:\s+transferred|\s+spent|\s+purchase)`)
)

// ExtractMerchant extracts a merchant or payee name from the message text.
// It looks for text after "at", then after "via", then for a capitalized
// leading phrase before a transaction verb. Returns the empty string when
// no heuristic applies; the caller supplies a domain placeholder.
func ExtractMerchant(message string) string {
	if m := merchantAtPattern.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := merchantViaPattern.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := merchantLeadingPattern.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}
