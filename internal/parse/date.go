// Package parse implements the deterministic SMS-to-transaction
// extraction engine.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	numericDatePattern  = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	dayMonthYearPattern = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-z]{3})\s+(\d{4})`)
	monthDayYearPattern = regexp.MustCompile(`(?i)([a-z]{3})\s+(\d{1,2})\s+(\d{4})`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// NormalizeDate parses a date fragment in one of the supported formats and
// returns it as YYYY-MM-DD:
//
//   - D-M-YYYY or D/M/YYYY
//   - D Mon YYYY (e.g. 15 Feb 2026)
//   - Mon D YYYY (e.g. Feb 16 2026)
//
// The first matching pattern wins. Calendar correctness is not validated;
// an unrecognized format returns the empty string, which callers must treat
// as "date unknown" rather than an error.
func NormalizeDate(fragment string) string {
	if fragment == "" {
		return ""
	}

	fragment = strings.TrimSpace(fragment)

	if m := numericDatePattern.FindStringSubmatch(fragment); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], padDay(m[2]), padDay(m[1]))
	}

	if m := dayMonthYearPattern.FindStringSubmatch(fragment); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[2])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, padDay(m[1]))
		}
	}

	if m := monthDayYearPattern.FindStringSubmatch(fragment); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, padDay(m[2]))
		}
	}

	return ""
}

func padDay(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
