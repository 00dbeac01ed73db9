package parser

import (
	"regexp"
	"strings"
)

// Merchant patterns capture a merchant-like span following a preposition or
// a transaction verb, stopping before a currency, amount or hash token.
// Tried in order, first capture wins.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|from|to)\s+([A-Z][A-Z\s&.'-]+?)(?:\s+(?:\$|₹|\d+|on|dated|amount))`),
	regexp.MustCompile(`(?i)purchase\s*-?\s*([A-Z][A-Z\s&.'-]+?)(?:\s+(?:\$|₹|\d+|#))`),
	regexp.MustCompile(`(?i)payment\s*-?\s*([A-Z][A-Z\s&.'-]+?)(?:\s+(?:\$|₹|\d+|#))`),
	regexp.MustCompile(`(?i)transaction\s*-?\s*([A-Z][A-Z\s&.'-]+?)(?:\s+(?:\$|₹|\d+|#))`),
	regexp.MustCompile(`([A-Z][A-Z\s&.'-]{3,}?)(?:\s+(?:\$|₹|\d+|#))`),
}

var (
	amountToken = regexp.MustCompile(`[$₹]?\d+(?:,\d{3})*(?:\.\d{2})?`)
	dateToken   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	whitespace  = regexp.MustCompile(`\s+`)
)

func extractMerchant(line string) (string, bool) {
	for _, re := range merchantPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// cleanupDescription is the fallback when no merchant pattern matched:
// strip date-shaped and amount-shaped substrings, collapse whitespace, trim.
// Dates go first: the amount pattern would otherwise eat the digits of a
// date and leave slash residue behind. The result is stable under
// re-application.
func cleanupDescription(line string) string {
	s := dateToken.ReplaceAllString(line, "")
	s = amountToken.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
