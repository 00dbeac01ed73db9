package parser

import (
	"regexp"
	"strings"
)

// Amount patterns are tried in declaration order; the first capture wins.
// Currency markers ($, ₹, Rs., USD, INR) are optional, so bare numbers match
// too. The matched number is taken at face value: no currency is inferred
// from the marker.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:\$|USD\s*|Rs\.?\s*|₹\s*|INR\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)amount[:\s]*(?:\$|USD\s*|Rs\.?\s*|₹\s*|INR\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)charged[:\s]*(?:\$|USD\s*|Rs\.?\s*|₹\s*|INR\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)debited[:\s]*(?:\$|USD\s*|Rs\.?\s*|₹\s*|INR\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
}

// extractAmount returns the first numeric match in text as a decimal string
// with thousands separators stripped.
func extractAmount(text string) (string, bool) {
	for _, re := range amountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ReplaceAll(m[1], ",", ""), true
		}
	}
	return "", false
}
