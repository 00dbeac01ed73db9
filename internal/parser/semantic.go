package parser

import (
	"regexp"
	"strings"
)

// A single amount token at the start of the phrase, optionally prefixed by a
// currency symbol. Only this leading token is stripped from the description.
var leadingAmount = regexp.MustCompile(`^[$₹]?\d+(?:\.\d{2})?\s*`)

// ParseSemanticInput extracts a partial expense draft from one short typed
// phrase. Fields the extractors cannot fill stay empty: this parser never
// assigns the "Other" label, absence is left as absence.
func ParseSemanticInput(input string) Draft {
	var draft Draft

	if amount, ok := extractAmount(input); ok {
		draft.Amount = amount
	}

	lowered := strings.ToLower(input)
	if category, ok := semanticCategories.classify(lowered); ok {
		draft.Category = category
	}
	if payment, ok := semanticPayments.classify(lowered); ok {
		draft.PaymentMethod = payment
	}

	desc := leadingAmount.ReplaceAllString(input, "")
	desc = strings.TrimSpace(whitespace.ReplaceAllString(desc, " "))
	if desc == "" {
		desc = strings.TrimSpace(input)
	}
	draft.Description = desc

	return draft
}
