// Package parser turns loosely structured expense text into draft records.
//
// Two entry points share the same extraction primitives: ParseSemanticInput
// handles a single short phrase typed by a user ("$15 lunch at subway with
// card") and ParseTransactionText handles pasted multi-line bank or payment
// notification text. Both are pure functions over their input; classification
// is best-effort keyword and regexp matching, not language understanding.
package parser

// Draft is a partially filled expense candidate produced by semantic parsing.
// An empty field means the matching extractor found nothing; callers are
// expected to supply their own defaults before persisting.
type Draft struct {
	Amount        string
	Category      string
	PaymentMethod string
	Description   string
}

// Record is a fully populated expense candidate produced by transaction
// parsing. Amount always parses to a strictly positive number and Date is a
// canonical YYYY-MM-DD string.
type Record struct {
	Amount        string
	Category      string
	PaymentMethod string
	Description   string
	Date          string
}

const dateLayout = "2006-01-02"
