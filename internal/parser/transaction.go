package parser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Lines shorter than this are discarded as noise before any extraction runs.
const minLineLength = 10

const fallbackDescription = "Transaction"

// ParseTransactionText extracts one expense record per recognizable line of
// pasted bank, SMS or payment-notification text. Blank and too-short lines
// are dropped, as is any line without a detectable amount. Unmatched fields
// get fixed defaults: the "Other" label, today's date, a generic description.
// Output order matches input line order.
func ParseTransactionText(text string) []Record {
	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))

	for _, line := range lines {
		rec, ok := parseTransactionLine(strings.TrimSpace(line))
		if !ok {
			continue
		}
		// amount is mandatory and must be strictly positive; re-check what
		// extractAmount produced before emitting the record
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil || !amount.IsPositive() {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func parseTransactionLine(line string) (Record, bool) {
	if len(line) < minLineLength {
		return Record{}, false
	}

	amount, ok := extractAmount(line)
	if !ok {
		// a line with no detectable amount is not a transaction
		return Record{}, false
	}

	rec := Record{
		Amount:        amount,
		Category:      LabelOther,
		PaymentMethod: LabelOther,
		Date:          time.Now().Format(dateLayout),
	}

	if date, ok := extractDate(line); ok {
		rec.Date = date
	}

	desc, ok := extractMerchant(line)
	if !ok {
		desc = cleanupDescription(line)
	}
	if desc == "" {
		desc = fallbackDescription
	}
	rec.Description = desc

	lowered := strings.ToLower(line)
	if category, ok := enhancedCategories.classify(lowered); ok {
		rec.Category = category
	}
	if payment, ok := enhancedPayments.classify(lowered); ok {
		rec.PaymentMethod = payment
	}

	return rec, true
}
