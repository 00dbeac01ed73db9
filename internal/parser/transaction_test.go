package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseTransactionText_ShouldParseBankNotificationLine(t *testing.T) {
	records := ParseTransactionText("DEBIT CARD PURCHASE - STARBUCKS $8.50 on 01/15/2025")

	assert.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "8.50", rec.Amount)
	assert.Equal(t, "2025-01-15", rec.Date)
	assert.Equal(t, CategoryFood, rec.Category)
	assert.Equal(t, PaymentDebitCard, rec.PaymentMethod)
	assert.Equal(t, "STARBUCKS", rec.Description)
}

func Test_OnParseTransactionText_ShouldDropLinesWithoutAmount(t *testing.T) {
	text := "UPI payment to SWIGGY ₹350 on 3/15/2025\n" +
		"statement period closed without charges\n"

	records := ParseTransactionText(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "350", records[0].Amount)
	assert.Equal(t, "2025-03-15", records[0].Date)
}

func Test_OnParseTransactionText_ShouldExcludeNonPositiveAmounts(t *testing.T) {
	records := ParseTransactionText("$0 refund processed today")
	assert.Empty(t, records)
}

func Test_OnParseTransactionText_ShouldDropShortAndBlankLines(t *testing.T) {
	text := "\n$5 cab\n   \nATM WITHDRAWAL $60.00 at MAIN ST BRANCH\n"

	records := ParseTransactionText(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "60.00", records[0].Amount)
	assert.Equal(t, PaymentCash, records[0].PaymentMethod)
}

func Test_OnParseTransactionText_ShouldDefaultUnmatchedFields(t *testing.T) {
	records := ParseTransactionText("debited 740 ref 99871")

	assert.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "740", rec.Amount)
	assert.Equal(t, LabelOther, rec.Category)
	assert.Equal(t, time.Now().Format("2006-01-02"), rec.Date)
	assert.NotEmpty(t, rec.Description)
}

func Test_OnParseTransactionText_ShouldPreserveInputLineOrder(t *testing.T) {
	text := "DEBIT CARD PURCHASE - STARBUCKS $8.50 on 01/15/2025\n" +
		"UPI payment to SWIGGY ₹350 on 3/15/2025"

	records := ParseTransactionText(text)

	assert.Len(t, records, 2)
	assert.Equal(t, "8.50", records[0].Amount)
	assert.Equal(t, "350", records[1].Amount)
}

func Test_OnParseTransactionText_ShouldUseFallbackDescription(t *testing.T) {
	// nothing but an amount and a date survives cleanup
	records := ParseTransactionText("$1,200.00  01/15/2025")

	assert.Len(t, records, 1)
	assert.Equal(t, "1200.00", records[0].Amount)
	assert.Equal(t, "Transaction", records[0].Description)
}
