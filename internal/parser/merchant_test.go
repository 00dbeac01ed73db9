package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnExtractMerchant_ShouldCapturePrepositionLedNames(t *testing.T) {
	name, ok := extractMerchant("Dinner at MCDONALDS $12.99")
	assert.True(t, ok)
	assert.Equal(t, "MCDONALDS", name)

	name, ok = extractMerchant("received from ACME CORP. 500 yesterday")
	assert.True(t, ok)
	assert.Equal(t, "ACME CORP.", name)
}

func Test_OnExtractMerchant_ShouldCaptureVerbLedNames(t *testing.T) {
	name, ok := extractMerchant("PURCHASE - STARBUCKS $8.50")
	assert.True(t, ok)
	assert.Equal(t, "STARBUCKS", name)

	name, ok = extractMerchant("PAYMENT AIRTEL #12345")
	assert.True(t, ok)
	assert.Equal(t, "AIRTEL", name)
}

func Test_OnExtractMerchant_ShouldReportNoMatchForPlainText(t *testing.T) {
	_, ok := extractMerchant("just some lowercase words")
	assert.False(t, ok)
}

func Test_OnCleanupDescription_ShouldStripAmountsAndDates(t *testing.T) {
	got := cleanupDescription("Grocery run  $45.20   1/5/2025 ")
	assert.Equal(t, "Grocery run", got)
}

func Test_OnCleanupDescription_ShouldBeIdempotent(t *testing.T) {
	inputs := []string{
		"Coffee $4.50 on 01/15/2025",
		"₹1,200.00 transferred",
		"Grocery run $45.20 1/5/2025",
		"nothing to strip here",
	}

	for _, input := range inputs {
		once := cleanupDescription(input)
		assert.Equal(t, once, cleanupDescription(once), input)
	}
}
