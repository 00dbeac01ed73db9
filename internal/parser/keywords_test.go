package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnClassify_ShouldReturnFirstDeclaredLabel(t *testing.T) {
	// "parking" (Transportation) appears before "lunch" (Food & Dining) in
	// the text, but Food & Dining is declared first in the table and wins.
	label, ok := semanticCategories.classify("parking ticket before lunch")
	assert.True(t, ok)
	assert.Equal(t, CategoryFood, label)

	// same text order reversed, same outcome
	label, ok = semanticCategories.classify("lunch then parking")
	assert.True(t, ok)
	assert.Equal(t, CategoryFood, label)
}

func Test_OnClassify_ShouldMatchSubstringsInsideWords(t *testing.T) {
	// substring matching is a documented limitation: "gas" matches inside
	// "gasoline"
	label, ok := semanticCategories.classify("gasoline refill")
	assert.True(t, ok)
	assert.Equal(t, CategoryTransport, label)
}

func Test_OnClassify_ShouldReportNoMatch(t *testing.T) {
	label, ok := semanticCategories.classify("zzz qqq")
	assert.False(t, ok)
	assert.Empty(t, label)
}

func Test_OnEnhancedTables_ShouldKnowRegionalBrands(t *testing.T) {
	label, ok := enhancedCategories.classify("swiggy order delivered")
	assert.True(t, ok)
	assert.Equal(t, CategoryFood, label)

	label, ok = enhancedPayments.classify("paid via phonepe")
	assert.True(t, ok)
	assert.Equal(t, PaymentDigitalWallet, label)
}

func Test_OnEnhancedPayments_ShouldResolveCardByDeclarationOrder(t *testing.T) {
	// "credit" is a Credit Card keyword and Credit Card is declared first,
	// even though the text also contains Debit Card keywords
	label, ok := enhancedPayments.classify("debit and credit on one slip")
	assert.True(t, ok)
	assert.Equal(t, PaymentCreditCard, label)
}
