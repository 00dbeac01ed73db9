package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseSemanticInput_ShouldFillAllFields(t *testing.T) {
	draft := ParseSemanticInput("$15 lunch at subway with card")

	assert.Equal(t, "15", draft.Amount)
	assert.Equal(t, CategoryFood, draft.Category)
	// "card" belongs to the Debit Card keyword list; Credit Card's list has
	// no plain "card", so declaration order resolves the ambiguity this way
	assert.Equal(t, PaymentDebitCard, draft.PaymentMethod)
	assert.Equal(t, "lunch at subway with card", draft.Description)
}

func Test_OnParseSemanticInput_ShouldLeaveUnmatchedFieldsEmpty(t *testing.T) {
	draft := ParseSemanticInput("mystery payout")

	assert.Empty(t, draft.Amount)
	assert.Empty(t, draft.Category)
	assert.Empty(t, draft.PaymentMethod)
	assert.Equal(t, "mystery payout", draft.Description)
}

func Test_OnParseSemanticInput_ShouldNeverAssignOther(t *testing.T) {
	draft := ParseSemanticInput("$99 xyzzy")
	assert.Empty(t, draft.Category)
	assert.Empty(t, draft.PaymentMethod)
}

func Test_OnParseSemanticInput_ShouldFallBackToRawInputAsDescription(t *testing.T) {
	// stripping the leading amount leaves nothing, so the raw input stands
	draft := ParseSemanticInput("$15")
	assert.Equal(t, "$15", draft.Description)
}

func Test_OnParseSemanticInput_ShouldStripOnlyLeadingAmount(t *testing.T) {
	draft := ParseSemanticInput("₹250 groceries worth 250")
	assert.Equal(t, "250", draft.Amount)
	assert.Equal(t, "groceries worth 250", draft.Description)
}
