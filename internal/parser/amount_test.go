package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnExtractAmount_ShouldStripMarkersAndSeparators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$12.50", "12.50"},
		{"₹12", "12"},
		{"Rs. 12", "12"},
		{"12.50", "12.50"},
		{"1,200.50", "1200.50"},
		{"USD 42", "42"},
		{"INR 1,500", "1500"},
		{"spent $8.50 at the cafe", "8.50"},
		{"amount: Rs. 330", "330"},
	}

	for _, tt := range tests {
		got, ok := extractAmount(tt.input)
		assert.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func Test_OnExtractAmount_ShouldReportAbsenceWhenNoNumber(t *testing.T) {
	for _, input := range []string{"", "no digits here", "$ only"} {
		got, ok := extractAmount(input)
		assert.False(t, ok, input)
		assert.Empty(t, got, input)
	}
}
