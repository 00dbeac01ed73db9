package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnExtractDate_ShouldNormalizeSupportedShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3/15/2025", "2025-03-15"},
		{"2025-03-15", "2025-03-15"},
		{"15-3-2025", "2025-03-15"},
		{"Jan 15, 2025", "2025-01-15"},
		{"Jan 15 2025", "2025-01-15"},
		{"on 3/15/2025", "2025-03-15"},
		{"date: 3/15/2025", "2025-03-15"},
		{"charged on 01/15/2025 at noon", "2025-01-15"},
	}

	for _, tt := range tests {
		got, ok := extractDate(tt.input)
		assert.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func Test_OnExtractDate_ShouldTreatInvalidCalendarDatesAsAbsent(t *testing.T) {
	inputs := []string{
		"13/45/2025", // month 13
		"2025-13-05", // month 13, ISO shape
		"30-2-2025",  // February 30th
		"no date here",
		"",
	}

	for _, input := range inputs {
		got, ok := extractDate(input)
		assert.False(t, ok, input)
		assert.Empty(t, got, input)
	}
}

func Test_OnExtractDate_ShouldPreferSlashShapeOverLaterShapes(t *testing.T) {
	got, ok := extractDate("1/2/2025 and 2025-03-04")
	assert.True(t, ok)
	assert.Equal(t, "2025-01-02", got)
}
