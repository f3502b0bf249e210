package textutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "trims whitespace and drops blank lines",
			input:    "  first line  \n\n\tsecond line\n   \nthird",
			expected: []string{"first line", "second line", "third"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			input:    " \n\t\n  ",
			expected: nil,
		},
		{
			name:     "single line without newline",
			input:    "only line",
			expected: []string{"only line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain number", input: "123.45", expected: "123.45"},
		{name: "dollar sign", input: "$123.45", expected: "123.45"},
		{name: "thousands separator", input: "$1,234.56", expected: "1234.56"},
		{name: "negative amount", input: "-$2,500.00", expected: "-2500"},
		{name: "surrounding whitespace", input: "  $90.00 ", expected: "90"},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty token", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
		})
	}
}

func TestStripLabels(t *testing.T) {
	labels := []string{"Beginning Balance", "Ending Balance"}
	assert.Equal(t, " $4,000.00", StripLabels("Beginning Balance $4,000.00", labels))
	assert.Equal(t, "no labels here", StripLabels("no labels here", labels))
}

func TestFirstWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "truncates to n words", input: "Zelle Payment From John", n: 1, expected: "Zelle"},
		{name: "two words", input: "spotify premium subscription", n: 2, expected: "spotify premium"},
		{name: "fewer words than n", input: "turo", n: 3, expected: "turo"},
		{name: "empty string", input: "", n: 2, expected: ""},
		{name: "collapses whitespace", input: "  a   b  c ", n: 2, expected: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstWords(tt.input, tt.n))
		})
	}
}
