package metadata

import (
	"testing"

	"github.com/almasriprojects/BankAPI/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected Info
	}{
		{
			name: "labeled account number and period line",
			lines: []string{
				"JPMorgan Chase Bank, N.A.",
				"Account Number: 000001234567",
				"November 09, 2024 through December 10, 2024",
			},
			expected: Info{BankName: "chasebank", AccountNumber: "000001234567", Year: "2024", Month: "12"},
		},
		{
			name: "account label without colon",
			lines: []string{
				"Account Number 987654321",
				"January 01, 2025 through January 31, 2025",
			},
			expected: Info{BankName: "chasebank", AccountNumber: "987654321", Year: "2025", Month: "01"},
		},
		{
			name: "first account number wins",
			lines: []string{
				"Account Number: 111111111111",
				"Account Number: 222222222222",
			},
			expected: Info{BankName: "chasebank", AccountNumber: "111111111111"},
		},
		{
			name: "period requires through keyword",
			lines: []string{
				"December 10, 2024",
			},
			expected: Info{BankName: "chasebank"},
		},
		{
			name: "period requires month name",
			lines: []string{
				"11/09/2024 through 12/10/2024",
			},
			expected: Info{BankName: "chasebank"},
		},
		{
			name:     "no metadata at all",
			lines:    []string{"TRANSACTION DETAIL", "12/01 Something -50.00 100.00"},
			expected: Info{BankName: "chasebank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New("chasebank", logging.NewMockLogger())
			assert.Equal(t, tt.expected, e.Extract(tt.lines))
		})
	}
}

func TestExtractWarnsOnIncompleteMetadata(t *testing.T) {
	mock := logging.NewMockLogger()
	e := New("chasebank", mock)

	e.Extract([]string{"nothing useful here"})

	assert.True(t, mock.HasEntry("WARN", "Incomplete statement metadata"))
}

func TestExtractMonthMapping(t *testing.T) {
	tests := []struct {
		monthName string
		expected  string
	}{
		{"January", "01"},
		{"June", "06"},
		{"September", "09"},
		{"December", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.monthName, func(t *testing.T) {
			e := New("chasebank", logging.NewMockLogger())
			info := e.Extract([]string{
				"Some Start through " + tt.monthName + " 15, 2024",
			})
			assert.Equal(t, tt.expected, info.Month)
			assert.Equal(t, "2024", info.Year)
		})
	}
}
