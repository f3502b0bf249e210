// Package textutils provides text tokenization and amount extraction
// utilities shared by the extraction stages.
package textutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lines splits raw OCR text into trimmed, non-empty physical lines. Every
// extraction stage consumes this shared representation.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// CleanAmount strips currency formatting ($ and thousands separators) from a
// token so it can be parsed as a decimal number.
func CleanAmount(token string) string {
	token = strings.ReplaceAll(token, "$", "")
	token = strings.ReplaceAll(token, ",", "")
	return strings.TrimSpace(token)
}

// ParseAmount parses a currency token like "$1,234.56" into a decimal.
func ParseAmount(token string) (decimal.Decimal, error) {
	return decimal.NewFromString(CleanAmount(token))
}

// StripLabels removes each of the given label phrases from line.
func StripLabels(line string, labels []string) string {
	for _, label := range labels {
		line = strings.ReplaceAll(line, label, "")
	}
	return line
}

// FirstWords returns the first n whitespace-separated words of s, joined by
// single spaces. Fewer words are returned when s is shorter.
func FirstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
