package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var reNonNumeric = regexp.MustCompile(`[^0-9,.]`)

// ParsePrice parses a BRL price cell into a float. It never fails:
// blank, garbled or missing input yields 0, which downstream code
// treats as "unknown", never as a real price. The sheet mixes
// "R$ 1.234,56" and plain "19.99" styles; a comma in the cell means
// comma-decimal with period as thousands separator.
func ParsePrice(raw string) float64 {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0
	}
	text = strings.ToUpper(text)
	text = strings.TrimSpace(strings.ReplaceAll(text, "R$", ""))
	text = reNonNumeric.ReplaceAllString(text, "")
	text = normalizeSeparators(text)

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseSales parses a sales-count cell like "250", "1,5 mil" or "3k".
// Same total-function contract as ParsePrice: failures yield 0.
func ParseSales(raw string) int {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return 0
	}

	multiplier := 1.0
	if strings.Contains(text, "mil") || strings.Contains(text, "k") {
		multiplier = 1000
	}

	text = reNonNumeric.ReplaceAllString(text, "")
	text = normalizeSeparators(text)

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return int(value * multiplier)
}

func normalizeSeparators(text string) string {
	if strings.Contains(text, ",") {
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	}
	return text
}
