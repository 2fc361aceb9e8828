package service

import (
	"math"
	"strconv"
	"strings"
)

// roundTo2Decimals rounds a float64 to 2 decimals, halves away from zero.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatCurrency renders an amount as "$1,234.50": rounded to two decimals
// (halves away from zero), comma-grouped thousands, leading dollar sign.
// Negative amounts carry the sign before the symbol: "-$1,234.50".
func FormatCurrency(amount float64) string {
	rounded := roundTo2Decimals(amount)
	negative := rounded < 0

	s := strconv.FormatFloat(math.Abs(rounded), 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// FormatPercentage renders a decimal rate as "5.00%": multiplied by 100 and
// rounded to two decimals, halves away from zero.
func FormatPercentage(rate float64) string {
	return strconv.FormatFloat(roundTo2Decimals(rate*100), 'f', 2, 64) + "%"
}
