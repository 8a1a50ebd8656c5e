package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders v with exactly two decimal places, rounding half away
// from zero (2.675 -> "2.68"). Use it only at presentation time.
func FormatAmount(v float64) string {
	if !isFinite(v) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// RoundAmount rounds v to cents with the same rule as FormatAmount.
func RoundAmount(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return toFloat(decimal.NewFromFloat(v).Round(2))
}

// ParseAmount parses user input such as "12.50", " 3 " or "$4.20".
// ok is false for anything that is not a finite, non-negative number.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseCost coerces go-dutch cost input: empty or invalid input is 0 and
// negative amounts are clamped to 0.
func ParseCost(raw string) float64 {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0
	}
	return math.Max(0, v)
}

// parseNumber accepts any finite number, negative included.
func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
