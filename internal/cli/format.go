// Package cli provides argument parsing and rendering utilities for the
// godutch command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/mmynk/godutch/internal/calculator"
)

// Entry is one "Name=amount" argument. Name is empty for a bare amount.
type Entry struct {
	Name   string
	Amount float64
}

// FormatMoney formats an amount as dollars with two decimals.
// e.g., 3.745 -> "$3.75"
func FormatMoney(v float64) string {
	return "$" + calculator.FormatAmount(v)
}

// FormatPercent formats a percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// ParseEntries parses arguments of the form "Name=amount" or a bare amount.
// The amount may carry a leading "$". Names may contain spaces when quoted
// by the shell.
func ParseEntries(args []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			name, raw = "", arg
		}
		name = strings.TrimSpace(name)
		if ok && name == "" {
			return nil, fmt.Errorf("expected Name=amount, got %q", arg)
		}
		amount, ok := calculator.ParseAmount(raw)
		if !ok {
			return nil, fmt.Errorf("invalid amount in %q", arg)
		}
		entries = append(entries, Entry{Name: name, Amount: amount})
	}
	return entries, nil
}
