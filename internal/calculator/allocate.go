package calculator

import (
	"github.com/mmynk/godutch/internal/models"
)

// ItemShare is one line item's slice of the pooled tax and tip.
type ItemShare struct {
	ID       int64
	Name     string
	Subtotal float64
	Tax      float64
	Tip      float64
	Total    float64 // Subtotal + Tax + Tip
}

// Totals holds the column sums of an allocation.
type Totals struct {
	Subtotal float64
	Tax      float64
	Tip      float64
	Bill     float64 // Subtotal + Tax + Tip
}

// Allocation is the output of Allocate: one share per item, in input order,
// and the aggregate totals.
type Allocation struct {
	Items  []ItemShare
	Totals Totals
}

// Allocate distributes taxAmount and tipAmount across items in proportion to
// each item's share of the total subtotal.
// Based on: item_tax = item_subtotal / total_subtotal × tax_amount
//
// A zero total subtotal is replaced by 1 as the divisor, so a table whose
// subtotals have not been entered yet gets zero shares instead of NaN.
// Negative or non-finite subtotals count as 0, so they can neither cancel
// another row's subtotal nor take a negative share.
// Values keep full precision; round with FormatAmount only for display.
func Allocate(items []models.LineItem, taxAmount, tipAmount float64) Allocation {
	subtotals := make([]float64, len(items))
	var totalSubtotal float64
	for i, item := range items {
		subtotals[i] = clampSubtotal(item.Subtotal)
		totalSubtotal += subtotals[i]
	}

	divisor := totalSubtotal
	if divisor == 0 {
		divisor = 1
	}

	shares := make([]ItemShare, len(items))
	var totalTax, totalTip float64
	for i, item := range items {
		subtotal := subtotals[i]
		ratio := subtotal / divisor
		tax := ratio * taxAmount
		tip := ratio * tipAmount

		shares[i] = ItemShare{
			ID:       item.ID,
			Name:     item.Name,
			Subtotal: subtotal,
			Tax:      tax,
			Tip:      tip,
			Total:    subtotal + tax + tip,
		}
		totalTax += tax
		totalTip += tip
	}

	return Allocation{
		Items: shares,
		Totals: Totals{
			Subtotal: totalSubtotal,
			Tax:      totalTax,
			Tip:      totalTip,
			Bill:     totalSubtotal + totalTax + totalTip,
		},
	}
}

func clampSubtotal(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
