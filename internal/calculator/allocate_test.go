package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/godutch/internal/models"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.LineItem
		tax          float64
		tip          float64
		validateFunc func(t *testing.T, a Allocation)
	}{
		{
			name: "two items proportional tax and tip",
			items: []models.LineItem{
				{ID: 1, Name: "Person 1", Subtotal: 3},
				{ID: 2, Name: "Person 2", Subtotal: 5},
			},
			tax: 0.8,
			tip: 1.2,
			validateFunc: func(t *testing.T, a Allocation) {
				// item1: 3/8 of 0.8 = 0.3, 3/8 of 1.2 = 0.45, total 3.75
				// item2: 5/8 of 0.8 = 0.5, 5/8 of 1.2 = 0.75, total 6.25
				want := []ItemShare{
					{ID: 1, Subtotal: 3, Tax: 0.3, Tip: 0.45, Total: 3.75},
					{ID: 2, Subtotal: 5, Tax: 0.5, Tip: 0.75, Total: 6.25},
				}
				for i, w := range want {
					got := a.Items[i]
					if got.ID != w.ID {
						t.Errorf("item %d id = %d, want %d", i, got.ID, w.ID)
					}
					if math.Abs(got.Tax-w.Tax) > 1e-9 {
						t.Errorf("item %d tax = %v, want %v", i, got.Tax, w.Tax)
					}
					if math.Abs(got.Tip-w.Tip) > 1e-9 {
						t.Errorf("item %d tip = %v, want %v", i, got.Tip, w.Tip)
					}
					if math.Abs(got.Total-w.Total) > 1e-9 {
						t.Errorf("item %d total = %v, want %v", i, got.Total, w.Total)
					}
				}
				if FormatAmount(a.Totals.Bill) != "10.00" {
					t.Errorf("bill = %s, want 10.00", FormatAmount(a.Totals.Bill))
				}
			},
		},
		{
			name: "zero subtotals give zero shares",
			items: []models.LineItem{
				{ID: 1, Subtotal: 0},
				{ID: 2, Subtotal: 0},
			},
			tax: 5,
			tip: 3,
			validateFunc: func(t *testing.T, a Allocation) {
				for _, item := range a.Items {
					if item.Tax != 0 || item.Tip != 0 || item.Total != 0 {
						t.Errorf("item %d = %+v, want all zero", item.ID, item)
					}
				}
				if a.Totals.Bill != 0 {
					t.Errorf("bill = %v, want 0", a.Totals.Bill)
				}
			},
		},
		{
			name:  "no items",
			items: nil,
			tax:   5,
			tip:   3,
			validateFunc: func(t *testing.T, a Allocation) {
				if len(a.Items) != 0 {
					t.Errorf("got %d items, want 0", len(a.Items))
				}
				if a.Totals != (Totals{}) {
					t.Errorf("totals = %+v, want zero", a.Totals)
				}
			},
		},
		{
			name: "shares sum to pooled amounts",
			items: []models.LineItem{
				{ID: 1, Subtotal: 12.99},
				{ID: 2, Subtotal: 7.01},
				{ID: 3, Subtotal: 33.33},
				{ID: 4, Subtotal: 0},
			},
			tax: 4.71,
			tip: 9.99,
			validateFunc: func(t *testing.T, a Allocation) {
				var tax, tip, total float64
				for _, item := range a.Items {
					tax += item.Tax
					tip += item.Tip
					total += item.Total
				}
				if math.Abs(tax-4.71) > 1e-9 {
					t.Errorf("sum of tax shares = %v, want 4.71", tax)
				}
				if math.Abs(tip-9.99) > 1e-9 {
					t.Errorf("sum of tip shares = %v, want 9.99", tip)
				}
				if math.Abs(total-a.Totals.Bill) > 1e-9 {
					t.Errorf("sum of item totals = %v, want bill %v", total, a.Totals.Bill)
				}
				if a.Items[3].Total != 0 {
					t.Errorf("zero item total = %v, want 0", a.Items[3].Total)
				}
			},
		},
		{
			name: "negative subtotal counts as zero",
			items: []models.LineItem{
				{ID: 1, Subtotal: 5},
				{ID: 2, Subtotal: -5},
			},
			tax: 5,
			tip: 0,
			validateFunc: func(t *testing.T, a Allocation) {
				// Without clamping the total would be 0 and the shares ±25.
				if math.Abs(a.Items[0].Tax-5) > 1e-9 {
					t.Errorf("item 1 tax = %v, want 5", a.Items[0].Tax)
				}
				if a.Items[1].Subtotal != 0 || a.Items[1].Tax != 0 || a.Items[1].Total != 0 {
					t.Errorf("item 2 = %+v, want all zero", a.Items[1])
				}
				if a.Totals.Subtotal != 5 || math.Abs(a.Totals.Bill-10) > 1e-9 {
					t.Errorf("totals = %+v, want subtotal 5 and bill 10", a.Totals)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Allocate(tt.items, tt.tax, tt.tip)
			tt.validateFunc(t, a)
		})
	}
}

func TestAllocate_DoesNotRoundBeforeSumming(t *testing.T) {
	// Three equal items each get 1/3 of 0.10. Rounding each share first
	// would total 0.09.
	items := []models.LineItem{{ID: 1, Subtotal: 1}, {ID: 2, Subtotal: 1}, {ID: 3, Subtotal: 1}}
	a := Allocate(items, 0.10, 0)
	if FormatAmount(a.Totals.Tax) != "0.10" {
		t.Errorf("total tax = %s, want 0.10", FormatAmount(a.Totals.Tax))
	}
	if FormatAmount(a.Items[0].Tax) != "0.03" {
		t.Errorf("item tax = %s, want 0.03", FormatAmount(a.Items[0].Tax))
	}
}
