package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/models"
)

func TestParseEntries(t *testing.T) {
	entries, err := ParseEntries([]string{"Alice=30", "Bob=$10.50", " Carol = 0 "})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "Alice", Amount: 30},
		{Name: "Bob", Amount: 10.5},
		{Name: "Carol", Amount: 0},
	}, entries)
}

func TestParseEntries_BareAmounts(t *testing.T) {
	entries, err := ParseEntries([]string{"30", "Bob=10", "$20"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "", Amount: 30},
		{Name: "Bob", Amount: 10},
		{Name: "", Amount: 20},
	}, entries)
}

func TestParseEntries_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"name without amount", "Alice"},
		{"no name", "=30"},
		{"no amount", "Alice="},
		{"not a number", "Alice=lots"},
		{"negative", "Alice=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntries([]string{tt.arg})
			assert.Error(t, err)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$3.75", FormatMoney(3.745))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$1234.50", FormatMoney(1234.5))
	assert.Equal(t, "18.0%", FormatPercent(18))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "People",
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Alice", "$3.00"},
			{separatorRow},
			{"Total", "$13.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, header rule, row, separator, row, bottom
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "People")
	assert.Contains(t, lines[4], "Alice")
	assert.Contains(t, lines[6], "$13.00")

	// Every bordered line has the same visible width.
	for _, line := range lines[2:] {
		assert.Equal(t, len([]rune(lines[1])), len([]rune(line)), "line %q", line)
	}

	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderSettlement(t *testing.T) {
	s := calculator.SettleDetailed([]models.Participant{
		{Name: "Alice", AmountPaid: 30},
		{Name: "Bob", AmountPaid: 10},
		{Name: "Carol", AmountPaid: 20},
	})

	out := RenderSettlement(s)
	assert.Contains(t, out, "Bob pays Alice $10.00")
	assert.Contains(t, out, "+$10.00")
	assert.Contains(t, out, "-$10.00")
	assert.Contains(t, out, "share $20.00")
	assert.NotContains(t, out, "settled up")
}

func TestRenderSettlement_AllEven(t *testing.T) {
	s := calculator.SettleDetailed([]models.Participant{
		{Name: "Alice", AmountPaid: 15},
		{Name: "Bob", AmountPaid: 15},
	})

	assert.Contains(t, RenderSettlement(s), "Everyone is settled up.")
}

func TestRenderAllocation(t *testing.T) {
	a := calculator.Allocate([]models.LineItem{
		{ID: 1, Name: "Alice", Subtotal: 3},
		{ID: 2, Name: "Bob", Subtotal: 5},
	}, 0.8, 1.2)

	out := RenderAllocation(a)
	assert.Contains(t, out, "$3.75")
	assert.Contains(t, out, "$6.25")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "$10.00")
}
