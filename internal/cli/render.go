package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/godutch/internal/calculator"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	owedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	owesStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// separatorRow marks a horizontal rule inside a table.
const separatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(44).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned and the rest are right-aligned. A row holding the
// single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == separatorRow {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderSettlement renders the balances table followed by one line per transfer.
func RenderSettlement(s calculator.Settlement) string {
	rows := make([][]string, 0, len(s.Balances)+2)
	for _, bal := range s.Balances {
		rows = append(rows, []string{bal.Name, FormatMoney(bal.Paid), formatDifference(bal.Difference)})
	}
	rows = append(rows, []string{separatorRow})
	rows = append(rows, []string{"TOTAL", FormatMoney(s.Total), "share " + FormatMoney(s.Share)})

	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Title:   "Balances",
		Headers: []string{"Name", "Paid", "Difference"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	if len(s.Transfers) == 0 {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render("Everyone is settled up."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Transfers"))
	b.WriteString("\n")
	for _, t := range s.Transfers {
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(t.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAllocation renders one row per item and a Total row.
func RenderAllocation(a calculator.Allocation) string {
	rows := make([][]string, 0, len(a.Items)+2)
	for _, item := range a.Items {
		rows = append(rows, []string{
			item.Name,
			FormatMoney(item.Subtotal),
			FormatMoney(item.Tax),
			FormatMoney(item.Tip),
			FormatMoney(item.Total),
		})
	}
	rows = append(rows, []string{separatorRow})
	rows = append(rows, []string{
		"Total",
		FormatMoney(a.Totals.Subtotal),
		FormatMoney(a.Totals.Tax),
		FormatMoney(a.Totals.Tip),
		FormatMoney(a.Totals.Bill),
	})

	return RenderTable(Table{
		Title:   "Tip & Tax",
		Headers: []string{"Name", "Subtotal", "Tax", "Tip", "Total"},
		Rows:    rows,
	})
}

// padRight and padLeft measure visible width, so pre-styled cells align.
func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}

// formatDifference signs a balance difference: + is owed money, - owes money.
func formatDifference(d float64) string {
	rounded := calculator.RoundAmount(d)
	switch {
	case rounded > 0:
		return owedStyle.Render("+" + FormatMoney(rounded))
	case rounded < 0:
		return owesStyle.Render("-" + FormatMoney(-rounded))
	default:
		return FormatMoney(0)
	}
}
