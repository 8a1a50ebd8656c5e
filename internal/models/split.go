package models

// LineItem is one row of a tip/tax table.
type LineItem struct {
	// ID identifies the row for its whole lifetime. It is assigned on creation,
	// is independent of list position and is never reused within a sheet.
	ID int64

	// Name is free text (e.g., "Person 1", "Pad Thai").
	Name string

	// Subtotal is the pre-tax, pre-tip amount of this row. Never negative.
	Subtotal float64
}

// Sheet is a tip/tax table: line items plus the pooled amounts split across them.
type Sheet struct {
	// ID is the unique identifier for the sheet (UUID format).
	ID string

	// Title is the human-readable name for the sheet.
	// Auto-generated from the row names when empty.
	Title string

	// TaxAmount is the aggregate tax to distribute across Items.
	TaxAmount float64

	// TipAmount is the aggregate tip to distribute across Items.
	TipAmount float64

	// Items are the rows in display order.
	Items []LineItem

	// LastItemID is the highest row ID ever issued on this sheet.
	// New rows are numbered above it so removed IDs are never handed out again.
	LastItemID int64

	// CreatedAt is the Unix timestamp when the sheet was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64
}

// Clone returns a deep copy of the sheet so callers can derive a new
// version without touching the original's item slice.
func (s Sheet) Clone() Sheet {
	out := s
	if s.Items != nil {
		out.Items = make([]LineItem, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}
