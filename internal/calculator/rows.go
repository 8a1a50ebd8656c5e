package calculator

import (
	"fmt"

	"github.com/mmynk/godutch/internal/models"
)

// NewSheetRows returns the rows a fresh tip/tax table starts with.
func NewSheetRows() []models.LineItem {
	return []models.LineItem{
		{ID: 1, Name: "Person 1"},
		{ID: 2, Name: "Person 2"},
	}
}

// NextItemID returns the ID the next added row receives: one above both the
// largest ID present and the sheet's high-water mark.
func NextItemID(sheet models.Sheet) int64 {
	next := sheet.LastItemID
	for _, item := range sheet.Items {
		if item.ID > next {
			next = item.ID
		}
	}
	return next + 1
}

// AddRow returns a copy of sheet with a new empty row appended.
// The row is named after its position ("Person 3" on a two-row sheet).
func AddRow(sheet models.Sheet) (models.Sheet, models.LineItem) {
	out := sheet.Clone()
	item := models.LineItem{
		ID:   NextItemID(sheet),
		Name: fmt.Sprintf("Person %d", len(sheet.Items)+1),
	}
	out.Items = append(out.Items, item)
	out.LastItemID = item.ID
	return out, item
}

// RemoveRow returns a copy of sheet without the row with the given ID.
// Other rows keep their IDs. found is false when no row has that ID.
func RemoveRow(sheet models.Sheet, id int64) (out models.Sheet, found bool) {
	out = sheet.Clone()
	out.Items = out.Items[:0]
	for _, item := range sheet.Items {
		if item.ID == id {
			found = true
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, found
}

// IndexOf returns the position of the row with the given ID, or -1.
func IndexOf(items []models.LineItem, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetSubtotal returns a copy of sheet with the subtotal at index replaced by
// the parsed raw input. Input that ParseAmount rejects leaves the previous
// value in place, as does an out-of-range index.
func SetSubtotal(sheet models.Sheet, index int, raw string) (models.Sheet, bool) {
	v, ok := ParseAmount(raw)
	if !ok || index < 0 || index >= len(sheet.Items) {
		return sheet, false
	}
	out := sheet.Clone()
	out.Items[index].Subtotal = v
	return out, true
}

// SetName returns a copy of sheet with the name at index replaced.
func SetName(sheet models.Sheet, index int, name string) (models.Sheet, bool) {
	if index < 0 || index >= len(sheet.Items) {
		return sheet, false
	}
	out := sheet.Clone()
	out.Items[index].Name = name
	return out, true
}
