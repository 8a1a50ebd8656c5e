package calculator

import (
	"testing"

	"github.com/mmynk/godutch/internal/models"
)

func newTestSheet() models.Sheet {
	return models.Sheet{ID: "sheet-1", Items: NewSheetRows(), LastItemID: 2}
}

func TestAddRow(t *testing.T) {
	sheet := newTestSheet()

	next, item := AddRow(sheet)
	if item.ID != 3 {
		t.Errorf("new row id = %d, want 3", item.ID)
	}
	if item.Name != "Person 3" {
		t.Errorf("new row name = %q, want %q", item.Name, "Person 3")
	}
	if item.Subtotal != 0 {
		t.Errorf("new row subtotal = %v, want 0", item.Subtotal)
	}
	if len(next.Items) != 3 || next.LastItemID != 3 {
		t.Errorf("sheet after add = %+v", next)
	}
	if len(sheet.Items) != 2 {
		t.Errorf("original sheet was mutated: %d items", len(sheet.Items))
	}
}

func TestAddRow_EmptySheet(t *testing.T) {
	_, item := AddRow(models.Sheet{})
	if item.ID != 1 || item.Name != "Person 1" {
		t.Errorf("first row = %+v, want id 1 named Person 1", item)
	}
}

func TestAddRow_NeverReusesRemovedID(t *testing.T) {
	sheet := newTestSheet()
	sheet, _ = AddRow(sheet) // id 3
	sheet, found := RemoveRow(sheet, 3)
	if !found {
		t.Fatal("RemoveRow(3) not found")
	}

	_, item := AddRow(sheet)
	if item.ID != 4 {
		t.Errorf("row added after removing id 3 got id %d, want 4", item.ID)
	}
}

func TestRemoveRow_KeepsOtherIDs(t *testing.T) {
	sheet := newTestSheet()
	sheet, _ = AddRow(sheet)
	sheet, _ = AddRow(sheet)

	out, found := RemoveRow(sheet, 2)
	if !found {
		t.Fatal("RemoveRow(2) not found")
	}

	wantIDs := []int64{1, 3, 4}
	if len(out.Items) != len(wantIDs) {
		t.Fatalf("got %d rows, want %d", len(out.Items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if out.Items[i].ID != id {
			t.Errorf("row %d id = %d, want %d", i, out.Items[i].ID, id)
		}
	}
	if len(sheet.Items) != 4 {
		t.Errorf("original sheet was mutated: %d items", len(sheet.Items))
	}
}

func TestRemoveRow_UnknownID(t *testing.T) {
	sheet := newTestSheet()
	out, found := RemoveRow(sheet, -1)
	if found {
		t.Error("RemoveRow(-1) reported found")
	}
	if len(out.Items) != 2 {
		t.Errorf("got %d rows, want 2", len(out.Items))
	}
}

func TestSetSubtotal(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		raw     string
		want    float64
		changed bool
	}{
		{name: "plain number", index: 0, raw: "12.5", want: 12.5, changed: true},
		{name: "dollar prefix", index: 0, raw: " $4.20 ", want: 4.2, changed: true},
		{name: "not a number keeps previous", index: 0, raw: "abc", want: 7, changed: false},
		{name: "empty keeps previous", index: 0, raw: "", want: 7, changed: false},
		{name: "negative keeps previous", index: 0, raw: "-3", want: 7, changed: false},
		{name: "NaN keeps previous", index: 0, raw: "NaN", want: 7, changed: false},
		{name: "out of range index", index: 5, raw: "1", want: 7, changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := newTestSheet()
			sheet.Items[0].Subtotal = 7

			out, changed := SetSubtotal(sheet, tt.index, tt.raw)
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if out.Items[0].Subtotal != tt.want {
				t.Errorf("subtotal = %v, want %v", out.Items[0].Subtotal, tt.want)
			}
			if sheet.Items[0].Subtotal != 7 {
				t.Error("original sheet was mutated")
			}
		})
	}
}

func TestSetName(t *testing.T) {
	sheet := newTestSheet()
	out, ok := SetName(sheet, 1, "")
	if !ok {
		t.Fatal("SetName returned false")
	}
	if out.Items[1].Name != "" {
		t.Errorf("name = %q, want empty", out.Items[1].Name)
	}
	if out.Items[1].ID != 2 {
		t.Errorf("id changed to %d", out.Items[1].ID)
	}
	if _, ok := SetName(sheet, 2, "x"); ok {
		t.Error("SetName out of range returned true")
	}
}
