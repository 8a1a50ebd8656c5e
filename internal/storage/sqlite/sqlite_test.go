package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/models"
	"github.com/mmynk/godutch/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "godutch-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateSheet generates ID and title", func(t *testing.T) {
		sheet := &models.Sheet{
			TaxAmount:  0.8,
			TipAmount:  1.2,
			Items:      calculator.NewSheetRows(),
			LastItemID: 2,
		}

		if err := store.CreateSheet(ctx, sheet); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}

		if sheet.ID == "" {
			t.Error("Expected sheet ID to be generated")
		}
		if sheet.Title != "Split with Person 1, Person 2" {
			t.Errorf("Title = %q, want generated title", sheet.Title)
		}
		if sheet.CreatedAt == 0 || sheet.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("GetSheet retrieves rows in order", func(t *testing.T) {
		original := &models.Sheet{
			Title:     "Dinner",
			TaxAmount: 4.5,
			TipAmount: 9,
			Items: []models.LineItem{
				{ID: 7, Name: "Zed", Subtotal: 12},
				{ID: 3, Name: "Amy", Subtotal: 30.25},
			},
			LastItemID: 7,
		}
		if err := store.CreateSheet(ctx, original); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}

		got, err := store.GetSheet(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetSheet failed: %v", err)
		}

		if got.Title != "Dinner" || got.TaxAmount != 4.5 || got.TipAmount != 9 || got.LastItemID != 7 {
			t.Errorf("sheet = %+v, want fields to round-trip", got)
		}
		if len(got.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(got.Items))
		}
		// Position order, not ID order
		if got.Items[0].ID != 7 || got.Items[1].ID != 3 {
			t.Errorf("item order = [%d %d], want [7 3]", got.Items[0].ID, got.Items[1].ID)
		}
		if got.Items[1].Subtotal != 30.25 {
			t.Errorf("subtotal = %v, want 30.25", got.Items[1].Subtotal)
		}
	})

	t.Run("GetSheet returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetSheet(ctx, "does-not-exist")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("UpdateSheet applies mutation", func(t *testing.T) {
		sheet := &models.Sheet{Items: calculator.NewSheetRows(), LastItemID: 2}
		if err := store.CreateSheet(ctx, sheet); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}

		updated, err := store.UpdateSheet(ctx, sheet.ID, func(cur models.Sheet) (models.Sheet, error) {
			next, _ := calculator.AddRow(cur)
			next, _ = calculator.RemoveRow(next, 1)
			next.TaxAmount = 2
			return next, nil
		})
		if err != nil {
			t.Fatalf("UpdateSheet failed: %v", err)
		}
		if updated.ID != sheet.ID || updated.CreatedAt != sheet.CreatedAt {
			t.Error("UpdateSheet changed identity fields")
		}

		got, err := store.GetSheet(ctx, sheet.ID)
		if err != nil {
			t.Fatalf("GetSheet failed: %v", err)
		}
		if len(got.Items) != 2 || got.Items[0].ID != 2 || got.Items[1].ID != 3 {
			t.Errorf("items = %+v, want ids [2 3]", got.Items)
		}
		if got.LastItemID != 3 {
			t.Errorf("LastItemID = %d, want 3", got.LastItemID)
		}
		if got.TaxAmount != 2 {
			t.Errorf("TaxAmount = %v, want 2", got.TaxAmount)
		}
	})

	t.Run("UpdateSheet error leaves sheet unchanged", func(t *testing.T) {
		sheet := &models.Sheet{Items: calculator.NewSheetRows(), LastItemID: 2}
		if err := store.CreateSheet(ctx, sheet); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}

		boom := errors.New("boom")
		_, err := store.UpdateSheet(ctx, sheet.ID, func(cur models.Sheet) (models.Sheet, error) {
			cur.Items = nil
			return cur, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}

		got, err := store.GetSheet(ctx, sheet.ID)
		if err != nil {
			t.Fatalf("GetSheet failed: %v", err)
		}
		if len(got.Items) != 2 {
			t.Errorf("got %d items, want 2", len(got.Items))
		}
	})

	t.Run("UpdateSheet unknown sheet", func(t *testing.T) {
		_, err := store.UpdateSheet(ctx, "nope", func(cur models.Sheet) (models.Sheet, error) {
			return cur, nil
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("DeleteSheet cascades", func(t *testing.T) {
		sheet := &models.Sheet{Items: calculator.NewSheetRows(), LastItemID: 2}
		if err := store.CreateSheet(ctx, sheet); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}
		if err := store.DeleteSheet(ctx, sheet.ID); err != nil {
			t.Fatalf("DeleteSheet failed: %v", err)
		}
		if _, err := store.GetSheet(ctx, sheet.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetSheet after delete err = %v, want ErrNotFound", err)
		}
		if err := store.DeleteSheet(ctx, sheet.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second DeleteSheet err = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStore_InMemoryList(t *testing.T) {
	store, err := New(MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, title := range []string{"First", "Second"} {
		sheet := &models.Sheet{Title: title, Items: calculator.NewSheetRows(), LastItemID: 2}
		if err := store.CreateSheet(ctx, sheet); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}
	}

	sheets, err := store.ListSheets(ctx)
	if err != nil {
		t.Fatalf("ListSheets failed: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}
	for _, s := range sheets {
		if len(s.Items) != 2 {
			t.Errorf("sheet %q has %d items, want 2", s.Title, len(s.Items))
		}
	}
}

func TestGenerateTitle(t *testing.T) {
	items := []models.LineItem{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	if got, want := generateTitle(items), "Split with A, B and 2 others"; got != want {
		t.Errorf("generateTitle = %q, want %q", got, want)
	}
}
