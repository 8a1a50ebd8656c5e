// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/godutch/internal/models"
	"github.com/mmynk/godutch/internal/storage"
)

// MemoryDSN opens a private in-memory database that lives as long as the store.
const MemoryDSN = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a new SQLiteStore with the given database path.
// File paths get their parent directories created; MemoryDSN keeps everything in memory.
// Migrations run automatically.
func New(dbPath string) (*SQLiteStore, error) {
	if !isMemory(dbPath) {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: an in-memory database is per connection, and it
	// serializes sheet updates.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func isMemory(dbPath string) bool {
	return dbPath == MemoryDSN || strings.HasPrefix(dbPath, "file::memory:")
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSheet persists a new sheet and its rows.
func (s *SQLiteStore) CreateSheet(ctx context.Context, sheet *models.Sheet) error {
	if sheet.ID == "" {
		sheet.ID = uuid.New().String()
	}
	if sheet.CreatedAt == 0 {
		sheet.CreatedAt = time.Now().Unix()
	}
	if sheet.UpdatedAt == 0 {
		sheet.UpdatedAt = sheet.CreatedAt
	}
	if sheet.Title == "" {
		sheet.Title = generateTitle(sheet.Items)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sheets (id, title, tax_amount, tip_amount, last_item_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sheet.ID, sheet.Title, sheet.TaxAmount, sheet.TipAmount, sheet.LastItemID,
		sheet.CreatedAt, sheet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sheet: %w", err)
	}

	if err := insertItems(ctx, tx, sheet.ID, sheet.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSheet retrieves a sheet by ID, including its rows in display order.
func (s *SQLiteStore) GetSheet(ctx context.Context, sheetID string) (*models.Sheet, error) {
	return getSheet(ctx, s.db, sheetID)
}

// ListSheets retrieves all sheets, most recently updated first.
func (s *SQLiteStore) ListSheets(ctx context.Context) ([]models.Sheet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, tax_amount, tip_amount, last_item_id, created_at, updated_at
		 FROM sheets ORDER BY updated_at DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	var sheets []models.Sheet
	for rows.Next() {
		var sheet models.Sheet
		if err := rows.Scan(&sheet.ID, &sheet.Title, &sheet.TaxAmount, &sheet.TipAmount,
			&sheet.LastItemID, &sheet.CreatedAt, &sheet.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}
	// The single connection must be released before loading rows.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheets: %w", err)
	}

	for i := range sheets {
		items, err := getItems(ctx, s.db, sheets[i].ID)
		if err != nil {
			return nil, err
		}
		sheets[i].Items = items
	}

	return sheets, nil
}

// UpdateSheet loads the sheet, applies fn and writes the result back in one transaction.
func (s *SQLiteStore) UpdateSheet(ctx context.Context, sheetID string, fn storage.MutateFunc) (*models.Sheet, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := getSheet(ctx, tx, sheetID)
	if err != nil {
		return nil, err
	}

	next, err := fn(current.Clone())
	if err != nil {
		return nil, err
	}

	// Identity is owned by the store.
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = time.Now().Unix()

	_, err = tx.ExecContext(ctx,
		`UPDATE sheets SET title = ?, tax_amount = ?, tip_amount = ?, last_item_id = ?, updated_at = ?
		 WHERE id = ?`,
		next.Title, next.TaxAmount, next.TipAmount, next.LastItemID, next.UpdatedAt, next.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update sheet: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM line_items WHERE sheet_id = ?", next.ID); err != nil {
		return nil, fmt.Errorf("failed to clear line items: %w", err)
	}
	if err := insertItems(ctx, tx, next.ID, next.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &next, nil
}

// DeleteSheet removes a sheet; its rows cascade.
func (s *SQLiteStore) DeleteSheet(ctx context.Context, sheetID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sheets WHERE id = ?", sheetID)
	if err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, sheetID)
	}
	return nil
}

func getSheet(ctx context.Context, q querier, sheetID string) (*models.Sheet, error) {
	sheet := &models.Sheet{}
	err := q.QueryRowContext(ctx,
		`SELECT id, title, tax_amount, tip_amount, last_item_id, created_at, updated_at
		 FROM sheets WHERE id = ?`,
		sheetID,
	).Scan(&sheet.ID, &sheet.Title, &sheet.TaxAmount, &sheet.TipAmount,
		&sheet.LastItemID, &sheet.CreatedAt, &sheet.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, sheetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	items, err := getItems(ctx, q, sheetID)
	if err != nil {
		return nil, err
	}
	sheet.Items = items

	return sheet, nil
}

func getItems(ctx context.Context, q querier, sheetID string) ([]models.LineItem, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT item_id, name, subtotal FROM line_items WHERE sheet_id = ? ORDER BY position",
		sheetID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

func insertItems(ctx context.Context, tx *sql.Tx, sheetID string, items []models.LineItem) error {
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO line_items (sheet_id, item_id, position, name, subtotal) VALUES (?, ?, ?, ?, ?)",
			sheetID, item.ID, i, item.Name, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}
	return nil
}

// generateTitle creates an auto-generated title from the row names.
func generateTitle(items []models.LineItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("Sheet - %s", time.Now().Format("Jan 2, 2006"))
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}
