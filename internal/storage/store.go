// Package storage provides abstractions for sheet storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/godutch/internal/models"
)

// ErrNotFound is returned when a sheet does not exist.
var ErrNotFound = errors.New("sheet not found")

// MutateFunc derives the next version of a sheet from the current one.
// Returning an error aborts the update and leaves the stored sheet unchanged.
type MutateFunc func(current models.Sheet) (models.Sheet, error)

// Store defines the interface for sheet storage operations.
// This abstraction allows swapping storage backends
// without changing the service layer.
type Store interface {
	// CreateSheet persists a new sheet.
	// The sheet.ID, CreatedAt and Title fields are populated by the store when empty.
	CreateSheet(ctx context.Context, sheet *models.Sheet) error

	// GetSheet retrieves a sheet by its ID, rows in display order.
	// Returns ErrNotFound if the sheet does not exist.
	GetSheet(ctx context.Context, sheetID string) (*models.Sheet, error)

	// ListSheets returns all sheets, most recently updated first.
	ListSheets(ctx context.Context) ([]models.Sheet, error)

	// UpdateSheet applies fn to the stored sheet and saves the result atomically.
	// No other update to the same sheet can interleave.
	UpdateSheet(ctx context.Context, sheetID string, fn MutateFunc) (*models.Sheet, error)

	// DeleteSheet removes a sheet and its rows.
	DeleteSheet(ctx context.Context, sheetID string) error

	// Close releases any resources held by the store.
	Close() error
}
