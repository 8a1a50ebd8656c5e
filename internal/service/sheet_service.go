package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/mmynk/godutch/internal/auth"
	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/metrics"
	"github.com/mmynk/godutch/internal/middleware"
	"github.com/mmynk/godutch/internal/models"
	"github.com/mmynk/godutch/internal/storage"
	"github.com/mmynk/godutch/pkg/api"
	"github.com/mmynk/godutch/pkg/api/apiconnect"
)

var _ apiconnect.SheetServiceHandler = (*SheetService)(nil)

var errRowNotFound = errors.New("row not found")

// SheetService implements the Connect SheetService: tip/tax tables kept
// server-side and reallocated after every edit.
type SheetService struct {
	store   storage.Store
	tokens  *auth.JWTManager
	metrics *metrics.Metrics
}

// NewSheetService creates a new SheetService with the given storage backend
// and edit token issuer. m may be nil.
func NewSheetService(store storage.Store, tokens *auth.JWTManager, m *metrics.Metrics) *SheetService {
	return &SheetService{store: store, tokens: tokens, metrics: m}
}

// authorize checks that the request carries an edit token for sheetID.
func authorize(ctx context.Context, sheetID string) error {
	granted := middleware.GetSheetID(ctx)
	if granted == "" {
		return connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if granted != sheetID {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("token does not grant access to sheet %s", sheetID))
	}
	return nil
}

// toConnectError maps storage and row lookup errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errRowNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// pooledAmount coerces a pooled tax or tip amount: anything that is not a
// finite, non-negative number becomes 0.
func pooledAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func (s *SheetService) view(sheet models.Sheet) api.SheetView {
	allocation := calculator.Allocate(sheet.Items, sheet.TaxAmount, sheet.TipAmount)
	s.metrics.Calculation(metrics.KindAllocate)
	return api.SheetView{
		Sheet:      toAPISheet(sheet),
		Allocation: toAPIAllocation(allocation),
	}
}

// mutate authorizes the caller and applies fn to the stored sheet.
func (s *SheetService) mutate(ctx context.Context, op, sheetID string, fn storage.MutateFunc) (*models.Sheet, error) {
	if err := authorize(ctx, sheetID); err != nil {
		return nil, err
	}
	sheet, err := s.store.UpdateSheet(ctx, sheetID, fn)
	if err != nil {
		slog.Error(op+" failed", "sheet_id", sheetID, "error", err)
		return nil, toConnectError(err)
	}
	return sheet, nil
}

// CreateSheet creates a new two-row sheet and returns its edit token.
func (s *SheetService) CreateSheet(ctx context.Context, req *connect.Request[api.CreateSheetRequest]) (*connect.Response[api.CreateSheetResponse], error) {
	slog.Info("CreateSheet request received", "title", req.Msg.Title)

	rows := calculator.NewSheetRows()
	sheet := &models.Sheet{
		Title:      req.Msg.Title,
		TaxAmount:  pooledAmount(req.Msg.TaxAmount),
		TipAmount:  pooledAmount(req.Msg.TipAmount),
		Items:      rows,
		LastItemID: rows[len(rows)-1].ID,
	}

	// Save to storage (generates ID, Title and CreatedAt)
	if err := s.store.CreateSheet(ctx, sheet); err != nil {
		slog.Error("CreateSheet failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.tokens.Generate(sheet.ID)
	if err != nil {
		slog.Error("CreateSheet token generation failed", "sheet_id", sheet.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Sheet created", "sheet_id", sheet.ID)

	return connect.NewResponse(&api.CreateSheetResponse{
		View:      s.view(*sheet),
		EditToken: token,
	}), nil
}

// GetSheet retrieves a sheet and its allocation. Reading needs no token.
func (s *SheetService) GetSheet(ctx context.Context, req *connect.Request[api.GetSheetRequest]) (*connect.Response[api.SheetResponse], error) {
	sheet, err := s.store.GetSheet(ctx, req.Msg.SheetId)
	if err != nil {
		slog.Error("GetSheet failed", "sheet_id", req.Msg.SheetId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SheetResponse{View: s.view(*sheet)}), nil
}

// ListSheets retrieves all sheets without allocations.
func (s *SheetService) ListSheets(ctx context.Context, req *connect.Request[api.ListSheetsRequest]) (*connect.Response[api.ListSheetsResponse], error) {
	sheets, err := s.store.ListSheets(ctx)
	if err != nil {
		slog.Error("ListSheets failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Sheet, len(sheets))
	for i, sheet := range sheets {
		out[i] = toAPISheet(sheet)
	}

	slog.Info("ListSheets successful", "count", len(sheets))

	return connect.NewResponse(&api.ListSheetsResponse{Sheets: out}), nil
}

// AddRow appends an empty row named after its position.
func (s *SheetService) AddRow(ctx context.Context, req *connect.Request[api.AddRowRequest]) (*connect.Response[api.AddRowResponse], error) {
	var added models.LineItem
	sheet, err := s.mutate(ctx, "AddRow", req.Msg.SheetId, func(cur models.Sheet) (models.Sheet, error) {
		next, item := calculator.AddRow(cur)
		added = item
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Row added", "sheet_id", sheet.ID, "item_id", added.ID)

	return connect.NewResponse(&api.AddRowResponse{
		View:   s.view(*sheet),
		ItemId: added.ID,
	}), nil
}

// RemoveRow deletes a row by ID. Remaining rows keep their IDs.
func (s *SheetService) RemoveRow(ctx context.Context, req *connect.Request[api.RemoveRowRequest]) (*connect.Response[api.SheetResponse], error) {
	sheet, err := s.mutate(ctx, "RemoveRow", req.Msg.SheetId, func(cur models.Sheet) (models.Sheet, error) {
		next, found := calculator.RemoveRow(cur, req.Msg.ItemId)
		if !found {
			return cur, fmt.Errorf("%w: %d", errRowNotFound, req.Msg.ItemId)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Row removed", "sheet_id", sheet.ID, "item_id", req.Msg.ItemId)

	return connect.NewResponse(&api.SheetResponse{View: s.view(*sheet)}), nil
}

// RenameRow replaces a row's name. Any text is accepted.
func (s *SheetService) RenameRow(ctx context.Context, req *connect.Request[api.RenameRowRequest]) (*connect.Response[api.SheetResponse], error) {
	sheet, err := s.mutate(ctx, "RenameRow", req.Msg.SheetId, func(cur models.Sheet) (models.Sheet, error) {
		next, ok := calculator.SetName(cur, calculator.IndexOf(cur.Items, req.Msg.ItemId), req.Msg.Name)
		if !ok {
			return cur, fmt.Errorf("%w: %d", errRowNotFound, req.Msg.ItemId)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.SheetResponse{View: s.view(*sheet)}), nil
}

// SetSubtotal replaces a row's subtotal from raw input. Input that is not a
// valid amount is ignored; the response reports whether it was applied.
func (s *SheetService) SetSubtotal(ctx context.Context, req *connect.Request[api.SetSubtotalRequest]) (*connect.Response[api.SetSubtotalResponse], error) {
	var applied bool
	sheet, err := s.mutate(ctx, "SetSubtotal", req.Msg.SheetId, func(cur models.Sheet) (models.Sheet, error) {
		index := calculator.IndexOf(cur.Items, req.Msg.ItemId)
		if index < 0 {
			return cur, fmt.Errorf("%w: %d", errRowNotFound, req.Msg.ItemId)
		}
		next, ok := calculator.SetSubtotal(cur, index, req.Msg.Subtotal)
		applied = ok
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		slog.Debug("Ignored invalid subtotal",
			"sheet_id", sheet.ID,
			"item_id", req.Msg.ItemId,
			"input", req.Msg.Subtotal,
		)
	}

	return connect.NewResponse(&api.SetSubtotalResponse{
		View:    s.view(*sheet),
		Applied: applied,
	}), nil
}

// SetPooledAmounts replaces the sheet's tax and/or tip from raw input.
// A field that is empty or not a valid amount leaves that amount unchanged.
func (s *SheetService) SetPooledAmounts(ctx context.Context, req *connect.Request[api.SetPooledAmountsRequest]) (*connect.Response[api.SheetResponse], error) {
	sheet, err := s.mutate(ctx, "SetPooledAmounts", req.Msg.SheetId, func(cur models.Sheet) (models.Sheet, error) {
		if v, ok := calculator.ParseAmount(req.Msg.TaxAmount); ok {
			cur.TaxAmount = v
		}
		if v, ok := calculator.ParseAmount(req.Msg.TipAmount); ok {
			cur.TipAmount = v
		}
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.SheetResponse{View: s.view(*sheet)}), nil
}

// DeleteSheet removes a sheet.
func (s *SheetService) DeleteSheet(ctx context.Context, req *connect.Request[api.DeleteSheetRequest]) (*connect.Response[api.DeleteSheetResponse], error) {
	if err := authorize(ctx, req.Msg.SheetId); err != nil {
		return nil, err
	}

	if err := s.store.DeleteSheet(ctx, req.Msg.SheetId); err != nil {
		slog.Error("DeleteSheet failed", "sheet_id", req.Msg.SheetId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Sheet deleted", "sheet_id", req.Msg.SheetId)

	return connect.NewResponse(&api.DeleteSheetResponse{}), nil
}
