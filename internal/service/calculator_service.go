package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/metrics"
	"github.com/mmynk/godutch/pkg/api"
	"github.com/mmynk/godutch/pkg/api/apiconnect"
)

var _ apiconnect.CalculatorServiceHandler = (*CalculatorService)(nil)

// CalculatorService implements the stateless Connect CalculatorService.
type CalculatorService struct {
	metrics *metrics.Metrics
}

// NewCalculatorService creates a new CalculatorService. m may be nil.
func NewCalculatorService(m *metrics.Metrics) *CalculatorService {
	return &CalculatorService{metrics: m}
}

// Settle handles go-dutch debt settlement.
func (s *CalculatorService) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	participants := toModelParticipants(req.Msg.Participants)
	for i, p := range participants {
		slog.Debug("Processing participant",
			"index", i+1,
			"name", p.Name,
			"amount_paid", p.AmountPaid,
		)
	}

	settlement := calculator.SettleDetailed(participants)
	s.metrics.Settlement(len(settlement.Transfers))

	slog.Debug("Settlement computed",
		"participants", len(participants),
		"share", settlement.Share,
		"transfers", len(settlement.Transfers),
	)

	return connect.NewResponse(toAPISettlement(settlement)), nil
}

// Allocate handles proportional tip/tax allocation over caller-supplied items.
func (s *CalculatorService) Allocate(ctx context.Context, req *connect.Request[api.AllocateRequest]) (*connect.Response[api.AllocateResponse], error) {
	if err := validateAllocateRequest(req.Msg); err != nil {
		slog.Warn("Allocate rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	items := toModelItems(req.Msg.Items)
	allocation := calculator.Allocate(items, req.Msg.TaxAmount, req.Msg.TipAmount)
	s.metrics.Calculation(metrics.KindAllocate)

	slog.Debug("Allocation computed",
		"items", len(items),
		"tax", req.Msg.TaxAmount,
		"tip", req.Msg.TipAmount,
		"bill", allocation.Totals.Bill,
	)

	return connect.NewResponse(&api.AllocateResponse{
		Allocation: toAPIAllocation(allocation),
	}), nil
}

// validateAllocateRequest rejects negative or non-finite amounts. A negative
// subtotal could cancel another row and skew every share.
func validateAllocateRequest(msg *api.AllocateRequest) error {
	for _, item := range msg.Items {
		if item.Subtotal < 0 || math.IsNaN(item.Subtotal) || math.IsInf(item.Subtotal, 0) {
			return fmt.Errorf("item %d: subtotal must be a non-negative number, got %v", item.Id, item.Subtotal)
		}
	}
	if pooledAmount(msg.TaxAmount) != msg.TaxAmount || pooledAmount(msg.TipAmount) != msg.TipAmount {
		return errors.New("tax and tip must be non-negative numbers")
	}
	return nil
}

// SplitEvenly handles the even split with a tip percentage.
func (s *CalculatorService) SplitEvenly(ctx context.Context, req *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error) {
	perPerson, err := calculator.SplitEvenly(req.Msg.Bill, int(req.Msg.People), req.Msg.TipPercent)
	if err != nil {
		slog.Error("SplitEvenly failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	s.metrics.Calculation(metrics.KindEven)

	return connect.NewResponse(&api.SplitEvenlyResponse{
		PerPerson: perPerson,
		Display:   calculator.FormatAmount(perPerson),
	}), nil
}

// Multiply handles the three-input product form.
func (s *CalculatorService) Multiply(ctx context.Context, req *connect.Request[api.MultiplyRequest]) (*connect.Response[api.MultiplyResponse], error) {
	s.metrics.Calculation(metrics.KindMultiply)
	return connect.NewResponse(&api.MultiplyResponse{
		Product: calculator.Product(req.Msg.A, req.Msg.B, req.Msg.C),
	}), nil
}
