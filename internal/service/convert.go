package service

import (
	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/models"
	"github.com/mmynk/godutch/pkg/api"
)

func toModelParticipants(in []api.Participant) []models.Participant {
	out := make([]models.Participant, len(in))
	for i, p := range in {
		out[i] = models.Participant{Name: p.Name, AmountPaid: p.AmountPaid}
	}
	return out
}

func toModelItems(in []api.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(in))
	for i, item := range in {
		out[i] = models.LineItem{ID: item.Id, Name: item.Name, Subtotal: item.Subtotal}
	}
	return out
}

func toAPISettlement(s calculator.Settlement) *api.SettleResponse {
	resp := &api.SettleResponse{
		Total:     s.Total,
		Share:     s.Share,
		Balances:  make([]api.Balance, len(s.Balances)),
		Transfers: make([]api.Transfer, len(s.Transfers)),
	}
	for i, b := range s.Balances {
		resp.Balances[i] = api.Balance{Name: b.Name, Paid: b.Paid, Difference: b.Difference}
	}
	for i, t := range s.Transfers {
		resp.Transfers[i] = api.Transfer{
			From:    t.From,
			To:      t.To,
			Amount:  t.Amount,
			Display: t.String(),
		}
	}
	return resp
}

func toAPIAllocation(a calculator.Allocation) api.Allocation {
	items := make([]api.ItemShare, len(a.Items))
	for i, s := range a.Items {
		items[i] = api.ItemShare{
			Id:       s.ID,
			Name:     s.Name,
			Subtotal: s.Subtotal,
			Tax:      s.Tax,
			Tip:      s.Tip,
			Total:    s.Total,
			Display:  displayAmounts(s.Subtotal, s.Tax, s.Tip, s.Total),
		}
	}
	t := a.Totals
	return api.Allocation{
		Items: items,
		Totals: api.Totals{
			Subtotal: t.Subtotal,
			Tax:      t.Tax,
			Tip:      t.Tip,
			Bill:     t.Bill,
			Display:  displayAmounts(t.Subtotal, t.Tax, t.Tip, t.Bill),
		},
	}
}

func displayAmounts(subtotal, tax, tip, total float64) api.Amounts {
	return api.Amounts{
		Subtotal: calculator.FormatAmount(subtotal),
		Tax:      calculator.FormatAmount(tax),
		Tip:      calculator.FormatAmount(tip),
		Total:    calculator.FormatAmount(total),
	}
}

func toAPISheet(sheet models.Sheet) api.Sheet {
	items := make([]api.LineItem, len(sheet.Items))
	for i, item := range sheet.Items {
		items[i] = api.LineItem{Id: item.ID, Name: item.Name, Subtotal: item.Subtotal}
	}
	return api.Sheet{
		Id:        sheet.ID,
		Title:     sheet.Title,
		TaxAmount: sheet.TaxAmount,
		TipAmount: sheet.TipAmount,
		Items:     items,
		CreatedAt: sheet.CreatedAt,
		UpdatedAt: sheet.UpdatedAt,
	}
}
