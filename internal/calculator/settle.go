package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/godutch/internal/models"
)

// settleEpsilon is the residue below which a difference counts as settled.
// Shares like 100/3 never cancel exactly, even in decimal.
var settleEpsilon = decimal.New(1, -6)

// Settlement is the full result of a go-dutch calculation.
type Settlement struct {
	Total     float64
	Share     float64
	Balances  []models.Balance
	Transfers []models.Transfer
}

type residual struct {
	name       string
	difference decimal.Decimal
}

// Settle computes the transfers that bring every participant to the equal share.
// See SettleDetailed.
func Settle(participants []models.Participant) []models.Transfer {
	return SettleDetailed(participants).Transfers
}

// SettleDetailed computes the equal share, each participant's balance against it,
// and the transfers that settle those balances.
//
// Algorithm:
// - share = sum(paid) / count
// - difference = paid - share; negative differences owe, positive are owed
// - Greedily match the head of the owes queue with the head of the owed queue,
//   moving min(|owes|, owed) and dequeuing whoever reaches zero
//
// Queue order follows input order. No sort by magnitude is performed, so the
// transfer count is small but not provably minimal.
func SettleDetailed(participants []models.Participant) Settlement {
	if len(participants) == 0 {
		return Settlement{}
	}

	paid := make([]decimal.Decimal, len(participants))
	total := decimal.Zero
	for i, p := range participants {
		paid[i] = nonNegative(p.AmountPaid)
		total = total.Add(paid[i])
	}
	share := total.Div(decimal.NewFromInt(int64(len(participants))))

	balances := make([]models.Balance, len(participants))
	var owes, owed []*residual
	for i, p := range participants {
		diff := paid[i].Sub(share)
		balances[i] = models.Balance{
			Name:       p.Name,
			Paid:       toFloat(paid[i]),
			Difference: toFloat(diff),
		}

		if settled(diff) {
			continue
		}
		if diff.Sign() < 0 {
			owes = append(owes, &residual{name: p.Name, difference: diff})
		} else {
			owed = append(owed, &residual{name: p.Name, difference: diff})
		}
	}

	var transfers []models.Transfer
	for len(owes) > 0 && len(owed) > 0 {
		debtor := owes[0]
		creditor := owed[0]

		amount := decimal.Min(debtor.difference.Abs(), creditor.difference)
		rounded := amount.Round(2)
		if !rounded.IsZero() {
			transfers = append(transfers, models.Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: toFloat(rounded),
			})
		}

		debtor.difference = debtor.difference.Add(amount)
		creditor.difference = creditor.difference.Sub(amount)

		if settled(debtor.difference) {
			owes = owes[1:]
		}
		if settled(creditor.difference) {
			owed = owed[1:]
		}
	}

	return Settlement{
		Total:     toFloat(total),
		Share:     toFloat(share),
		Balances:  balances,
		Transfers: transfers,
	}
}

// TotalMoved sums the amounts of the given transfers.
func TotalMoved(transfers []models.Transfer) float64 {
	sum := decimal.Zero
	for _, t := range transfers {
		sum = sum.Add(decimal.NewFromFloat(t.Amount))
	}
	return toFloat(sum)
}

func settled(d decimal.Decimal) bool {
	return d.Abs().Cmp(settleEpsilon) <= 0
}

func nonNegative(v float64) decimal.Decimal {
	if !isFinite(v) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
