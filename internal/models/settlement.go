package models

import "fmt"

// Participant is one person in a go-dutch calculation.
// Participants only exist for the duration of one calculation.
type Participant struct {
	// Name is the display name of the person. Names are not required to be unique.
	Name string

	// AmountPaid is what this person contributed toward the shared expense.
	// Negative values are treated as zero.
	AmountPaid float64
}

// Transfer is one payment from a person who paid less than the share
// to a person who paid more.
type Transfer struct {
	// From is the person who owes money.
	From string

	// To is the person who is owed money.
	To string

	// Amount is the payment amount, rounded to 2 decimal places.
	Amount float64
}

// String renders the transfer the way the go-dutch calculator displays it.
func (t Transfer) String() string {
	return fmt.Sprintf("%s pays %s $%.2f", t.From, t.To, t.Amount)
}

// Balance is one participant's position relative to the equal share.
type Balance struct {
	Name string

	// Paid is the (clamped) amount this person contributed.
	Paid float64

	// Difference is Paid minus the share.
	// Positive = overpaid (is owed money), Negative = underpaid (owes money).
	Difference float64
}
