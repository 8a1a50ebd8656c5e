// Package api defines the request and response messages of the godutch.v1 services.
package api

// Participant is one person in a go-dutch calculation.
type Participant struct {
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amountPaid"`
}

// Transfer is one payment settling part of a debt.
type Transfer struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"` // "Bob pays Alice $10.00"
}

// Balance is a participant's position against the equal share.
type Balance struct {
	Name       string  `json:"name"`
	Paid       float64 `json:"paid"`
	Difference float64 `json:"difference"` // positive = is owed, negative = owes
}

type SettleRequest struct {
	Participants []Participant `json:"participants"`
}

type SettleResponse struct {
	Total     float64    `json:"total"`
	Share     float64    `json:"share"`
	Balances  []Balance  `json:"balances"`
	Transfers []Transfer `json:"transfers"`
}

// LineItem is one row of a tip/tax table.
type LineItem struct {
	Id       int64   `json:"id"`
	Name     string  `json:"name"`
	Subtotal float64 `json:"subtotal"`
}

// Amounts are two-decimal display strings for one row of an allocation.
type Amounts struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Tip      string `json:"tip"`
	Total    string `json:"total"`
}

// ItemShare is one line item's full-precision share plus its display strings.
type ItemShare struct {
	Id       int64   `json:"id"`
	Name     string  `json:"name"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
	Display  Amounts `json:"display"`
}

// Totals are the column sums of an allocation.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Bill     float64 `json:"bill"`
	Display  Amounts `json:"display"` // Display.Total is the bill
}

type Allocation struct {
	Items  []ItemShare `json:"items"`
	Totals Totals      `json:"totals"`
}

type AllocateRequest struct {
	Items     []LineItem `json:"items"`
	TaxAmount float64    `json:"taxAmount"`
	TipAmount float64    `json:"tipAmount"`
}

type AllocateResponse struct {
	Allocation Allocation `json:"allocation"`
}

type SplitEvenlyRequest struct {
	Bill       float64 `json:"bill"`
	People     int32   `json:"people"`
	TipPercent float64 `json:"tipPercent"`
}

type SplitEvenlyResponse struct {
	PerPerson float64 `json:"perPerson"`
	Display   string  `json:"display"`
}

// MultiplyRequest carries raw form input; anything non-numeric yields 0.
type MultiplyRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

type MultiplyResponse struct {
	Product float64 `json:"product"`
}

// Sheet is a stored tip/tax table.
type Sheet struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	TaxAmount float64    `json:"taxAmount"`
	TipAmount float64    `json:"tipAmount"`
	Items     []LineItem `json:"items"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

// SheetView is a sheet together with its freshly computed allocation.
type SheetView struct {
	Sheet      Sheet      `json:"sheet"`
	Allocation Allocation `json:"allocation"`
}

type CreateSheetRequest struct {
	Title     string  `json:"title"`
	TaxAmount float64 `json:"taxAmount"`
	TipAmount float64 `json:"tipAmount"`
}

type CreateSheetResponse struct {
	View SheetView `json:"view"`
	// EditToken must be sent as "Authorization: Bearer <token>" on every
	// mutating call for this sheet.
	EditToken string `json:"editToken"`
}

type GetSheetRequest struct {
	SheetId string `json:"sheetId"`
}

type ListSheetsRequest struct{}

type ListSheetsResponse struct {
	Sheets []Sheet `json:"sheets"`
}

type AddRowRequest struct {
	SheetId string `json:"sheetId"`
}

type AddRowResponse struct {
	View   SheetView `json:"view"`
	ItemId int64     `json:"itemId"`
}

type RemoveRowRequest struct {
	SheetId string `json:"sheetId"`
	ItemId  int64  `json:"itemId"`
}

type RenameRowRequest struct {
	SheetId string `json:"sheetId"`
	ItemId  int64  `json:"itemId"`
	Name    string `json:"name"`
}

// SetSubtotalRequest carries the raw input text. Input that is not a
// non-negative number is ignored and the previous subtotal kept.
type SetSubtotalRequest struct {
	SheetId  string `json:"sheetId"`
	ItemId   int64  `json:"itemId"`
	Subtotal string `json:"subtotal"`
}

type SetSubtotalResponse struct {
	View    SheetView `json:"view"`
	Applied bool      `json:"applied"`
}

// SetPooledAmountsRequest carries raw input for tax and tip. Empty or invalid
// fields leave that amount unchanged.
type SetPooledAmountsRequest struct {
	SheetId   string `json:"sheetId"`
	TaxAmount string `json:"taxAmount"`
	TipAmount string `json:"tipAmount"`
}

// SheetResponse is returned by calls that only need to echo the sheet.
type SheetResponse struct {
	View SheetView `json:"view"`
}

type DeleteSheetRequest struct {
	SheetId string `json:"sheetId"`
}

type DeleteSheetResponse struct{}
