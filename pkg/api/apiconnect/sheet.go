package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/godutch/pkg/api"
)

const (
	// SheetServiceName is the fully-qualified name of the SheetService service.
	SheetServiceName = "godutch.v1.SheetService"
)

const (
	SheetServiceCreateSheetProcedure      = "/godutch.v1.SheetService/CreateSheet"
	SheetServiceGetSheetProcedure         = "/godutch.v1.SheetService/GetSheet"
	SheetServiceListSheetsProcedure       = "/godutch.v1.SheetService/ListSheets"
	SheetServiceAddRowProcedure           = "/godutch.v1.SheetService/AddRow"
	SheetServiceRemoveRowProcedure        = "/godutch.v1.SheetService/RemoveRow"
	SheetServiceRenameRowProcedure        = "/godutch.v1.SheetService/RenameRow"
	SheetServiceSetSubtotalProcedure      = "/godutch.v1.SheetService/SetSubtotal"
	SheetServiceSetPooledAmountsProcedure = "/godutch.v1.SheetService/SetPooledAmounts"
	SheetServiceDeleteSheetProcedure      = "/godutch.v1.SheetService/DeleteSheet"
)

// SheetServiceHandler is implemented by the tip/tax sheet service.
type SheetServiceHandler interface {
	CreateSheet(context.Context, *connect.Request[api.CreateSheetRequest]) (*connect.Response[api.CreateSheetResponse], error)
	GetSheet(context.Context, *connect.Request[api.GetSheetRequest]) (*connect.Response[api.SheetResponse], error)
	ListSheets(context.Context, *connect.Request[api.ListSheetsRequest]) (*connect.Response[api.ListSheetsResponse], error)
	AddRow(context.Context, *connect.Request[api.AddRowRequest]) (*connect.Response[api.AddRowResponse], error)
	RemoveRow(context.Context, *connect.Request[api.RemoveRowRequest]) (*connect.Response[api.SheetResponse], error)
	RenameRow(context.Context, *connect.Request[api.RenameRowRequest]) (*connect.Response[api.SheetResponse], error)
	SetSubtotal(context.Context, *connect.Request[api.SetSubtotalRequest]) (*connect.Response[api.SetSubtotalResponse], error)
	SetPooledAmounts(context.Context, *connect.Request[api.SetPooledAmountsRequest]) (*connect.Response[api.SheetResponse], error)
	DeleteSheet(context.Context, *connect.Request[api.DeleteSheetRequest]) (*connect.Response[api.DeleteSheetResponse], error)
}

// NewSheetServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount it on.
func NewSheetServiceHandler(svc SheetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	createSheet := connect.NewUnaryHandler(SheetServiceCreateSheetProcedure, svc.CreateSheet, opts...)
	getSheet := connect.NewUnaryHandler(SheetServiceGetSheetProcedure, svc.GetSheet, opts...)
	listSheets := connect.NewUnaryHandler(SheetServiceListSheetsProcedure, svc.ListSheets, opts...)
	addRow := connect.NewUnaryHandler(SheetServiceAddRowProcedure, svc.AddRow, opts...)
	removeRow := connect.NewUnaryHandler(SheetServiceRemoveRowProcedure, svc.RemoveRow, opts...)
	renameRow := connect.NewUnaryHandler(SheetServiceRenameRowProcedure, svc.RenameRow, opts...)
	setSubtotal := connect.NewUnaryHandler(SheetServiceSetSubtotalProcedure, svc.SetSubtotal, opts...)
	setPooledAmounts := connect.NewUnaryHandler(SheetServiceSetPooledAmountsProcedure, svc.SetPooledAmounts, opts...)
	deleteSheet := connect.NewUnaryHandler(SheetServiceDeleteSheetProcedure, svc.DeleteSheet, opts...)

	return "/" + SheetServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SheetServiceCreateSheetProcedure:
			createSheet.ServeHTTP(w, r)
		case SheetServiceGetSheetProcedure:
			getSheet.ServeHTTP(w, r)
		case SheetServiceListSheetsProcedure:
			listSheets.ServeHTTP(w, r)
		case SheetServiceAddRowProcedure:
			addRow.ServeHTTP(w, r)
		case SheetServiceRemoveRowProcedure:
			removeRow.ServeHTTP(w, r)
		case SheetServiceRenameRowProcedure:
			renameRow.ServeHTTP(w, r)
		case SheetServiceSetSubtotalProcedure:
			setSubtotal.ServeHTTP(w, r)
		case SheetServiceSetPooledAmountsProcedure:
			setPooledAmounts.ServeHTTP(w, r)
		case SheetServiceDeleteSheetProcedure:
			deleteSheet.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SheetServiceClient calls a remote SheetService.
type SheetServiceClient interface {
	CreateSheet(context.Context, *connect.Request[api.CreateSheetRequest]) (*connect.Response[api.CreateSheetResponse], error)
	GetSheet(context.Context, *connect.Request[api.GetSheetRequest]) (*connect.Response[api.SheetResponse], error)
	ListSheets(context.Context, *connect.Request[api.ListSheetsRequest]) (*connect.Response[api.ListSheetsResponse], error)
	AddRow(context.Context, *connect.Request[api.AddRowRequest]) (*connect.Response[api.AddRowResponse], error)
	RemoveRow(context.Context, *connect.Request[api.RemoveRowRequest]) (*connect.Response[api.SheetResponse], error)
	RenameRow(context.Context, *connect.Request[api.RenameRowRequest]) (*connect.Response[api.SheetResponse], error)
	SetSubtotal(context.Context, *connect.Request[api.SetSubtotalRequest]) (*connect.Response[api.SetSubtotalResponse], error)
	SetPooledAmounts(context.Context, *connect.Request[api.SetPooledAmountsRequest]) (*connect.Response[api.SheetResponse], error)
	DeleteSheet(context.Context, *connect.Request[api.DeleteSheetRequest]) (*connect.Response[api.DeleteSheetResponse], error)
}

// NewSheetServiceClient constructs a client for the service mounted at baseURL.
func NewSheetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SheetServiceClient {
	opts = withClientCodec(opts)
	return &sheetServiceClient{
		createSheet:      connect.NewClient[api.CreateSheetRequest, api.CreateSheetResponse](httpClient, baseURL+SheetServiceCreateSheetProcedure, opts...),
		getSheet:         connect.NewClient[api.GetSheetRequest, api.SheetResponse](httpClient, baseURL+SheetServiceGetSheetProcedure, opts...),
		listSheets:       connect.NewClient[api.ListSheetsRequest, api.ListSheetsResponse](httpClient, baseURL+SheetServiceListSheetsProcedure, opts...),
		addRow:           connect.NewClient[api.AddRowRequest, api.AddRowResponse](httpClient, baseURL+SheetServiceAddRowProcedure, opts...),
		removeRow:        connect.NewClient[api.RemoveRowRequest, api.SheetResponse](httpClient, baseURL+SheetServiceRemoveRowProcedure, opts...),
		renameRow:        connect.NewClient[api.RenameRowRequest, api.SheetResponse](httpClient, baseURL+SheetServiceRenameRowProcedure, opts...),
		setSubtotal:      connect.NewClient[api.SetSubtotalRequest, api.SetSubtotalResponse](httpClient, baseURL+SheetServiceSetSubtotalProcedure, opts...),
		setPooledAmounts: connect.NewClient[api.SetPooledAmountsRequest, api.SheetResponse](httpClient, baseURL+SheetServiceSetPooledAmountsProcedure, opts...),
		deleteSheet:      connect.NewClient[api.DeleteSheetRequest, api.DeleteSheetResponse](httpClient, baseURL+SheetServiceDeleteSheetProcedure, opts...),
	}
}

type sheetServiceClient struct {
	createSheet      *connect.Client[api.CreateSheetRequest, api.CreateSheetResponse]
	getSheet         *connect.Client[api.GetSheetRequest, api.SheetResponse]
	listSheets       *connect.Client[api.ListSheetsRequest, api.ListSheetsResponse]
	addRow           *connect.Client[api.AddRowRequest, api.AddRowResponse]
	removeRow        *connect.Client[api.RemoveRowRequest, api.SheetResponse]
	renameRow        *connect.Client[api.RenameRowRequest, api.SheetResponse]
	setSubtotal      *connect.Client[api.SetSubtotalRequest, api.SetSubtotalResponse]
	setPooledAmounts *connect.Client[api.SetPooledAmountsRequest, api.SheetResponse]
	deleteSheet      *connect.Client[api.DeleteSheetRequest, api.DeleteSheetResponse]
}

func (c *sheetServiceClient) CreateSheet(ctx context.Context, req *connect.Request[api.CreateSheetRequest]) (*connect.Response[api.CreateSheetResponse], error) {
	return c.createSheet.CallUnary(ctx, req)
}

func (c *sheetServiceClient) GetSheet(ctx context.Context, req *connect.Request[api.GetSheetRequest]) (*connect.Response[api.SheetResponse], error) {
	return c.getSheet.CallUnary(ctx, req)
}

func (c *sheetServiceClient) ListSheets(ctx context.Context, req *connect.Request[api.ListSheetsRequest]) (*connect.Response[api.ListSheetsResponse], error) {
	return c.listSheets.CallUnary(ctx, req)
}

func (c *sheetServiceClient) AddRow(ctx context.Context, req *connect.Request[api.AddRowRequest]) (*connect.Response[api.AddRowResponse], error) {
	return c.addRow.CallUnary(ctx, req)
}

func (c *sheetServiceClient) RemoveRow(ctx context.Context, req *connect.Request[api.RemoveRowRequest]) (*connect.Response[api.SheetResponse], error) {
	return c.removeRow.CallUnary(ctx, req)
}

func (c *sheetServiceClient) RenameRow(ctx context.Context, req *connect.Request[api.RenameRowRequest]) (*connect.Response[api.SheetResponse], error) {
	return c.renameRow.CallUnary(ctx, req)
}

func (c *sheetServiceClient) SetSubtotal(ctx context.Context, req *connect.Request[api.SetSubtotalRequest]) (*connect.Response[api.SetSubtotalResponse], error) {
	return c.setSubtotal.CallUnary(ctx, req)
}

func (c *sheetServiceClient) SetPooledAmounts(ctx context.Context, req *connect.Request[api.SetPooledAmountsRequest]) (*connect.Response[api.SheetResponse], error) {
	return c.setPooledAmounts.CallUnary(ctx, req)
}

func (c *sheetServiceClient) DeleteSheet(ctx context.Context, req *connect.Request[api.DeleteSheetRequest]) (*connect.Response[api.DeleteSheetResponse], error) {
	return c.deleteSheet.CallUnary(ctx, req)
}
