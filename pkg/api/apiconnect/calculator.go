// Package apiconnect wires the godutch.v1 services to Connect handlers and clients.
package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/godutch/pkg/api"
)

const (
	// CalculatorServiceName is the fully-qualified name of the CalculatorService service.
	CalculatorServiceName = "godutch.v1.CalculatorService"
)

const (
	CalculatorServiceSettleProcedure      = "/godutch.v1.CalculatorService/Settle"
	CalculatorServiceAllocateProcedure    = "/godutch.v1.CalculatorService/Allocate"
	CalculatorServiceSplitEvenlyProcedure = "/godutch.v1.CalculatorService/SplitEvenly"
	CalculatorServiceMultiplyProcedure    = "/godutch.v1.CalculatorService/Multiply"
)

// CalculatorServiceHandler is implemented by the stateless calculator service.
type CalculatorServiceHandler interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	Allocate(context.Context, *connect.Request[api.AllocateRequest]) (*connect.Response[api.AllocateResponse], error)
	SplitEvenly(context.Context, *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error)
	Multiply(context.Context, *connect.Request[api.MultiplyRequest]) (*connect.Response[api.MultiplyResponse], error)
}

// NewCalculatorServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount it on.
func NewCalculatorServiceHandler(svc CalculatorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	settle := connect.NewUnaryHandler(CalculatorServiceSettleProcedure, svc.Settle, opts...)
	allocate := connect.NewUnaryHandler(CalculatorServiceAllocateProcedure, svc.Allocate, opts...)
	splitEvenly := connect.NewUnaryHandler(CalculatorServiceSplitEvenlyProcedure, svc.SplitEvenly, opts...)
	multiply := connect.NewUnaryHandler(CalculatorServiceMultiplyProcedure, svc.Multiply, opts...)

	return "/" + CalculatorServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CalculatorServiceSettleProcedure:
			settle.ServeHTTP(w, r)
		case CalculatorServiceAllocateProcedure:
			allocate.ServeHTTP(w, r)
		case CalculatorServiceSplitEvenlyProcedure:
			splitEvenly.ServeHTTP(w, r)
		case CalculatorServiceMultiplyProcedure:
			multiply.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// CalculatorServiceClient calls a remote CalculatorService.
type CalculatorServiceClient interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	Allocate(context.Context, *connect.Request[api.AllocateRequest]) (*connect.Response[api.AllocateResponse], error)
	SplitEvenly(context.Context, *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error)
	Multiply(context.Context, *connect.Request[api.MultiplyRequest]) (*connect.Response[api.MultiplyResponse], error)
}

// NewCalculatorServiceClient constructs a client for the service mounted at baseURL.
func NewCalculatorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalculatorServiceClient {
	opts = withClientCodec(opts)
	return &calculatorServiceClient{
		settle:      connect.NewClient[api.SettleRequest, api.SettleResponse](httpClient, baseURL+CalculatorServiceSettleProcedure, opts...),
		allocate:    connect.NewClient[api.AllocateRequest, api.AllocateResponse](httpClient, baseURL+CalculatorServiceAllocateProcedure, opts...),
		splitEvenly: connect.NewClient[api.SplitEvenlyRequest, api.SplitEvenlyResponse](httpClient, baseURL+CalculatorServiceSplitEvenlyProcedure, opts...),
		multiply:    connect.NewClient[api.MultiplyRequest, api.MultiplyResponse](httpClient, baseURL+CalculatorServiceMultiplyProcedure, opts...),
	}
}

type calculatorServiceClient struct {
	settle      *connect.Client[api.SettleRequest, api.SettleResponse]
	allocate    *connect.Client[api.AllocateRequest, api.AllocateResponse]
	splitEvenly *connect.Client[api.SplitEvenlyRequest, api.SplitEvenlyResponse]
	multiply    *connect.Client[api.MultiplyRequest, api.MultiplyResponse]
}

func (c *calculatorServiceClient) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) Allocate(ctx context.Context, req *connect.Request[api.AllocateRequest]) (*connect.Response[api.AllocateResponse], error) {
	return c.allocate.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) SplitEvenly(ctx context.Context, req *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error) {
	return c.splitEvenly.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) Multiply(ctx context.Context, req *connect.Request[api.MultiplyRequest]) (*connect.Response[api.MultiplyResponse], error) {
	return c.multiply.CallUnary(ctx, req)
}

// withHandlerCodec puts the JSON codec first so callers can still override it.
func withHandlerCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

func withClientCodec(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}
