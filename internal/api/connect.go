package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TaxServiceName is the fully-qualified name of the tax service.
const TaxServiceName = "taxsplit.v1.TaxService"

// Procedure paths.
const (
	TaxServiceComputeResultProcedure     = "/taxsplit.v1.TaxService/ComputeResult"
	TaxServiceComputeSettlementProcedure = "/taxsplit.v1.TaxService/ComputeSettlement"
	TaxServiceSplittingTableProcedure    = "/taxsplit.v1.TaxService/SplittingTable"
	TaxServiceEvaluateTaxProcedure       = "/taxsplit.v1.TaxService/EvaluateTax"
)

// JSONCodec marshals plain Go messages with encoding/json. It is registered
// under the "json" name so Connect clients speaking application/json are
// served by it.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// TaxServiceHandler is implemented by the tax service.
type TaxServiceHandler interface {
	ComputeResult(context.Context, *connect.Request[ComputeResultRequest]) (*connect.Response[ComputeResultResponse], error)
	ComputeSettlement(context.Context, *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error)
	SplittingTable(context.Context, *connect.Request[SplittingTableRequest]) (*connect.Response[SplittingTableResponse], error)
	EvaluateTax(context.Context, *connect.Request[EvaluateTaxRequest]) (*connect.Response[EvaluateTaxResponse], error)
}

// NewTaxServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount the handler on.
func NewTaxServiceHandler(svc TaxServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	computeResult := connect.NewUnaryHandler(TaxServiceComputeResultProcedure, svc.ComputeResult, opts...)
	computeSettlement := connect.NewUnaryHandler(TaxServiceComputeSettlementProcedure, svc.ComputeSettlement, opts...)
	splittingTable := connect.NewUnaryHandler(TaxServiceSplittingTableProcedure, svc.SplittingTable, opts...)
	evaluateTax := connect.NewUnaryHandler(TaxServiceEvaluateTaxProcedure, svc.EvaluateTax, opts...)

	prefix := "/" + TaxServiceName + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TaxServiceComputeResultProcedure:
			computeResult.ServeHTTP(w, r)
		case TaxServiceComputeSettlementProcedure:
			computeSettlement.ServeHTTP(w, r)
		case TaxServiceSplittingTableProcedure:
			splittingTable.ServeHTTP(w, r)
		case TaxServiceEvaluateTaxProcedure:
			evaluateTax.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// TaxServiceClient calls a remote TaxService.
type TaxServiceClient struct {
	computeResult     *connect.Client[ComputeResultRequest, ComputeResultResponse]
	computeSettlement *connect.Client[ComputeSettlementRequest, ComputeSettlementResponse]
	splittingTable    *connect.Client[SplittingTableRequest, SplittingTableResponse]
	evaluateTax       *connect.Client[EvaluateTaxRequest, EvaluateTaxResponse]
}

// NewTaxServiceClient creates a client for the service at baseURL.
func NewTaxServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TaxServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &TaxServiceClient{
		computeResult:     connect.NewClient[ComputeResultRequest, ComputeResultResponse](httpClient, baseURL+TaxServiceComputeResultProcedure, opts...),
		computeSettlement: connect.NewClient[ComputeSettlementRequest, ComputeSettlementResponse](httpClient, baseURL+TaxServiceComputeSettlementProcedure, opts...),
		splittingTable:    connect.NewClient[SplittingTableRequest, SplittingTableResponse](httpClient, baseURL+TaxServiceSplittingTableProcedure, opts...),
		evaluateTax:       connect.NewClient[EvaluateTaxRequest, EvaluateTaxResponse](httpClient, baseURL+TaxServiceEvaluateTaxProcedure, opts...),
	}
}

func (c *TaxServiceClient) ComputeResult(ctx context.Context, req *connect.Request[ComputeResultRequest]) (*connect.Response[ComputeResultResponse], error) {
	return c.computeResult.CallUnary(ctx, req)
}

func (c *TaxServiceClient) ComputeSettlement(ctx context.Context, req *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error) {
	return c.computeSettlement.CallUnary(ctx, req)
}

func (c *TaxServiceClient) SplittingTable(ctx context.Context, req *connect.Request[SplittingTableRequest]) (*connect.Response[SplittingTableResponse], error) {
	return c.splittingTable.CallUnary(ctx, req)
}

func (c *TaxServiceClient) EvaluateTax(ctx context.Context, req *connect.Request[EvaluateTaxRequest]) (*connect.Response[EvaluateTaxResponse], error) {
	return c.evaluateTax.CallUnary(ctx, req)
}
