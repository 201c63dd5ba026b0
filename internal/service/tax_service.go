package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/mmynk/taxsplit/internal/api"
	"github.com/mmynk/taxsplit/internal/calculator"
	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

var errMissingConfiguration = errors.New("configuration is required")

// TaxService implements the Connect TaxService. It holds no state: every
// request carries the full configuration.
type TaxService struct{}

var _ api.TaxServiceHandler = (*TaxService)(nil)

// NewTaxService creates a new TaxService.
func NewTaxService() *TaxService {
	return &TaxService{}
}

// ComputeResult handles the joint tax computation
func (s *TaxService) ComputeResult(ctx context.Context, req *connect.Request[api.ComputeResultRequest]) (*connect.Response[api.ComputeResultResponse], error) {
	if req.Msg.Configuration == nil {
		slog.Error("ComputeResult: missing configuration")
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingConfiguration)
	}
	cfg, err := toConfiguration(req.Msg.Configuration)
	if err != nil {
		slog.Error("ComputeResult: invalid configuration", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	res := calculator.ComputeResult(cfg)
	slog.Info("Computed joint tax",
		"joint_base", res.JointBase,
		"total_tax", res.TotalTax,
		"surcharge", cfg.ApplySurcharge,
		"expenses", len(cfg.PersonA.Expenses),
	)
	slog.Debug("Per-person figures",
		"base_a", res.BaseA,
		"base_b", res.BaseB,
		"fair_tax_a", res.FairTaxA,
		"fair_tax_b", res.FairTaxB,
		"rest_tax_a", res.RestTaxA,
		"rest_tax_b", res.RestTaxB,
	)

	resp := &api.ComputeResultResponse{Result: toResult(res)}
	if row, ok := calculator.CurrentRates(res.JointBase); ok {
		resp.Current = lo.ToPtr(toTableRow(row))
	}
	return connect.NewResponse(resp), nil
}

// ComputeSettlement handles the expense settlement
func (s *TaxService) ComputeSettlement(ctx context.Context, req *connect.Request[api.ComputeSettlementRequest]) (*connect.Response[api.ComputeSettlementResponse], error) {
	if req.Msg.Configuration == nil {
		slog.Error("ComputeSettlement: missing configuration")
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingConfiguration)
	}
	cfg, err := toConfiguration(req.Msg.Configuration)
	if err != nil {
		slog.Error("ComputeSettlement: invalid configuration", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	summary := calculator.ComputeSettlement(cfg)
	slog.Info("Computed settlement",
		"items", len(summary.Items),
		"net_sum", summary.NetSum,
		"total_saving", summary.TotalSaving,
		"transfer", summary.Transfer != nil,
	)

	return connect.NewResponse(&api.ComputeSettlementResponse{
		Settlement: toSettlement(summary),
	}), nil
}

// SplittingTable returns the splitting tariff around a joint base
func (s *TaxService) SplittingTable(ctx context.Context, req *connect.Request[api.SplittingTableRequest]) (*connect.Response[api.SplittingTableResponse], error) {
	rows := calculator.SplittingTable(req.Msg.JointBase)
	slog.Debug("Built splitting table", "joint_base", req.Msg.JointBase, "from", rows[0].JointBase, "to", rows[len(rows)-1].JointBase)

	resp := &api.SplittingTableResponse{
		Rows: lo.Map(rows, func(r models.TableRow, _ int) api.TableRow { return toTableRow(r) }),
	}
	if row, ok := calculator.CurrentRates(req.Msg.JointBase); ok {
		resp.Current = lo.ToPtr(toTableRow(row))
	}
	return connect.NewResponse(resp), nil
}

// EvaluateTax evaluates the tariff for a single amount
func (s *TaxService) EvaluateTax(ctx context.Context, req *connect.Request[api.EvaluateTaxRequest]) (*connect.Response[api.EvaluateTaxResponse], error) {
	amount := tax.Amount(req.Msg.Amount)
	splitting := tax.SplittingTax(amount)

	return connect.NewResponse(&api.EvaluateTaxResponse{
		BracketTax:   tax.BracketTax(amount),
		SplittingTax: splitting,
		Surcharge:    tax.Surcharge(splitting, req.Msg.Surcharge),
		AverageRate:  tax.AverageRate(splitting, amount),
		MarginalRate: tax.MarginalRate(amount),
	}), nil
}
