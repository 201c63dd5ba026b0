package service

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mmynk/taxsplit/internal/api"
	"github.com/mmynk/taxsplit/internal/models"
)

// toConfiguration converts a wire configuration to the domain model.
// Omitted standard deductions, VAT rates and shares take their defaults.
func toConfiguration(c *api.Configuration) (models.JointConfiguration, error) {
	cfg := models.NewJointConfiguration()

	expenses := make([]models.ExpenseItem, len(c.PersonA.Expenses))
	for i, e := range c.PersonA.Expenses {
		payer, err := models.ParsePayer(e.PaidBy)
		if err != nil {
			return models.JointConfiguration{}, fmt.Errorf("expense %d: %w", i+1, err)
		}
		expenses[i] = models.ExpenseItem{
			Name:           e.Name,
			Gross:          e.Gross,
			VATRatePercent: lo.FromPtrOr(e.VATRatePercent, models.DefaultVATRate),
			Settle:         e.Settle,
			PaidBy:         payer,
			Share:          lo.Clamp(lo.FromPtrOr(e.Share, models.DefaultShare), 0, 1),
		}
	}

	cfg.PersonA = models.PersonAInputs{
		GrossProfit:         c.PersonA.GrossProfit,
		HealthInsurancePaid: c.PersonA.HealthInsurancePaid,
		Donations:           c.PersonA.Donations,
		StandardDeduction:   lo.FromPtrOr(c.PersonA.StandardDeduction, models.DefaultStandardDeductionA),
		Expenses:            expenses,
	}
	cfg.PersonB = models.PersonBInputs{
		GrossIncome:             c.PersonB.GrossIncome,
		TaxWithheld:             c.PersonB.TaxWithheld,
		WithholdingAuto:         c.PersonB.WithholdingAuto,
		MonthlyPrivateInsurance: c.PersonB.MonthlyPrivateInsurance,
		Donations:               c.PersonB.Donations,
		StandardDeduction:       lo.FromPtrOr(c.PersonB.StandardDeduction, models.DefaultStandardDeductionB),
	}
	cfg.ApplySurcharge = c.ApplySurcharge
	return cfg, nil
}

func toResult(r models.ComputationResult) api.Result {
	return api.Result{
		ExpensesNet:           r.ExpensesNet,
		AdjustedProfitA:       r.AdjustedProfitA,
		InsuranceYearA:        r.InsuranceYearA,
		InsuranceRemainderA:   r.InsuranceRemainderA,
		PrivateInsuranceYearB: r.PrivateInsuranceYearB,
		BaseA:                 r.BaseA,
		BaseB:                 r.BaseB,
		JointBase:             r.JointBase,
		PrimaryTax:            r.PrimaryTax,
		Surcharge:             r.Surcharge,
		TotalTax:              r.TotalTax,
		AverageRate:           r.AverageRate,
		ShareA:                r.ShareA,
		ShareB:                r.ShareB,
		FairTaxA:              r.FairTaxA,
		FairTaxB:              r.FairTaxB,
		WithheldB:             r.WithheldB,
		OutstandingTotal:      r.OutstandingTotal,
		RestTaxA:              r.RestTaxA,
		RestTaxB:              r.RestTaxB,
	}
}

func toSettlement(s models.SettlementSummary) api.Settlement {
	out := api.Settlement{
		Items: lo.Map(s.Items, func(it models.SettledExpense, _ int) api.SettledExpense {
			return api.SettledExpense{
				Name:           it.Name,
				Gross:          it.Gross,
				VATRatePercent: it.VATRatePercent,
				Net:            it.Net,
			}
		}),
		GrossSum:      s.GrossSum,
		NetSum:        s.NetSum,
		VATSum:        s.VATSum,
		With:          toResult(s.With),
		Without:       toResult(s.Without),
		TotalSaving:   s.TotalSaving,
		EffectiveRate: s.EffectiveRate,
		SavingA:       s.SavingA,
		SavingB:       s.SavingB,
	}
	if s.Transfer != nil {
		out.Transfer = &api.Transfer{
			From:   string(s.Transfer.From),
			To:     string(s.Transfer.To),
			Amount: s.Transfer.Amount,
		}
	}
	return out
}

func toTableRow(r models.TableRow) api.TableRow {
	return api.TableRow{
		JointBase:    r.JointBase,
		Tax:          r.Tax,
		AverageRate:  r.AverageRate,
		MarginalRate: r.MarginalRate,
	}
}
