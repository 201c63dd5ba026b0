package calculator

import (
	"math"

	"github.com/samber/lo"

	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

// minTransfer avoids suggesting payments made of floating point noise.
const minTransfer = 0.01

// ComputeSettlement prices the expenses marked for settlement.
//
// Algorithm:
// - "with": full computation using every expense, as filed
// - "without": full computation with the settled expenses removed
// - saving = max(0, without.total - with.total), shared 50/50
//
// Both sides are complete tariff evaluations, so crossing a zone boundary is
// priced exactly. The per-expense PaidBy and Share fields are not consulted.
func ComputeSettlement(cfg models.JointConfiguration) models.SettlementSummary {
	expenses := cfg.PersonA.Expenses
	selected := lo.Filter(expenses, func(e models.ExpenseItem, _ int) bool {
		return e.Settle
	})

	items := lo.Map(selected, func(e models.ExpenseItem, _ int) models.SettledExpense {
		return models.SettledExpense{
			Name:           e.Name,
			Gross:          tax.Amount(e.Gross),
			VATRatePercent: e.VATRatePercent,
			Net:            NetAmount(e),
		}
	})
	grossSum := lo.SumBy(items, func(it models.SettledExpense) float64 { return it.Gross })
	netSum := lo.SumBy(items, func(it models.SettledExpense) float64 { return it.Net })

	without := cfg
	without.PersonA.Expenses = lo.Filter(expenses, func(e models.ExpenseItem, _ int) bool {
		return !e.Settle
	})

	withResult := ComputeResult(cfg)
	withoutResult := ComputeResult(without)

	saving := math.Max(0, withoutResult.TotalTax-withResult.TotalTax)
	perPerson := saving / 2

	summary := models.SettlementSummary{
		Items:         items,
		GrossSum:      grossSum,
		NetSum:        netSum,
		VATSum:        math.Max(0, grossSum-netSum),
		With:          withResult,
		Without:       withoutResult,
		TotalSaving:   saving,
		EffectiveRate: tax.AverageRate(saving, netSum),
		SavingA:       perPerson,
		SavingB:       perPerson,
	}

	// The deduction lowers Person A's base and so A's fair share of the tax;
	// A passes B's half of the saving on.
	if perPerson > minTransfer {
		summary.Transfer = &models.Transfer{
			From:   models.PayerPersonA,
			To:     models.PayerPersonB,
			Amount: perPerson,
		}
	}

	return summary
}
