// Package calculator derives the joint tax result and the expense settlement
// from a models.JointConfiguration. All functions are pure: they read the
// configuration, never modify it and never fail.
package calculator

import (
	"math"

	"github.com/samber/lo"

	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

// Health insurance for the self-employed person.
const (
	InsuranceRate    = 0.197
	InsuranceCeiling = 62_100.0
)

// Bases holds each person's taxable base and the figures leading to it.
type Bases struct {
	ExpensesNet           float64
	AdjustedProfitA       float64
	InsuranceYearA        float64
	InsuranceRemainderA   float64
	PrivateInsuranceYearB float64

	A float64
	B float64
}

// NetAmount returns the economic basis of an expense. VAT is always treated
// as reclaimable.
func NetAmount(e models.ExpenseItem) float64 {
	return tax.NetFromGross(tax.Amount(e.Gross), e.VATRatePercent)
}

// ExpensesNet sums the net basis of every expense, settled or not.
func ExpensesNet(expenses []models.ExpenseItem) float64 {
	return lo.SumBy(expenses, NetAmount)
}

// ComputeTaxableBases computes both people's contributions to the joint
// taxable base. Neither base goes below zero.
func ComputeTaxableBases(a models.PersonAInputs, b models.PersonBInputs) Bases {
	expenses := ExpensesNet(a.Expenses)

	adjusted := math.Max(0, tax.Amount(a.GrossProfit)-expenses)
	insurance := math.Min(adjusted, InsuranceCeiling) * InsuranceRate
	remainder := math.Max(0, insurance-tax.Amount(a.HealthInsurancePaid))

	baseA := math.Max(0, adjusted-insurance-tax.Amount(a.Donations)-
		standardDeduction(a.StandardDeduction, models.DefaultStandardDeductionA))

	privateInsurance := tax.Amount(b.MonthlyPrivateInsurance) * 12
	baseB := math.Max(0, tax.Amount(b.GrossIncome)-privateInsurance-tax.Amount(b.Donations)-
		standardDeduction(b.StandardDeduction, models.DefaultStandardDeductionB))

	return Bases{
		ExpensesNet:           expenses,
		AdjustedProfitA:       adjusted,
		InsuranceYearA:        insurance,
		InsuranceRemainderA:   remainder,
		PrivateInsuranceYearB: privateInsurance,
		A:                     baseA,
		B:                     baseB,
	}
}

func standardDeduction(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return tax.Amount(v)
}
