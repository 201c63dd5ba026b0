package calculator

import (
	"math"

	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

// ComputeResult runs the full joint computation for cfg.
//
// Person B's withholding is netted against B's fair share first; whatever it
// covers beyond that reduces Person A's outstanding amount.
func ComputeResult(cfg models.JointConfiguration) models.ComputationResult {
	bases := ComputeTaxableBases(cfg.PersonA, cfg.PersonB)

	jointBase := bases.A + bases.B
	primary := tax.SplittingTax(jointBase)
	surcharge := tax.Surcharge(primary, cfg.ApplySurcharge)
	total := primary + surcharge

	a, b := SplitTax(total, bases.A, bases.B)

	withheld := Withheld(cfg.PersonB)
	outstanding := math.Max(0, total-withheld)
	restB := math.Max(0, b.Tax-withheld)
	restA := math.Max(0, outstanding-restB)

	return models.ComputationResult{
		ExpensesNet:           bases.ExpensesNet,
		AdjustedProfitA:       bases.AdjustedProfitA,
		InsuranceYearA:        bases.InsuranceYearA,
		InsuranceRemainderA:   bases.InsuranceRemainderA,
		PrivateInsuranceYearB: bases.PrivateInsuranceYearB,
		BaseA:                 bases.A,
		BaseB:                 bases.B,
		JointBase:             jointBase,
		PrimaryTax:            primary,
		Surcharge:             surcharge,
		TotalTax:              total,
		AverageRate:           tax.AverageRate(primary, jointBase),
		ShareA:                a.Share,
		ShareB:                b.Share,
		FairTaxA:              a.Tax,
		FairTaxB:              b.Tax,
		WithheldB:             withheld,
		OutstandingTotal:      outstanding,
		RestTaxA:              restA,
		RestTaxB:              restB,
	}
}
