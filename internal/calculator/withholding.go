package calculator

import (
	"math"

	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

// WithholdingRate is the assumed wage tax rate for the automatic estimate.
const WithholdingRate = 0.14

// AutoWithholding estimates wage tax withheld from gross income, rounded to
// the nearest 10.
func AutoWithholding(grossIncome float64) float64 {
	return math.Round(tax.Amount(grossIncome)*WithholdingRate/10) * 10
}

// Withheld returns the wage tax withheld from Person B: the automatic estimate
// while WithholdingAuto is set, the entered amount otherwise.
func Withheld(b models.PersonBInputs) float64 {
	if b.WithholdingAuto {
		return AutoWithholding(b.GrossIncome)
	}
	return tax.Amount(b.TaxWithheld)
}

// ApplyAutoWithholding returns a copy of cfg with Person B's TaxWithheld
// replaced by the automatic estimate. Manual values are kept when
// WithholdingAuto is off.
func ApplyAutoWithholding(cfg models.JointConfiguration) models.JointConfiguration {
	if cfg.PersonB.WithholdingAuto {
		cfg.PersonB.TaxWithheld = AutoWithholding(cfg.PersonB.GrossIncome)
	}
	return cfg
}
