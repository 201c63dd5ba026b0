package tax

import "math"

// MarginalStep is the increment used to approximate the marginal rate.
const MarginalStep = 100.0

// AverageRate returns tax/base, or 0 for a non-positive base.
func AverageRate(tax, base float64) float64 {
	if !(base > 0) {
		return 0
	}
	return tax / base
}

// MarginalRate approximates the splitting tariff's marginal rate at the given
// joint base as the tax increase over the next MarginalStep units, measured
// from the base rounded to whole units.
func MarginalRate(jointBase float64) float64 {
	z := math.Round(Amount(jointBase))
	return (SplittingTax(z+MarginalStep) - SplittingTax(z)) / MarginalStep
}
