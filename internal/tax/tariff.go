// Package tax implements the 2025 income tax tariff used for joint filing:
// the five-zone basic tariff, the splitting procedure, the solidarity
// surcharge and the conversion of gross amounts to their net basis.
//
// Every function is total. Invalid inputs (negative, NaN, ±Inf) are clamped
// to zero instead of being reported as errors.
package tax

import "math"

// Tariff zone boundaries and coefficients for 2025. These are legal constants
// and must be reproduced exactly.
const (
	zone1Limit = 12_096
	zone2Limit = 17_443
	zone3Limit = 68_480
	zone4Limit = 277_825

	zone2Quad   = 932.3
	zone2Linear = 1400.0

	zone3Quad   = 176.64
	zone3Linear = 2397.0
	zone3Const  = 1015.13

	zone4Rate   = 0.42
	zone4Offset = 10_911.92

	zone5Rate   = 0.45
	zone5Offset = 19_246.67
)

// Solidarity surcharge parameters.
const (
	SurchargeThreshold = 33_912.0
	SurchargeRate      = 0.055
	SurchargePhaseIn   = 0.2
)

// Amount normalizes a monetary value: negative and non-finite values become 0.
func Amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// floorAmount drops the cents. NaN and negative amounts become 0; +Inf is
// kept so the tariff stays monotonic at the far end.
func floorAmount(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return math.Floor(x)
}

// BracketTax returns the basic tariff for a single filer's taxable amount.
func BracketTax(x float64) float64 {
	z := floorAmount(x)
	switch {
	case z <= zone1Limit:
		return 0
	case z <= zone2Limit:
		y := (z - zone1Limit) / 10_000
		return (zone2Quad*y + zone2Linear) * y
	case z <= zone3Limit:
		y := (z - zone2Limit) / 10_000
		return (zone3Quad*y+zone3Linear)*y + zone3Const
	case z <= zone4Limit:
		return zone4Rate*z - zone4Offset
	default:
		return zone5Rate*z - zone5Offset
	}
}

// SplittingTax applies the basic tariff to half of the joint base and doubles
// the result.
func SplittingTax(jointBase float64) float64 {
	return 2 * BracketTax(jointBase/2)
}

// Surcharge returns the solidarity surcharge on the primary tax. Above the
// threshold the surcharge is the lesser of the full rate and the phase-in
// share of the excess.
func Surcharge(primaryTax float64, enabled bool) float64 {
	if !enabled || !(primaryTax > SurchargeThreshold) {
		return 0
	}
	excess := primaryTax - SurchargeThreshold
	return math.Min(SurchargeRate*primaryTax, SurchargePhaseIn*excess)
}

// NetFromGross backs the embedded VAT out of a gross amount. A negative rate
// marks the amount as already net.
func NetFromGross(gross, ratePercent float64) float64 {
	if ratePercent >= 0 {
		return gross / (1 + ratePercent/100)
	}
	return gross
}
