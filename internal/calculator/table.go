package calculator

import (
	"math"

	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/tax"
)

const (
	tableRows        = 10
	tableStart       = 80_000.0
	tableEnd         = 180_000.0
	tableMinHalf     = 40_000.0
	tableHalfPercent = 0.25
)

// SplittingTable returns rows of the splitting tariff around jointBase.
// Without a positive base the default window 80 000 - 180 000 is used.
// Taxes in the table are rounded to whole units.
func SplittingTable(jointBase float64) []models.TableRow {
	start, end := tableStart, tableEnd
	if isPositive(jointBase) {
		half := math.Max(tableMinHalf, math.Round(jointBase*tableHalfPercent))
		start = math.Max(0, math.Round(jointBase-half))
		end = math.Round(jointBase + half)
	}

	interval := (end - start) / (tableRows - 1)
	rows := make([]models.TableRow, 0, tableRows)
	for i := 0; i < tableRows; i++ {
		z := math.Round(start + float64(i)*interval)
		est := math.Round(tax.SplittingTax(z))
		next := math.Round(tax.SplittingTax(math.Min(z+tax.MarginalStep, end+tax.MarginalStep)))
		rows = append(rows, models.TableRow{
			JointBase:    z,
			Tax:          est,
			AverageRate:  tax.AverageRate(est, z),
			MarginalRate: (next - est) / tax.MarginalStep,
		})
	}
	return rows
}

// CurrentRates returns the tax, average and marginal rate at the exact joint
// base. ok is false when the base is not positive.
func CurrentRates(jointBase float64) (row models.TableRow, ok bool) {
	if !isPositive(jointBase) {
		return models.TableRow{}, false
	}
	est := tax.SplittingTax(math.Round(jointBase))
	return models.TableRow{
		JointBase:    jointBase,
		Tax:          math.Round(est),
		AverageRate:  est / jointBase,
		MarginalRate: tax.MarginalRate(jointBase),
	}, true
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
