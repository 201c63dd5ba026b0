package calculator

// PersonSplit is one person's share of the joint tax.
type PersonSplit struct {
	Base  float64
	Share float64
	Tax   float64
}

// SplitTax distributes the joint tax in proportion to each taxable base.
// Based on: share_a = base_a / (base_a + base_b), share_b = 1 - share_a.
// If both bases are zero the tax is split equally.
func SplitTax(totalTax, baseA, baseB float64) (PersonSplit, PersonSplit) {
	totalParts := baseA + baseB

	shareA := 0.5
	if totalParts > 0 {
		shareA = baseA / totalParts
	}
	shareB := 1 - shareA

	a := PersonSplit{Base: baseA, Share: shareA, Tax: totalTax * shareA}
	b := PersonSplit{Base: baseB, Share: shareB, Tax: totalTax * shareB}
	return a, b
}
