package models

// ComputationResult is the outcome of one joint tax computation.
type ComputationResult struct {
	// ExpensesNet is the net basis of all of Person A's expenses.
	ExpensesNet float64

	// AdjustedProfitA is Person A's profit after expenses, floored at zero.
	AdjustedProfitA float64

	// InsuranceYearA is Person A's annual health insurance liability:
	// min(AdjustedProfitA, ceiling) × rate.
	InsuranceYearA float64

	// InsuranceRemainderA is InsuranceYearA minus what was already paid.
	// Informational; it does not feed back into the taxable base.
	InsuranceRemainderA float64

	// PrivateInsuranceYearB is Person B's annual private insurance.
	PrivateInsuranceYearB float64

	// BaseA and BaseB are each person's contribution to the joint base.
	BaseA float64
	BaseB float64

	// JointBase is BaseA + BaseB.
	JointBase float64

	// PrimaryTax is the splitting tariff applied to JointBase.
	PrimaryTax float64

	// Surcharge is the solidarity surcharge, 0 when disabled.
	Surcharge float64

	// TotalTax is PrimaryTax + Surcharge.
	TotalTax float64

	// AverageRate is PrimaryTax / JointBase, 0 for an empty base.
	AverageRate float64

	// ShareA and ShareB are the proportional shares of the joint base.
	// They fall back to 0.5 each when both bases are zero.
	ShareA float64
	ShareB float64

	// FairTaxA and FairTaxB split TotalTax by ShareA and ShareB.
	FairTaxA float64
	FairTaxB float64

	// WithheldB is the wage tax already withheld from Person B.
	WithheldB float64

	// OutstandingTotal is TotalTax minus WithheldB, floored at zero.
	OutstandingTotal float64

	// RestTaxA and RestTaxB are the amounts each person still owes.
	RestTaxA float64
	RestTaxB float64
}

// SettledExpense is an expense included in the settlement.
type SettledExpense struct {
	Name           string
	Gross          float64
	VATRatePercent float64
	Net            float64
}

// Transfer is a suggested payment from one person to the other.
type Transfer struct {
	From   Payer
	To     Payer
	Amount float64
}

// SettlementSummary prices the expenses marked for settlement by comparing
// the tax with all expenses against the tax without the marked ones.
type SettlementSummary struct {
	Items []SettledExpense

	GrossSum float64
	NetSum   float64
	VATSum   float64

	// With is the computation including every expense, as filed.
	With ComputationResult

	// Without is the computation with the settled expenses removed.
	Without ComputationResult

	// TotalSaving is Without.TotalTax - With.TotalTax, floored at zero.
	TotalSaving float64

	// EffectiveRate is TotalSaving / NetSum, 0 when nothing is selected.
	EffectiveRate float64

	// SavingA and SavingB are each person's half of TotalSaving.
	SavingA float64
	SavingB float64

	// Transfer is nil when there is no saving to share.
	Transfer *Transfer
}

// TableRow is one line of the splitting table.
type TableRow struct {
	JointBase    float64
	Tax          float64
	AverageRate  float64
	MarginalRate float64
}
