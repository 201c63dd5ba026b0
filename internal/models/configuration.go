package models

// Default standard deductions.
const (
	DefaultStandardDeductionA = 36.0
	DefaultStandardDeductionB = 1230.0
)

// PersonAInputs holds the figures of the self-employed person.
type PersonAInputs struct {
	// GrossProfit is the annual profit before business expenses.
	GrossProfit float64

	// HealthInsurancePaid is health and care insurance already paid this year.
	// Only used for the informational insurance remainder.
	HealthInsurancePaid float64

	Donations float64

	// StandardDeduction is the lump-sum deduction. A non-finite value falls
	// back to DefaultStandardDeductionA.
	StandardDeduction float64

	// Expenses are deducted from GrossProfit at their net basis.
	Expenses []ExpenseItem
}

// PersonBInputs holds the figures of the employed person.
type PersonBInputs struct {
	// GrossIncome is the annual employment income.
	GrossIncome float64

	// TaxWithheld is wage tax already withheld. Ignored while WithholdingAuto
	// is set.
	TaxWithheld float64

	// WithholdingAuto derives TaxWithheld from GrossIncome.
	WithholdingAuto bool

	// MonthlyPrivateInsurance is deducted twelve times per year.
	MonthlyPrivateInsurance float64

	Donations float64

	// StandardDeduction is the employee lump sum. A non-finite value falls
	// back to DefaultStandardDeductionB.
	StandardDeduction float64
}

// JointConfiguration is the complete input of one computation.
type JointConfiguration struct {
	PersonA PersonAInputs

	PersonB PersonBInputs

	// ApplySurcharge enables the solidarity surcharge.
	ApplySurcharge bool
}

// NewJointConfiguration returns a configuration with the default standard
// deductions and automatic withholding enabled.
func NewJointConfiguration() JointConfiguration {
	return JointConfiguration{
		PersonA: PersonAInputs{StandardDeduction: DefaultStandardDeductionA},
		PersonB: PersonBInputs{
			StandardDeduction: DefaultStandardDeductionB,
			WithholdingAuto:   true,
		},
	}
}
