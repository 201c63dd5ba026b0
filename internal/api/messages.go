// Package api defines the taxsplit.v1 wire messages and the Connect
// handler/client plumbing for TaxService. Messages travel as JSON.
package api

// Expense is an expense on the wire. PaidBy is one of "personA", "personB"
// or "split". An omitted VAT rate means 19 %, an omitted share 0.5.
type Expense struct {
	Name           string   `json:"name,omitempty"`
	Gross          float64  `json:"gross"`
	VATRatePercent *float64 `json:"vatRate,omitempty"`
	Settle         bool     `json:"settle,omitempty"`
	PaidBy         string   `json:"paidBy,omitempty"`
	Share          *float64 `json:"share,omitempty"`
}

// PersonA carries the self-employed person's inputs.
type PersonA struct {
	GrossProfit         float64   `json:"grossProfit"`
	HealthInsurancePaid float64   `json:"healthInsurancePaid"`
	Donations           float64   `json:"donations"`
	StandardDeduction   *float64  `json:"standardDeduction,omitempty"`
	Expenses            []Expense `json:"expenses,omitempty"`
}

// PersonB carries the employed person's inputs.
type PersonB struct {
	GrossIncome             float64  `json:"grossIncome"`
	TaxWithheld             float64  `json:"taxWithheld"`
	WithholdingAuto         bool     `json:"withholdingAuto"`
	MonthlyPrivateInsurance float64  `json:"monthlyPrivateInsurance"`
	Donations               float64  `json:"donations"`
	StandardDeduction       *float64 `json:"standardDeduction,omitempty"`
}

// Configuration mirrors models.JointConfiguration. Omitted standard
// deductions take their defaults.
type Configuration struct {
	PersonA        PersonA `json:"personA"`
	PersonB        PersonB `json:"personB"`
	ApplySurcharge bool    `json:"applySurcharge"`
}

// Result mirrors models.ComputationResult.
type Result struct {
	ExpensesNet           float64 `json:"expensesNet"`
	AdjustedProfitA       float64 `json:"adjustedProfitA"`
	InsuranceYearA        float64 `json:"insuranceYearA"`
	InsuranceRemainderA   float64 `json:"insuranceRemainderA"`
	PrivateInsuranceYearB float64 `json:"privateInsuranceYearB"`
	BaseA                 float64 `json:"baseA"`
	BaseB                 float64 `json:"baseB"`
	JointBase             float64 `json:"jointBase"`
	PrimaryTax            float64 `json:"primaryTax"`
	Surcharge             float64 `json:"surcharge"`
	TotalTax              float64 `json:"totalTax"`
	AverageRate           float64 `json:"averageRate"`
	ShareA                float64 `json:"shareA"`
	ShareB                float64 `json:"shareB"`
	FairTaxA              float64 `json:"fairTaxA"`
	FairTaxB              float64 `json:"fairTaxB"`
	WithheldB             float64 `json:"withheldB"`
	OutstandingTotal      float64 `json:"outstandingTotal"`
	RestTaxA              float64 `json:"restTaxA"`
	RestTaxB              float64 `json:"restTaxB"`
}

// SettledExpense is one expense included in the settlement.
type SettledExpense struct {
	Name           string  `json:"name,omitempty"`
	Gross          float64 `json:"gross"`
	VATRatePercent float64 `json:"vatRate"`
	Net            float64 `json:"net"`
}

// Transfer is a suggested payment between the two people.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Settlement mirrors models.SettlementSummary.
type Settlement struct {
	Items         []SettledExpense `json:"items"`
	GrossSum      float64          `json:"grossSum"`
	NetSum        float64          `json:"netSum"`
	VATSum        float64          `json:"vatSum"`
	With          Result           `json:"with"`
	Without       Result           `json:"without"`
	TotalSaving   float64          `json:"totalSaving"`
	EffectiveRate float64          `json:"effectiveRate"`
	SavingA       float64          `json:"savingA"`
	SavingB       float64          `json:"savingB"`
	Transfer      *Transfer        `json:"transfer,omitempty"`
}

// TableRow is one line of the splitting table.
type TableRow struct {
	JointBase    float64 `json:"jointBase"`
	Tax          float64 `json:"tax"`
	AverageRate  float64 `json:"averageRate"`
	MarginalRate float64 `json:"marginalRate"`
}

// ComputeResultRequest asks for the joint computation of a configuration.
type ComputeResultRequest struct {
	Configuration *Configuration `json:"configuration"`
}

// ComputeResultResponse carries the result and the rates at its joint base.
type ComputeResultResponse struct {
	Result  Result    `json:"result"`
	Current *TableRow `json:"current,omitempty"`
}

// ComputeSettlementRequest asks for the settlement of the marked expenses.
type ComputeSettlementRequest struct {
	Configuration *Configuration `json:"configuration"`
}

// ComputeSettlementResponse carries the settlement summary.
type ComputeSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

// SplittingTableRequest asks for the table around a joint base.
type SplittingTableRequest struct {
	JointBase float64 `json:"jointBase"`
}

// SplittingTableResponse carries the table rows and the current rates.
type SplittingTableResponse struct {
	Rows    []TableRow `json:"rows"`
	Current *TableRow  `json:"current,omitempty"`
}

// EvaluateTaxRequest asks for the tariff at a single amount.
type EvaluateTaxRequest struct {
	Amount    float64 `json:"amount"`
	Surcharge bool    `json:"surcharge"`
}

// EvaluateTaxResponse carries the tariff values for the amount.
type EvaluateTaxResponse struct {
	BracketTax   float64 `json:"bracketTax"`
	SplittingTax float64 `json:"splittingTax"`
	Surcharge    float64 `json:"surcharge"`
	AverageRate  float64 `json:"averageRate"`
	MarginalRate float64 `json:"marginalRate"`
}
