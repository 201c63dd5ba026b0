// Package scenario reads household scenarios from YAML files.
//
// A scenario looks like this:
//
//	applySurcharge: false
//	personA:
//	  grossProfit: 60000
//	  healthInsurancePaid: 7140
//	  donations: 200
//	  expenses:
//	    - name: Office rent
//	      gross: 4004
//	      vatRate: 0
//	      settle: true
//	personB:
//	  grossIncome: 67000
//	  taxWithheld: 9390
//	  monthlyPrivateInsurance: 300
//	  donations: 200
//
// Omitted fields take the same defaults as a fresh configuration: standard
// deductions of 36 and 1230, a VAT rate of 19 %, payer "split" with a share
// of 0.5. Automatic withholding is on unless taxWithheld is given.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/taxsplit/internal/models"
)

// File is the YAML document.
type File struct {
	ApplySurcharge bool    `yaml:"applySurcharge"`
	PersonA        PersonA `yaml:"personA"`
	PersonB        PersonB `yaml:"personB"`
}

type PersonA struct {
	GrossProfit         float64   `yaml:"grossProfit" validate:"gte=0"`
	HealthInsurancePaid float64   `yaml:"healthInsurancePaid" validate:"gte=0"`
	Donations           float64   `yaml:"donations" validate:"gte=0"`
	StandardDeduction   *float64  `yaml:"standardDeduction" validate:"omitempty,gte=0"`
	Expenses            []Expense `yaml:"expenses" validate:"dive"`
}

type PersonB struct {
	GrossIncome             float64  `yaml:"grossIncome" validate:"gte=0"`
	TaxWithheld             *float64 `yaml:"taxWithheld" validate:"omitempty,gte=0"`
	WithholdingAuto         *bool    `yaml:"withholdingAuto"`
	MonthlyPrivateInsurance float64  `yaml:"monthlyPrivateInsurance" validate:"gte=0"`
	Donations               float64  `yaml:"donations" validate:"gte=0"`
	StandardDeduction       *float64 `yaml:"standardDeduction" validate:"omitempty,gte=0"`
}

type Expense struct {
	Name    string   `yaml:"name"`
	Gross   float64  `yaml:"gross" validate:"gte=0"`
	VATRate *float64 `yaml:"vatRate"`
	Settle  bool     `yaml:"settle"`
	PaidBy  string   `yaml:"paidBy" validate:"omitempty,oneof=personA personB split"`
	Share   *float64 `yaml:"share" validate:"omitempty,gte=0,lte=1"`
}

// Load reads and converts the scenario at path.
func Load(path string) (models.JointConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.JointConfiguration{}, fmt.Errorf("read scenario: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return models.JointConfiguration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a scenario, validates it and applies defaults. Unknown keys
// are rejected.
func Parse(r io.Reader) (models.JointConfiguration, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return models.JointConfiguration{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return models.JointConfiguration{}, fmt.Errorf("invalid scenario: %w", err)
	}
	return f.Configuration()
}

// Configuration converts the file to a models.JointConfiguration.
func (f File) Configuration() (models.JointConfiguration, error) {
	cfg := models.NewJointConfiguration()
	cfg.ApplySurcharge = f.ApplySurcharge

	var expenses []models.ExpenseItem
	for i, e := range f.PersonA.Expenses {
		payer, err := models.ParsePayer(e.PaidBy)
		if err != nil {
			return models.JointConfiguration{}, fmt.Errorf("expense %d: %w", i+1, err)
		}
		expenses = append(expenses, models.ExpenseItem{
			Name:           e.Name,
			Gross:          e.Gross,
			VATRatePercent: lo.FromPtrOr(e.VATRate, models.DefaultVATRate),
			Settle:         e.Settle,
			PaidBy:         payer,
			Share:          lo.FromPtrOr(e.Share, models.DefaultShare),
		})
	}

	cfg.PersonA = models.PersonAInputs{
		GrossProfit:         f.PersonA.GrossProfit,
		HealthInsurancePaid: f.PersonA.HealthInsurancePaid,
		Donations:           f.PersonA.Donations,
		StandardDeduction:   lo.FromPtrOr(f.PersonA.StandardDeduction, models.DefaultStandardDeductionA),
		Expenses:            expenses,
	}
	cfg.PersonB = models.PersonBInputs{
		GrossIncome:             f.PersonB.GrossIncome,
		TaxWithheld:             lo.FromPtr(f.PersonB.TaxWithheld),
		WithholdingAuto:         lo.FromPtrOr(f.PersonB.WithholdingAuto, f.PersonB.TaxWithheld == nil),
		MonthlyPrivateInsurance: f.PersonB.MonthlyPrivateInsurance,
		Donations:               f.PersonB.Donations,
		StandardDeduction:       lo.FromPtrOr(f.PersonB.StandardDeduction, models.DefaultStandardDeductionB),
	}
	return cfg, nil
}
