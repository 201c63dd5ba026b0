package models

import "fmt"

// Payer identifies who paid an expense.
type Payer string

const (
	PayerPersonA Payer = "personA"
	PayerPersonB Payer = "personB"
	PayerSplit   Payer = "split"
)

// ParsePayer converts a payer key to a Payer. An empty key means PayerSplit.
func ParsePayer(key string) (Payer, error) {
	switch Payer(key) {
	case PayerPersonA, PayerPersonB, PayerSplit:
		return Payer(key), nil
	case "":
		return PayerSplit, nil
	}
	return "", fmt.Errorf("unknown payer %q", key)
}

// Defaults for expenses entered without a rate or share.
const (
	DefaultVATRate = 19.0
	DefaultShare   = 0.5
)

// ExpenseItem is a deductible business expense of Person A.
type ExpenseItem struct {
	// Name is for display only.
	Name string

	// Gross is the amount paid including VAT.
	Gross float64

	// VATRatePercent is the VAT embedded in Gross. A negative rate means
	// Gross is already net.
	VATRatePercent float64

	// Settle marks the expense for settlement between both people.
	// It does not affect deductibility: every expense reduces Person A's
	// taxable base.
	Settle bool

	// PaidBy records who paid the expense.
	// Carried for display; the settlement splits the aggregate saving 50/50.
	PaidBy Payer

	// Share is Person A's fair share of the expense in [0,1].
	// Carried for display like PaidBy.
	Share float64
}
