package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmynk/taxsplit/internal/models"
)

// WriteResult prints the joint computation.
func WriteResult(w io.Writer, r models.ComputationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label string
		value string
	}{
		{"Expenses (net)", FormatEuro(r.ExpensesNet)},
		{"Insurance Person A", FormatEuro(r.InsuranceYearA)},
		{"Insurance still due A", FormatEuro(r.InsuranceRemainderA)},
		{"Taxable base A", FormatEuro(r.BaseA)},
		{"Taxable base B", FormatEuro(r.BaseB)},
		{"Joint taxable base", FormatEuro(r.JointBase)},
		{"Income tax", FormatEuro(r.PrimaryTax)},
		{"Solidarity surcharge", FormatEuro(r.Surcharge)},
		{"Total tax", FormatEuro(r.TotalTax)},
		{"Average rate", FormatPercent(r.AverageRate)},
		{"Fair share A", FormatEuro(r.FairTaxA) + " (" + FormatPercent(r.ShareA) + ")"},
		{"Fair share B", FormatEuro(r.FairTaxB) + " (" + FormatPercent(r.ShareB) + ")"},
		{"Withheld B", FormatEuro(r.WithheldB)},
		{"Outstanding", FormatEuro(r.OutstandingTotal)},
		{"Still to pay A", FormatEuro(r.RestTaxA)},
		{"Still to pay B", FormatEuro(r.RestTaxB)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s €\t\n", row.label, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteSettlement prints the settled expenses, the saving and the transfer.
func WriteSettlement(w io.Writer, s models.SettlementSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tp := &lineWriter{w: tw}
	tp.printf("Expense\tGross\tVAT %%\tNet\t\n")
	for _, it := range s.Items {
		tp.printf("%s\t%s €\t%s\t%s €\t\n",
			it.Name, FormatEuro(it.Gross), FormatEuro(it.VATRatePercent), FormatEuro(it.Net))
	}
	tp.printf("Total\t%s €\t\t%s €\t\n", FormatEuro(s.GrossSum), FormatEuro(s.NetSum))
	if tp.err != nil {
		return tp.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := &lineWriter{w: w}
	p.printf("\nTax with expenses:    %s €\n", FormatEuro(s.With.TotalTax))
	p.printf("Tax without expenses: %s €\n", FormatEuro(s.Without.TotalTax))
	p.printf("Saving:               %s € (%s of net)\n", FormatEuro(s.TotalSaving), FormatPercent(s.EffectiveRate))
	p.printf("Per person:           %s €\n", FormatEuro(s.SavingA))
	if s.Transfer == nil {
		p.printf("No transfer needed.\n")
	} else {
		p.printf("Transfer: %s pays %s %s €\n", s.Transfer.From, s.Transfer.To, FormatEuro(s.Transfer.Amount))
	}
	return p.err
}

// WriteTable prints the splitting table. current, if non-nil, is appended as
// the line for the actual joint base.
func WriteTable(w io.Writer, rows []models.TableRow, current *models.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	p := &lineWriter{w: tw}
	p.printf("Joint base\tTax\tAverage\tMarginal\t\n")
	for _, r := range rows {
		p.row(r)
	}
	if current != nil {
		p.printf("\t\t\t\t\n")
		p.row(*current)
	}
	if p.err != nil {
		return p.err
	}
	return tw.Flush()
}

// lineWriter keeps the first write error and skips later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (p *lineWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *lineWriter) row(r models.TableRow) {
	p.printf("%s €\t%s €\t%s\t%s\t\n",
		FormatEuro(r.JointBase), FormatEuro(r.Tax), FormatPercent(r.AverageRate), FormatPercent(r.MarginalRate))
}
