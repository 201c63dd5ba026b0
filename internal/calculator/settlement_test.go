package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/taxsplit/internal/models"
)

func householdExpenses() []models.ExpenseItem {
	return []models.ExpenseItem{
		{Name: "Office rent", Gross: 4_004, VATRatePercent: 0, Settle: true, PaidBy: models.PayerSplit, Share: 0.5},
		{Name: "Office power", Gross: 180, VATRatePercent: 0, Settle: true, PaidBy: models.PayerSplit, Share: 0.5},
		{Name: "Display", Gross: 1_850, VATRatePercent: 19, PaidBy: models.PayerPersonA, Share: 1},
		{Name: "Headphones", Gross: 497, VATRatePercent: 19, PaidBy: models.PayerPersonA, Share: 1},
	}
}

func TestComputeSettlement(t *testing.T) {
	cfg := referenceConfiguration()
	cfg.PersonA.Expenses = householdExpenses()

	s := ComputeSettlement(cfg)

	require.Len(t, s.Items, 2)
	assert.Equal(t, "Office rent", s.Items[0].Name)
	assert.Equal(t, 4_184.0, s.GrossSum)
	assert.Equal(t, 4_184.0, s.NetSum)
	assert.Equal(t, 0.0, s.VATSum)

	assert.InDelta(t, 104_970.51606722688, s.With.JointBase, 1e-6)
	assert.InDelta(t, 108_330.26806722689, s.Without.JointBase, 1e-6)
	assert.InDelta(t, 23_167.467463859197, s.With.TotalTax, 1e-6)
	assert.InDelta(t, 24_398.786267315198, s.Without.TotalTax, 1e-6)

	assert.InDelta(t, 1_231.3188034560008, s.TotalSaving, 1e-6)
	assert.Equal(t, s.TotalSaving/2, s.SavingA)
	assert.Equal(t, s.SavingA, s.SavingB)
	assert.InDelta(t, s.TotalSaving/4_184, s.EffectiveRate, 1e-12)

	require.NotNil(t, s.Transfer)
	assert.Equal(t, models.PayerPersonA, s.Transfer.From)
	assert.Equal(t, models.PayerPersonB, s.Transfer.To)
	assert.Equal(t, s.SavingA, s.Transfer.Amount)
}

func TestComputeSettlement_WithMatchesResult(t *testing.T) {
	cfg := referenceConfiguration()
	cfg.PersonA.Expenses = householdExpenses()

	s := ComputeSettlement(cfg)

	assert.Equal(t, ComputeResult(cfg), s.With)
}

func TestComputeSettlement_DoesNotModifyInput(t *testing.T) {
	cfg := referenceConfiguration()
	cfg.PersonA.Expenses = householdExpenses()
	snapshot := append([]models.ExpenseItem(nil), cfg.PersonA.Expenses...)

	ComputeSettlement(cfg)

	assert.Equal(t, snapshot, cfg.PersonA.Expenses)
}

func TestComputeSettlement_IgnoresPayerAndShare(t *testing.T) {
	cfg := referenceConfiguration()
	cfg.PersonA.Expenses = householdExpenses()
	base := ComputeSettlement(cfg)

	for i := range cfg.PersonA.Expenses {
		cfg.PersonA.Expenses[i].PaidBy = models.PayerPersonB
		cfg.PersonA.Expenses[i].Share = 0
	}
	changed := ComputeSettlement(cfg)

	assert.Equal(t, base.TotalSaving, changed.TotalSaving)
	assert.Equal(t, base.SavingA, changed.SavingA)
	assert.Equal(t, base.SavingB, changed.SavingB)
}

func TestComputeSettlement_NothingSelected(t *testing.T) {
	cfg := referenceConfiguration()
	expenses := householdExpenses()
	for i := range expenses {
		expenses[i].Settle = false
	}
	cfg.PersonA.Expenses = expenses

	s := ComputeSettlement(cfg)

	assert.Empty(t, s.Items)
	assert.Equal(t, 0.0, s.NetSum)
	assert.Equal(t, 0.0, s.TotalSaving)
	assert.Equal(t, 0.0, s.EffectiveRate)
	assert.Nil(t, s.Transfer)
	assert.Equal(t, s.With, s.Without)
}

func TestComputeSettlement_NoTaxableIncome(t *testing.T) {
	cfg := models.JointConfiguration{
		PersonA: models.PersonAInputs{
			GrossProfit: 2_000,
			Expenses:    []models.ExpenseItem{{Gross: 1_190, VATRatePercent: 19, Settle: true}},
		},
	}

	s := ComputeSettlement(cfg)

	assert.InDelta(t, 1_000, s.NetSum, 1e-9)
	assert.InDelta(t, 190, s.VATSum, 1e-9)
	assert.Equal(t, 0.0, s.TotalSaving)
	assert.Nil(t, s.Transfer)
}

func TestComputeSettlement_SavingNeverNegative(t *testing.T) {
	for profit := 0.0; profit <= 200_000; profit += 17_000 {
		cfg := referenceConfiguration()
		cfg.PersonA.GrossProfit = profit
		cfg.PersonA.Expenses = householdExpenses()
		cfg.ApplySurcharge = true

		s := ComputeSettlement(cfg)

		if s.TotalSaving < 0 || s.SavingA < 0 || s.SavingB < 0 {
			t.Fatalf("negative saving at profit %v: %+v", profit, s)
		}
	}
}

func TestSplittingTable(t *testing.T) {
	rows := SplittingTable(109_914)

	require.Len(t, rows, 10)
	assert.Equal(t, 69_914.0, rows[0].JointBase)
	assert.Equal(t, 11_510.0, rows[0].Tax)
	assert.InDelta(t, 0.3, rows[0].MarginalRate, 1e-12)
	assert.Equal(t, 149_914.0, rows[9].JointBase)
	assert.Equal(t, 41_140.0, rows[9].Tax)
	assert.InDelta(t, 0.42, rows[9].MarginalRate, 1e-12)

	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].JointBase, rows[i-1].JointBase)
		assert.GreaterOrEqual(t, rows[i].Tax, rows[i-1].Tax)
	}
}

func TestSplittingTable_DefaultWindow(t *testing.T) {
	for _, base := range []float64{0, -10} {
		rows := SplittingTable(base)

		require.Len(t, rows, 10)
		assert.Equal(t, 80_000.0, rows[0].JointBase)
		assert.Equal(t, 14_642.0, rows[0].Tax)
		assert.InDelta(t, 0.32, rows[0].MarginalRate, 1e-12)
		assert.Equal(t, 180_000.0, rows[9].JointBase)
		assert.Equal(t, 53_776.0, rows[9].Tax)
	}
}

func TestSplittingTable_SmallBaseStartsAtZero(t *testing.T) {
	rows := SplittingTable(10_000)

	assert.Equal(t, 0.0, rows[0].JointBase)
	assert.Equal(t, 0.0, rows[0].AverageRate)
	assert.Equal(t, 50_000.0, rows[9].JointBase)
}

func TestCurrentRates(t *testing.T) {
	row, ok := CurrentRates(109_914)

	require.True(t, ok)
	assert.Equal(t, 109_914.0, row.JointBase)
	assert.Equal(t, 24_986.0, row.Tax)
	assert.InDelta(t, 0.22732483334633258, row.AverageRate, 1e-12)
	assert.InDelta(t, 0.3723177791999842, row.MarginalRate, 1e-9)

	_, ok = CurrentRates(0)
	assert.False(t, ok)
}
