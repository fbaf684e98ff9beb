package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
	"github.com/vk/taxgridgo/internal/testutil"
)

func buildReturn(t *testing.T, info *model.ValidatedInformation) *Return {
	t.Helper()
	r, err := Build(context.Background(), info, params.Default())
	require.NoError(t, err)
	return r
}

func TestBuild_InputValidation(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		_, err := Build(context.Background(), nil, params.Default())
		require.ErrorContains(t, err, "nil snapshot")
	})

	t.Run("nil parameter table", func(t *testing.T) {
		_, err := Build(context.Background(), testutil.SingleWageEarner(), nil)
		require.ErrorContains(t, err, "parameter table")
	})

	t.Run("unknown filing status", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.FilingStatus = "quadruple_joint"
		_, err := Build(context.Background(), info, params.Default())
		require.ErrorContains(t, err, "no parameter table for filing status")
	})
}

func TestBuild_ScheduleCInstancing(t *testing.T) {
	t.Run("no businesses leaves an unbound primary", func(t *testing.T) {
		r := buildReturn(t, testutil.SingleWageEarner())

		require.Len(t, r.scheduleC, 1)
		assert.False(t, r.scheduleC[0].IsNeeded())
		assert.Empty(t, r.scheduleC[0].Copies())
		assert.True(t, line.IsNA(r.scheduleC[0].NetProfit()))
	})

	t.Run("one occurrence per business with contiguous copy indices", func(t *testing.T) {
		info := testutil.SelfEmployedFamily()
		r := buildReturn(t, info)

		require.Len(t, r.scheduleC, len(info.Businesses))
		for i, c := range r.scheduleC {
			assert.Equal(t, i, c.CopyIndex())
			assert.True(t, c.IsNeeded())
		}

		// The primary carries the remaining occurrences as its copies.
		copies := r.scheduleC[0].Copies()
		require.Len(t, copies, 1)
		assert.Equal(t, 1, copies[0].CopyIndex())
	})

	t.Run("net profit may be a loss", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.Businesses = []model.Business{
			{Name: "Sideline", GrossReceipts: 1000, Expenses: 5000},
		}
		r := buildReturn(t, info)

		assert.Equal(t, -4000.0, line.Float(r.scheduleC[0].NetProfit()))
	})
}

func TestScheduleB_Threshold(t *testing.T) {
	testCases := []struct {
		name     string
		interest float64
		ordinary float64
		needed   bool
	}{
		{"both at threshold", 1500, 1500, false},
		{"interest above", 1500.01, 0, true},
		{"dividends above", 0, 1501, true},
		{"both below", 900, 1200, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := testutil.SingleWageEarner()
			if tc.interest > 0 {
				info.Interest = []model.InterestIncome{{Payer: "Bank", Amount: tc.interest}}
			}
			if tc.ordinary > 0 {
				info.Dividends = []model.DividendIncome{{Payer: "Broker", Ordinary: tc.ordinary}}
			}
			r := buildReturn(t, info)

			assert.Equal(t, tc.needed, r.scheduleB.IsNeeded())
		})
	}
}

func TestScheduleSE(t *testing.T) {
	withProfit := func(gross, expenses float64) *Return {
		info := testutil.SingleWageEarner()
		info.Businesses = []model.Business{{Name: "Shop", GrossReceipts: gross, Expenses: expenses}}
		return buildReturn(t, info)
	}

	t.Run("combined loss yields not applicable", func(t *testing.T) {
		r := withProfit(1000, 5000)

		assert.True(t, line.IsNA(r.scheduleSE.NetEarnings()))
		assert.True(t, line.IsNA(r.scheduleSE.Tax()))
		assert.False(t, r.scheduleSE.IsNeeded())
	})

	t.Run("net earnings below statutory minimum", func(t *testing.T) {
		// 400 * 0.9235 = 369.40, under the 400 floor.
		r := withProfit(400, 0)

		assert.InDelta(t, 369.40, line.Float(r.scheduleSE.NetEarnings()), 0.01)
		assert.False(t, r.scheduleSE.IsNeeded())
	})

	t.Run("tax and deduction", func(t *testing.T) {
		r := withProfit(10000, 0)

		assert.InDelta(t, 9235.0, line.Float(r.scheduleSE.NetEarnings()), 0.01)
		assert.InDelta(t, 1412.955, line.Float(r.scheduleSE.Tax()), 0.01)
		assert.InDelta(t, 706.4775, line.Float(r.scheduleSE.Deduction()), 0.01)
		assert.True(t, r.scheduleSE.IsNeeded())
	})
}

func TestScheduleA(t *testing.T) {
	t.Run("salt is capped", func(t *testing.T) {
		r := buildReturn(t, testutil.SelfEmployedFamily())

		assert.Equal(t, 10000.0, line.Float(r.scheduleA.StateLocalTaxes()))
	})

	t.Run("not needed when standard deduction wins", func(t *testing.T) {
		// Capped itemized total is 21000 against a 30000 standard
		// deduction for joint filers.
		r := buildReturn(t, testutil.SelfEmployedFamily())

		assert.InDelta(t, 21000.0, line.Float(r.scheduleA.Total()), 0.01)
		assert.False(t, r.scheduleA.IsNeeded())
	})

	t.Run("election forces itemizing", func(t *testing.T) {
		info := testutil.SelfEmployedFamily()
		info.ElectItemized = true
		r := buildReturn(t, info)

		assert.True(t, r.scheduleA.IsNeeded())
		assert.InDelta(t, 21000.0, line.Float(r.form1040.Deduction()), 0.01)
	})

	t.Run("needed when itemized total beats the standard deduction", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.Itemized = &model.ItemizedDeductions{
			StateLocalTaxes:  9000,
			MortgageInterest: 8000,
		}
		r := buildReturn(t, info)

		assert.True(t, r.scheduleA.IsNeeded())
		assert.Equal(t, 17000.0, line.Float(r.form1040.Deduction()))
	})

	t.Run("medical floor", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.Itemized = &model.ItemizedDeductions{MedicalExpenses: 5000}
		r := buildReturn(t, info)

		// AGI 50000, floor 3750, deductible 1250.
		assert.InDelta(t, 1250.0, line.Float(r.scheduleA.Medical()), 0.01)
	})

	t.Run("no itemized data at all", func(t *testing.T) {
		r := buildReturn(t, testutil.SingleWageEarner())

		assert.True(t, line.IsNA(r.scheduleA.Total()))
		assert.False(t, r.scheduleA.IsNeeded())
	})
}

func TestQDWorksheet(t *testing.T) {
	t.Run("does not apply without qualified dividends", func(t *testing.T) {
		r := buildReturn(t, testutil.SingleWageEarner())

		assert.False(t, r.worksheet.Applies())
	})

	t.Run("qualified income inside the zero band", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.Wages[0].Wages = 30000
		info.Dividends = []model.DividendIncome{{Payer: "Broker", Ordinary: 5000, Qualified: 5000}}
		r := buildReturn(t, info)

		require.True(t, r.worksheet.Applies())
		// Taxable 20000, ordinary portion 15000 taxed by brackets,
		// qualified 5000 entirely in the 0% band.
		assert.InDelta(t, 1561.50, line.Float(r.worksheet.Tax()), 0.01)
		assert.InDelta(t, 1561.50, line.Float(r.form1040.TaxBeforeCredits()), 0.01)
	})

	t.Run("qualified income at fifteen percent", func(t *testing.T) {
		r := buildReturn(t, testutil.SelfEmployedFamily())

		require.True(t, r.worksheet.Applies())
		// Ordinary portion exceeds the joint 0% ceiling, so the whole
		// 2500 of qualified income lands in the 15% band.
		ordinary := line.Float(r.form1040.TaxableIncome()) - 2500
		want := mustStatus(t, "married_joint").TaxOn(ordinary) + 2500*0.15
		assert.InDelta(t, want, line.Float(r.worksheet.Tax()), 0.01)
	})
}

func TestSchedule8812(t *testing.T) {
	t.Run("age limit boundary", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.Dependents = []model.Dependent{
			{FirstName: "A", SSN: "1", BirthYear: 2009},
			{FirstName: "B", SSN: "2", BirthYear: 2008},
			{FirstName: "C", SSN: "3"},
		}
		r := buildReturn(t, info)

		// Year 2025: born 2009 is 16 and qualifies; born 2008 is 17 and
		// does not; a missing birth year never qualifies.
		assert.Equal(t, 1, r.schedule8812.QualifyingChildren())
	})

	t.Run("credit capped at tax before credits", func(t *testing.T) {
		info := testutil.SingleWageEarner()
		info.FilingStatus = model.StatusMarriedJoint
		info.Wages[0].Wages = 32000
		info.Dependents = []model.Dependent{
			{FirstName: "A", SSN: "1", BirthYear: 2018},
			{FirstName: "B", SSN: "2", BirthYear: 2020},
		}
		r := buildReturn(t, info)

		// Taxable 2000, tax 200, tentative credit 4000.
		assert.Equal(t, 4000.0, line.Float(r.schedule8812.TentativeCredit()))
		assert.InDelta(t, 200.0, line.Float(r.schedule8812.Credit()), 0.01)
		assert.InDelta(t, 0.0, line.Float(r.form1040.TotalTax()), 0.01)
	})
}

func mustStatus(t *testing.T, status string) *params.StatusTable {
	t.Helper()
	st, err := params.Default().ForStatus(status)
	require.NoError(t, err)
	return st
}
