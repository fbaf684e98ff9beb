package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taxgridgo/internal/assemble"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/testutil"
)

func filingTags(r *Return) []string {
	fs := assemble.Build(context.Background(), r.Root(), r.Attachments(), r.Trailer(), r.BalanceDue())
	return fs.Tags()
}

func TestReturn_SingleWageEarner(t *testing.T) {
	r := buildReturn(t, testutil.SingleWageEarner())
	f := r.Form1040()

	assert.Equal(t, 50000.0, line.Float(f.TotalIncome()))
	assert.Equal(t, 50000.0, line.Float(f.AGI()))
	assert.Equal(t, 15000.0, line.Float(f.Deduction()))
	assert.Equal(t, 35000.0, line.Float(f.TaxableIncome()))
	assert.InDelta(t, 3961.50, line.Float(f.TotalTax()), 0.01)
	assert.Equal(t, 4000.0, line.Float(f.TotalPayments()))
	assert.InDelta(t, 38.50, line.Float(f.Refund()), 0.01)
	assert.True(t, line.IsNA(f.BalanceDue()), "refund and balance due are mutually exclusive")

	// No schedule crosses its filing predicate.
	assert.Equal(t, []string{"1040/0"}, filingTags(r))
}

func TestReturn_SelfEmployedFamily(t *testing.T) {
	r := buildReturn(t, testutil.SelfEmployedFamily())
	f := r.Form1040()

	// Wages 90000 + interest 2100 + ordinary dividends 3000 + combined
	// business profit 37000.
	assert.Equal(t, 132100.0, line.Float(f.TotalIncome()))

	seTax := 37000 * 0.9235 * 0.153
	assert.InDelta(t, seTax, line.Float(f.SETax()), 0.01)
	assert.InDelta(t, 132100-seTax/2, line.Float(f.AGI()), 0.01)

	// Standard deduction wins over the capped itemized total.
	assert.Equal(t, 30000.0, line.Float(f.Deduction()))

	taxable := 132100 - seTax/2 - 30000
	assert.InDelta(t, taxable, line.Float(f.TaxableIncome()), 0.01)

	// Worksheet: 2500 of qualified dividends at 15%, rest at brackets;
	// one qualifying child credits 2000.
	incomeTax := mustStatus(t, "married_joint").TaxOn(taxable-2500) + 2500*0.15
	assert.InDelta(t, incomeTax-2000+seTax, line.Float(f.TotalTax()), 0.01)

	assert.Equal(t, 17000.0, line.Float(f.TotalPayments()))
	assert.InDelta(t, 17000-(incomeTax-2000+seTax), line.Float(f.Refund()), 0.01)
	assert.True(t, line.IsNA(f.BalanceDue()))

	assert.Equal(t, []string{
		"1040/0",
		"schedule_b/0",
		"schedule_c/0",
		"schedule_c/1",
		"schedule_se/0",
		"schedule_8812/0",
	}, filingTags(r))
}

func TestReturn_VoucherOnBalanceDue(t *testing.T) {
	info := testutil.SingleWageEarner()
	info.Wages[0].FederalWithholding = 3000
	r := buildReturn(t, info)
	f := r.Form1040()

	assert.InDelta(t, 961.50, line.Float(f.BalanceDue()), 0.01)
	assert.True(t, line.IsNA(f.Refund()))

	tags := filingTags(r)
	require.NotEmpty(t, tags)
	assert.Equal(t, "1040_v/0", tags[len(tags)-1], "voucher trails the sorted set")
}

func TestReturn_EmptySnapshotComputes(t *testing.T) {
	info := testutil.SingleWageEarner()
	info.Wages = nil
	r := buildReturn(t, info)
	f := r.Form1040()

	// Absence propagates: no income category present means no totals,
	// not zeros, and the pass still completes.
	assert.True(t, line.IsNA(f.TotalIncome()))
	assert.True(t, line.IsNA(f.AGI()))
	assert.Equal(t, 0.0, line.Float(f.TaxableIncome()))
	assert.Equal(t, 0.0, line.Float(f.TotalTax()))
	assert.Equal(t, []string{"1040/0"}, filingTags(r))
}

func TestReturn_ValuesContracts(t *testing.T) {
	r := buildReturn(t, testutil.SelfEmployedFamily())

	// Positional value lists are a fixed-size contract per form.
	assert.Len(t, r.form1040.Values(), 22)
	assert.Len(t, r.scheduleA.Values(), 5)
	assert.Len(t, r.scheduleB.Values(), 2)
	assert.Len(t, r.scheduleC[0].Values(), 5)
	assert.Len(t, r.scheduleSE.Values(), 4)
	assert.Len(t, r.schedule8812.Values(), 3)
	assert.Len(t, r.voucher.Values(), 4)
}
