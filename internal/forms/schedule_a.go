package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// SeqScheduleA is the attachment sequence number of Schedule A.
const SeqScheduleA = 7

// medicalAGIFloor is the fraction of AGI below which medical expenses
// are not deductible.
const medicalAGIFloor = 0.075

// ScheduleA computes itemized deductions. It reads AGI back from Form
// 1040 for the medical-expense floor; AGI does not depend on the
// deduction, so the reference does not close a cycle.
type ScheduleA struct {
	form.Base
	info *model.ValidatedInformation
	p    *params.Params
	st   *params.StatusTable

	form1040 *Form1040
}

// NewScheduleA constructs the Schedule A node. Its Form 1040 reference
// is linked in a later pass.
func NewScheduleA(info *model.ValidatedInformation, p *params.Params, st *params.StatusTable) *ScheduleA {
	return &ScheduleA{
		Base: form.NewBase("schedule_a", SeqScheduleA),
		info: info,
		p:    p,
		st:   st,
	}
}

func (a *ScheduleA) link(form1040 *Form1040) {
	a.form1040 = form1040
}

func (a *ScheduleA) requireLinked() error {
	if a.form1040 == nil {
		return &form.Defect{Form: a.ID(), Reason: "missing sibling 1040"}
	}
	return nil
}

// IsNeeded implements form.Form. Itemizing is used when elected, or
// when the itemized total beats the standard deduction.
func (a *ScheduleA) IsNeeded() bool {
	if a.info.ElectItemized {
		return true
	}
	return line.Float(a.Total()) > a.st.StandardDeduction
}

// Medical is deductible medical expenses: the amount above the AGI floor.
func (a *ScheduleA) Medical() cty.Value {
	return a.Line("medical", func() cty.Value {
		if a.info.Itemized == nil {
			return line.NA()
		}
		floor := line.Float(a.form1040.AGI()) * medicalAGIFloor
		return line.NonNeg(line.Num(a.info.Itemized.MedicalExpenses - floor))
	})
}

// StateLocalTaxes is the SALT deduction, capped by the parameter table.
func (a *ScheduleA) StateLocalTaxes() cty.Value {
	return a.Line("state_local_taxes", func() cty.Value {
		if a.info.Itemized == nil {
			return line.NA()
		}
		return line.Min(line.Num(a.info.Itemized.StateLocalTaxes), line.Num(a.p.SALTCap))
	})
}

// MortgageInterest is deductible home mortgage interest.
func (a *ScheduleA) MortgageInterest() cty.Value {
	return a.Line("mortgage_interest", func() cty.Value {
		if a.info.Itemized == nil {
			return line.NA()
		}
		return line.Num(a.info.Itemized.MortgageInterest)
	})
}

// CharitableGifts is deductible charitable contributions.
func (a *ScheduleA) CharitableGifts() cty.Value {
	return a.Line("charitable_gifts", func() cty.Value {
		if a.info.Itemized == nil {
			return line.NA()
		}
		return line.Num(a.info.Itemized.CharitableGifts)
	})
}

// Total is the itemized deduction total; absent when the taxpayer
// supplied no itemized data at all.
func (a *ScheduleA) Total() cty.Value {
	return a.Line("total", func() cty.Value {
		return line.Sum(
			a.Medical(),
			a.StateLocalTaxes(),
			a.MortgageInterest(),
			a.CharitableGifts(),
		)
	})
}

// Values implements form.Form.
func (a *ScheduleA) Values() []cty.Value {
	return []cty.Value{
		a.Medical(),
		a.StateLocalTaxes(),
		a.MortgageInterest(),
		a.CharitableGifts(),
		a.Total(),
	}
}
