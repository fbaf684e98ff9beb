package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// Form1040 is the root of the return. Every other node in the graph is
// reachable from it, and its summary lines (total tax, refund, balance
// due) are the terminal outputs of a computation pass.
type Form1040 struct {
	form.Base
	info *model.ValidatedInformation
	st   *params.StatusTable

	scheduleA    *ScheduleA
	scheduleC    []*ScheduleC
	scheduleSE   *ScheduleSE
	schedule8812 *Schedule8812
	worksheet    *QDWorksheet
}

// NewForm1040 constructs the root node. Sibling references are linked in
// a later pass.
func NewForm1040(info *model.ValidatedInformation, st *params.StatusTable) *Form1040 {
	return &Form1040{
		Base: form.NewBase("1040", 0),
		info: info,
		st:   st,
	}
}

func (f *Form1040) link(
	a *ScheduleA,
	c []*ScheduleC,
	se *ScheduleSE,
	ctc *Schedule8812,
	w *QDWorksheet,
) {
	f.scheduleA = a
	f.scheduleC = c
	f.scheduleSE = se
	f.schedule8812 = ctc
	f.worksheet = w
}

func (f *Form1040) requireLinked() error {
	missing := ""
	switch {
	case f.scheduleA == nil:
		missing = "schedule_a"
	case f.scheduleC == nil:
		missing = "schedule_c"
	case f.scheduleSE == nil:
		missing = "schedule_se"
	case f.schedule8812 == nil:
		missing = "schedule_8812"
	case f.worksheet == nil:
		missing = "qdcg_worksheet"
	}
	if missing != "" {
		return &form.Defect{Form: f.ID(), Reason: "missing sibling " + missing}
	}
	return nil
}

// IsNeeded implements form.Form; the root form always files.
func (f *Form1040) IsNeeded() bool { return true }

// TotalWages sums every wage statement; absent when there are none.
func (f *Form1040) TotalWages() cty.Value {
	return f.Line("total_wages", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.info.Wages))
		for _, w := range f.info.Wages {
			vals = append(vals, line.Num(w.Wages))
		}
		return line.Sum(vals...)
	})
}

// TaxableInterest sums every interest statement.
func (f *Form1040) TaxableInterest() cty.Value {
	return f.Line("taxable_interest", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.info.Interest))
		for _, doc := range f.info.Interest {
			vals = append(vals, line.Num(doc.Amount))
		}
		return line.Sum(vals...)
	})
}

// OrdinaryDividends sums every dividend statement's ordinary total.
func (f *Form1040) OrdinaryDividends() cty.Value {
	return f.Line("ordinary_dividends", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.info.Dividends))
		for _, doc := range f.info.Dividends {
			vals = append(vals, line.Num(doc.Ordinary))
		}
		return line.Sum(vals...)
	})
}

// QualifiedDividends sums the qualified portion of dividends. Qualified
// amounts are a subset of ordinary dividends, not additional income.
func (f *Form1040) QualifiedDividends() cty.Value {
	return f.Line("qualified_dividends", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.info.Dividends))
		for _, doc := range f.info.Dividends {
			vals = append(vals, line.Num(doc.Qualified))
		}
		return line.Sum(vals...)
	})
}

// BusinessIncome totals net profit across every Schedule C occurrence.
func (f *Form1040) BusinessIncome() cty.Value {
	return f.Line("business_income", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.scheduleC))
		for _, c := range f.scheduleC {
			vals = append(vals, c.NetProfit())
		}
		return line.Sum(vals...)
	})
}

// TotalIncome combines every income category; absent only when every
// category is absent.
func (f *Form1040) TotalIncome() cty.Value {
	return f.Line("total_income", func() cty.Value {
		return line.Sum(
			f.TotalWages(),
			f.TaxableInterest(),
			f.OrdinaryDividends(),
			f.BusinessIncome(),
		)
	})
}

// SEDeduction is the deductible half of self-employment tax, absent
// when Schedule SE does not file.
func (f *Form1040) SEDeduction() cty.Value {
	return f.Line("se_deduction", func() cty.Value {
		if !f.scheduleSE.IsNeeded() {
			return line.NA()
		}
		return f.scheduleSE.Deduction()
	})
}

// AGI is adjusted gross income. Absent when there is no income at all.
func (f *Form1040) AGI() cty.Value {
	return f.Line("agi", func() cty.Value {
		total := f.TotalIncome()
		if line.IsNA(total) {
			return line.NA()
		}
		return line.Sub(total, f.SEDeduction())
	})
}

// Deduction is the itemized total when Schedule A files, otherwise the
// standard deduction for the filing status.
func (f *Form1040) Deduction() cty.Value {
	return f.Line("deduction", func() cty.Value {
		if f.scheduleA.IsNeeded() {
			return f.scheduleA.Total()
		}
		return line.Num(f.st.StandardDeduction)
	})
}

// TaxableIncome is AGI less the deduction, floored at zero.
func (f *Form1040) TaxableIncome() cty.Value {
	return f.Line("taxable_income", func() cty.Value {
		return line.NonNeg(line.Sub(f.AGI(), f.Deduction()))
	})
}

// TaxBeforeCredits is bracket tax on taxable income, or the worksheet
// result when qualified dividends are present.
func (f *Form1040) TaxBeforeCredits() cty.Value {
	return f.Line("tax_before_credits", func() cty.Value {
		if f.worksheet.Applies() {
			return f.worksheet.Tax()
		}
		return line.Num(f.st.TaxOn(line.Float(f.TaxableIncome())))
	})
}

// ChildTaxCredit is the allowed credit from Schedule 8812, absent when
// the schedule does not file.
func (f *Form1040) ChildTaxCredit() cty.Value {
	return f.Line("child_tax_credit", func() cty.Value {
		if !f.schedule8812.IsNeeded() {
			return line.NA()
		}
		return f.schedule8812.Credit()
	})
}

// SETax is self-employment tax, absent when Schedule SE does not file.
func (f *Form1040) SETax() cty.Value {
	return f.Line("se_tax", func() cty.Value {
		if !f.scheduleSE.IsNeeded() {
			return line.NA()
		}
		return f.scheduleSE.Tax()
	})
}

// TotalTax is income tax after credits plus other taxes.
func (f *Form1040) TotalTax() cty.Value {
	return f.Line("total_tax", func() cty.Value {
		afterCredits := line.NonNeg(line.Sub(f.TaxBeforeCredits(), f.ChildTaxCredit()))
		return line.Sum(afterCredits, f.SETax())
	})
}

// Withholding sums federal withholding across wage statements.
func (f *Form1040) Withholding() cty.Value {
	return f.Line("withholding", func() cty.Value {
		vals := make([]cty.Value, 0, len(f.info.Wages))
		for _, w := range f.info.Wages {
			vals = append(vals, line.Num(w.FederalWithholding))
		}
		return line.Sum(vals...)
	})
}

// TotalPayments is withholding plus estimated payments.
func (f *Form1040) TotalPayments() cty.Value {
	return f.Line("total_payments", func() cty.Value {
		return line.Sum(f.Withholding(), line.Num(f.info.EstimatedPayments))
	})
}

// Refund is the overpayment, absent when nothing was overpaid. Refund
// and BalanceDue are mutually exclusive; at most one is present.
func (f *Form1040) Refund() cty.Value {
	return f.Line("refund", func() cty.Value {
		diff := line.Float(f.TotalPayments()) - line.Float(f.TotalTax())
		if diff <= 0 {
			return line.NA()
		}
		return line.Num(diff)
	})
}

// BalanceDue is the amount still owed, absent when nothing is owed.
func (f *Form1040) BalanceDue() cty.Value {
	return f.Line("balance_due", func() cty.Value {
		diff := line.Float(f.TotalTax()) - line.Float(f.TotalPayments())
		if diff <= 0 {
			return line.NA()
		}
		return line.Num(diff)
	})
}

// Values implements form.Form. The order and count here are the
// positional contract with the 1040 field template.
func (f *Form1040) Values() []cty.Value {
	return []cty.Value{
		line.Str(f.info.Taxpayer.FirstName),
		line.Str(f.info.Taxpayer.LastName),
		line.Str(f.info.Taxpayer.SSN),
		line.Str(string(f.info.FilingStatus)),
		f.TotalWages(),
		f.TaxableInterest(),
		f.OrdinaryDividends(),
		f.QualifiedDividends(),
		f.BusinessIncome(),
		f.TotalIncome(),
		f.SEDeduction(),
		f.AGI(),
		f.Deduction(),
		f.TaxableIncome(),
		f.TaxBeforeCredits(),
		f.ChildTaxCredit(),
		f.SETax(),
		f.TotalTax(),
		f.Withholding(),
		f.TotalPayments(),
		f.Refund(),
		f.BalanceDue(),
	}
}
