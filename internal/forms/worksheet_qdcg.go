package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// QDWorksheet is the qualified-dividend tax worksheet: a graph node that
// Form 1040's tax line consults but that is never part of the filing
// set. It taxes the qualified portion of income at preferential rates
// and the remainder at ordinary bracket rates.
type QDWorksheet struct {
	form.Base
	info *model.ValidatedInformation
	st   *params.StatusTable

	form1040 *Form1040
}

// NewQDWorksheet constructs the worksheet node. Its Form 1040 reference
// is linked in a later pass.
func NewQDWorksheet(info *model.ValidatedInformation, st *params.StatusTable) *QDWorksheet {
	return &QDWorksheet{
		Base: form.NewCopyBase("qdcg_worksheet", 0, 0),
		info: info,
		st:   st,
	}
}

func (w *QDWorksheet) link(form1040 *Form1040) {
	w.form1040 = form1040
}

func (w *QDWorksheet) requireLinked() error {
	if w.form1040 == nil {
		return &form.Defect{Form: w.ID(), Reason: "missing sibling 1040"}
	}
	return nil
}

// Applies reports whether the worksheet replaces the plain bracket
// computation: only when taxable income includes qualified dividends.
func (w *QDWorksheet) Applies() bool {
	return line.Positive(w.form1040.QualifiedDividends()) &&
		line.Positive(w.form1040.TaxableIncome())
}

// Tax is the combined tax: ordinary brackets on the non-qualified
// portion, preferential rates (0/15/20) on the qualified portion.
func (w *QDWorksheet) Tax() cty.Value {
	return w.Line("tax", func() cty.Value {
		taxable := line.Float(w.form1040.TaxableIncome())
		qualified := line.Float(w.form1040.QualifiedDividends())
		if qualified > taxable {
			qualified = taxable
		}
		ordinary := taxable - qualified

		// Qualified income stacks on top of ordinary income, filling the
		// 0% band first, then 15%, then 20%.
		zeroBand := w.st.QualifiedZeroCeiling - ordinary
		if zeroBand < 0 {
			zeroBand = 0
		}
		atZero := qualified
		if atZero > zeroBand {
			atZero = zeroBand
		}

		atTwenty := taxable - w.st.QualifiedFifteenCeiling
		if atTwenty < 0 {
			atTwenty = 0
		}
		if atTwenty > qualified-atZero {
			atTwenty = qualified - atZero
		}

		atFifteen := qualified - atZero - atTwenty

		tax := w.st.TaxOn(ordinary) + atFifteen*0.15 + atTwenty*0.20
		return line.Num(tax)
	})
}
