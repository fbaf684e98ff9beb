package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
)

// PaymentVoucher is the Form 1040-V trailer. It is appended to the
// filing set after sequencing whenever a balance is due; its own
// sequence index never participates in the sort.
type PaymentVoucher struct {
	form.Base
	info *model.ValidatedInformation

	form1040 *Form1040
}

// NewPaymentVoucher constructs the voucher node. Its Form 1040
// reference is linked in a later pass.
func NewPaymentVoucher(info *model.ValidatedInformation) *PaymentVoucher {
	return &PaymentVoucher{
		Base: form.NewBase("1040_v", 0),
		info: info,
	}
}

func (v *PaymentVoucher) link(form1040 *Form1040) {
	v.form1040 = form1040
}

func (v *PaymentVoucher) requireLinked() error {
	if v.form1040 == nil {
		return &form.Defect{Form: v.ID(), Reason: "missing sibling 1040"}
	}
	return nil
}

// IsNeeded implements form.Form: the voucher files only with a strictly
// positive balance due.
func (v *PaymentVoucher) IsNeeded() bool {
	return line.Positive(v.form1040.BalanceDue())
}

// AmountDue mirrors the return's balance due.
func (v *PaymentVoucher) AmountDue() cty.Value {
	return v.Line("amount_due", func() cty.Value {
		return v.form1040.BalanceDue()
	})
}

// Values implements form.Form.
func (v *PaymentVoucher) Values() []cty.Value {
	return []cty.Value{
		line.Str(v.info.Taxpayer.FirstName),
		line.Str(v.info.Taxpayer.LastName),
		line.Str(v.info.Taxpayer.SSN),
		v.AmountDue(),
	}
}
