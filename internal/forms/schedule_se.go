package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// SeqScheduleSE is the attachment sequence number of Schedule SE.
const SeqScheduleSE = 17

// ScheduleSE computes self-employment tax over the combined net profit
// of every Schedule C occurrence.
type ScheduleSE struct {
	form.Base
	info *model.ValidatedInformation
	p    *params.Params

	scheduleC []*ScheduleC
}

// NewScheduleSE constructs the Schedule SE node. Its Schedule C
// references are linked in a later pass.
func NewScheduleSE(info *model.ValidatedInformation, p *params.Params) *ScheduleSE {
	return &ScheduleSE{
		Base: form.NewBase("schedule_se", SeqScheduleSE),
		info: info,
		p:    p,
	}
}

func (se *ScheduleSE) link(scheduleC []*ScheduleC) {
	se.scheduleC = scheduleC
}

func (se *ScheduleSE) requireLinked() error {
	if se.scheduleC == nil {
		return &form.Defect{Form: se.ID(), Reason: "missing sibling schedule_c"}
	}
	return nil
}

// IsNeeded implements form.Form. The schedule files only when net
// earnings reach the statutory minimum.
func (se *ScheduleSE) IsNeeded() bool {
	return line.Float(se.NetEarnings()) >= se.p.SEMinimumNetEarnings
}

// CombinedNetProfit totals net profit across all business occurrences.
func (se *ScheduleSE) CombinedNetProfit() cty.Value {
	return se.Line("combined_net_profit", func() cty.Value {
		vals := make([]cty.Value, 0, len(se.scheduleC))
		for _, c := range se.scheduleC {
			vals = append(vals, c.NetProfit())
		}
		return line.Sum(vals...)
	})
}

// NetEarnings applies the statutory net-earnings factor. A combined loss
// or no business activity at all yields "not applicable".
func (se *ScheduleSE) NetEarnings() cty.Value {
	return se.Line("net_earnings", func() cty.Value {
		profit := se.CombinedNetProfit()
		if line.IsNA(profit) || line.Float(profit) <= 0 {
			return line.NA()
		}
		return line.Mul(profit, line.Num(se.p.SENetEarningsFactor))
	})
}

// Tax is the self-employment tax on net earnings.
func (se *ScheduleSE) Tax() cty.Value {
	return se.Line("tax", func() cty.Value {
		earnings := se.NetEarnings()
		if line.IsNA(earnings) {
			return line.NA()
		}
		return line.Mul(earnings, line.Num(se.p.SETaxRate))
	})
}

// Deduction is the deductible half of self-employment tax.
func (se *ScheduleSE) Deduction() cty.Value {
	return se.Line("deduction", func() cty.Value {
		tax := se.Tax()
		if line.IsNA(tax) {
			return line.NA()
		}
		return line.Mul(tax, line.Num(0.5))
	})
}

// Values implements form.Form.
func (se *ScheduleSE) Values() []cty.Value {
	return []cty.Value{
		se.CombinedNetProfit(),
		se.NetEarnings(),
		se.Tax(),
		se.Deduction(),
	}
}
