package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
)

// SeqScheduleC is the attachment sequence number of Schedule C.
const SeqScheduleC = 9

// ScheduleC reports profit or loss from one sole-proprietorship
// activity. One occurrence exists per business on the snapshot; the
// primary instance is copy 0 and carries the remaining occurrences as
// its copies. When the snapshot has no businesses the primary instance
// still exists, unbound, and is simply not needed.
type ScheduleC struct {
	form.Base
	info *model.ValidatedInformation
	biz  *model.Business

	// rest holds copies 1..N-1 and is only populated on the primary.
	rest []*ScheduleC
}

// NewScheduleC constructs the occurrence for one business. A nil
// business makes an unbound primary instance.
func NewScheduleC(info *model.ValidatedInformation, biz *model.Business, copyIndex int) *ScheduleC {
	return &ScheduleC{
		Base: form.NewCopyBase("schedule_c", SeqScheduleC, copyIndex),
		info: info,
		biz:  biz,
	}
}

// IsNeeded implements form.Form. Absence of a business is expressed by
// not binding one, so bound occurrences are always needed.
func (c *ScheduleC) IsNeeded() bool {
	return c.biz != nil
}

// Copies implements form.Form.
func (c *ScheduleC) Copies() []form.Form {
	out := make([]form.Form, 0, len(c.rest))
	for _, cp := range c.rest {
		out = append(out, cp)
	}
	return out
}

// GrossReceipts is the business's gross income for the year.
func (c *ScheduleC) GrossReceipts() cty.Value {
	return c.Line("gross_receipts", func() cty.Value {
		if c.biz == nil {
			return line.NA()
		}
		return line.Num(c.biz.GrossReceipts)
	})
}

// TotalExpenses is the business's total deductible expenses.
func (c *ScheduleC) TotalExpenses() cty.Value {
	return c.Line("total_expenses", func() cty.Value {
		if c.biz == nil {
			return line.NA()
		}
		return line.Num(c.biz.Expenses)
	})
}

// NetProfit is receipts less expenses; it may be negative (a loss).
func (c *ScheduleC) NetProfit() cty.Value {
	return c.Line("net_profit", func() cty.Value {
		if c.biz == nil {
			return line.NA()
		}
		return line.Sub(c.GrossReceipts(), c.TotalExpenses())
	})
}

// Values implements form.Form.
func (c *ScheduleC) Values() []cty.Value {
	name, activity := "", ""
	if c.biz != nil {
		name, activity = c.biz.Name, c.biz.Activity
	}
	return []cty.Value{
		line.Str(name),
		line.Str(activity),
		c.GrossReceipts(),
		c.TotalExpenses(),
		c.NetProfit(),
	}
}
