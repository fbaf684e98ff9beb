package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// SeqScheduleB is the attachment sequence number of Schedule B.
const SeqScheduleB = 8

// ScheduleB itemizes interest and ordinary dividends. It is only
// required once either total crosses the configured threshold; the
// totals themselves always feed Form 1040 regardless.
type ScheduleB struct {
	form.Base
	info *model.ValidatedInformation
	p    *params.Params
}

// NewScheduleB constructs the Schedule B node.
func NewScheduleB(info *model.ValidatedInformation, p *params.Params) *ScheduleB {
	return &ScheduleB{
		Base: form.NewBase("schedule_b", SeqScheduleB),
		info: info,
		p:    p,
	}
}

// IsNeeded implements form.Form.
func (b *ScheduleB) IsNeeded() bool {
	return line.Float(b.TotalInterest()) > b.p.ScheduleBThreshold ||
		line.Float(b.TotalOrdinaryDividends()) > b.p.ScheduleBThreshold
}

// TotalInterest sums every interest statement; absent when there are none.
func (b *ScheduleB) TotalInterest() cty.Value {
	return b.Line("total_interest", func() cty.Value {
		vals := make([]cty.Value, 0, len(b.info.Interest))
		for _, doc := range b.info.Interest {
			vals = append(vals, line.Num(doc.Amount))
		}
		return line.Sum(vals...)
	})
}

// TotalOrdinaryDividends sums every dividend statement's ordinary total.
func (b *ScheduleB) TotalOrdinaryDividends() cty.Value {
	return b.Line("total_ordinary_dividends", func() cty.Value {
		vals := make([]cty.Value, 0, len(b.info.Dividends))
		for _, doc := range b.info.Dividends {
			vals = append(vals, line.Num(doc.Ordinary))
		}
		return line.Sum(vals...)
	})
}

// Values implements form.Form.
func (b *ScheduleB) Values() []cty.Value {
	return []cty.Value{
		b.TotalInterest(),
		b.TotalOrdinaryDividends(),
	}
}
