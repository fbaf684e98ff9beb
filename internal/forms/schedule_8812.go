package forms

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// SeqSchedule8812 is the attachment sequence number of Schedule 8812.
const SeqSchedule8812 = 47

// Schedule8812 computes the child tax credit. The credit is
// nonrefundable here: it is capped at tax before credits.
type Schedule8812 struct {
	form.Base
	info *model.ValidatedInformation
	p    *params.Params

	form1040 *Form1040
}

// NewSchedule8812 constructs the Schedule 8812 node. Its Form 1040
// reference is linked in a later pass.
func NewSchedule8812(info *model.ValidatedInformation, p *params.Params) *Schedule8812 {
	return &Schedule8812{
		Base: form.NewBase("schedule_8812", SeqSchedule8812),
		info: info,
		p:    p,
	}
}

func (s *Schedule8812) link(form1040 *Form1040) {
	s.form1040 = form1040
}

func (s *Schedule8812) requireLinked() error {
	if s.form1040 == nil {
		return &form.Defect{Form: s.ID(), Reason: "missing sibling 1040"}
	}
	return nil
}

// QualifyingChildren counts dependents under the credit's age limit at
// the end of the tax year.
func (s *Schedule8812) QualifyingChildren() int {
	n := 0
	for _, d := range s.info.Dependents {
		if d.BirthYear == 0 {
			continue
		}
		if s.info.Year-d.BirthYear < s.p.CTCAgeLimit {
			n++
		}
	}
	return n
}

// IsNeeded implements form.Form.
func (s *Schedule8812) IsNeeded() bool {
	return s.QualifyingChildren() > 0
}

// TentativeCredit is the per-child amount before the tax cap.
func (s *Schedule8812) TentativeCredit() cty.Value {
	return s.Line("tentative_credit", func() cty.Value {
		n := s.QualifyingChildren()
		if n == 0 {
			return line.NA()
		}
		return line.Num(float64(n) * s.p.ChildTaxCredit)
	})
}

// Credit is the allowed credit, capped at tax before credits.
func (s *Schedule8812) Credit() cty.Value {
	return s.Line("credit", func() cty.Value {
		tentative := s.TentativeCredit()
		if line.IsNA(tentative) {
			return line.NA()
		}
		return line.Min(tentative, s.form1040.TaxBeforeCredits())
	})
}

// Values implements form.Form.
func (s *Schedule8812) Values() []cty.Value {
	return []cty.Value{
		line.Num(float64(s.QualifyingChildren())),
		s.TentativeCredit(),
		s.Credit(),
	}
}
