package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/ctxlog"
	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// Return is the fully constructed form graph for one snapshot. It owns
// every node and exposes the catalog in filing-catalog order.
type Return struct {
	info *model.ValidatedInformation
	p    *params.Params

	form1040     *Form1040
	scheduleA    *ScheduleA
	scheduleB    *ScheduleB
	scheduleC    []*ScheduleC
	scheduleSE   *ScheduleSE
	schedule8812 *Schedule8812
	worksheet    *QDWorksheet
	voucher      *PaymentVoucher
}

// Build constructs the complete graph for a snapshot: create every node,
// link typed sibling references, then validate that every required
// reference resolved. No line is evaluated during construction.
func Build(ctx context.Context, info *model.ValidatedInformation, p *params.Params) (*Return, error) {
	logger := ctxlog.FromContext(ctx)

	if info == nil {
		return nil, errors.New("cannot build a return from a nil snapshot")
	}
	if p == nil {
		return nil, errors.New("cannot build a return without a parameter table")
	}
	st, err := p.ForStatus(string(info.FilingStatus))
	if err != nil {
		return nil, err
	}
	logger.Debug("Building form graph.", "year", info.Year, "filing_status", info.FilingStatus)

	r := &Return{info: info, p: p}

	// Pass 1: create nodes. Schedule C expands into one occurrence per
	// business; with no businesses an unbound primary still exists so
	// the catalog shape is data-independent.
	if len(info.Businesses) == 0 {
		r.scheduleC = []*ScheduleC{NewScheduleC(info, nil, 0)}
	} else {
		r.scheduleC = make([]*ScheduleC, 0, len(info.Businesses))
		for i := range info.Businesses {
			r.scheduleC = append(r.scheduleC, NewScheduleC(info, &info.Businesses[i], i))
		}
	}
	r.scheduleB = NewScheduleB(info, p)
	r.scheduleSE = NewScheduleSE(info, p)
	r.scheduleA = NewScheduleA(info, p, st)
	r.worksheet = NewQDWorksheet(info, st)
	r.schedule8812 = NewSchedule8812(info, p)
	r.form1040 = NewForm1040(info, st)
	r.voucher = NewPaymentVoucher(info)
	logger.Debug("Node creation complete.", "schedule_c_count", len(r.scheduleC))

	// Pass 2: link sibling references.
	r.scheduleC[0].rest = r.scheduleC[1:]
	r.scheduleSE.link(r.scheduleC)
	r.scheduleA.link(r.form1040)
	r.worksheet.link(r.form1040)
	r.schedule8812.link(r.form1040)
	r.form1040.link(r.scheduleA, r.scheduleC, r.scheduleSE, r.schedule8812, r.worksheet)
	r.voucher.link(r.form1040)
	logger.Debug("Node linking complete.")

	// Pass 3: validate. A dangling reference here is a programming
	// defect, surfaced now instead of mid-evaluation.
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("error validating form graph: %w", err)
	}
	logger.Debug("Form graph construction successful.")

	return r, nil
}

func (r *Return) validate() error {
	checks := []func() error{
		r.form1040.requireLinked,
		r.scheduleA.requireLinked,
		r.scheduleSE.requireLinked,
		r.schedule8812.requireLinked,
		r.worksheet.requireLinked,
		r.voucher.requireLinked,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the root form.
func (r *Return) Root() form.Form { return r.form1040 }

// Attachments returns the primary instance of every attachment in
// catalog order. This order is what the stable sort preserves for forms
// sharing a sequence index.
func (r *Return) Attachments() []form.Form {
	return []form.Form{
		r.scheduleA,
		r.scheduleB,
		r.scheduleC[0],
		r.scheduleSE,
		r.schedule8812,
	}
}

// Trailer returns the payment-voucher form appended after sequencing.
func (r *Return) Trailer() form.Form { return r.voucher }

// Form1040 exposes the root node's typed accessors for summary readers.
func (r *Return) Form1040() *Form1040 { return r.form1040 }

// BalanceDue is the computed balance-due line driving the trailer rule.
func (r *Return) BalanceDue() cty.Value { return r.form1040.BalanceDue() }
