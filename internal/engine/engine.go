// Package engine runs one full computation pass: construct the form
// graph for a snapshot, assemble the filing set, and extract the
// summary numbers.
package engine

import (
	"context"
	"fmt"

	"github.com/vk/taxgridgo/internal/assemble"
	"github.com/vk/taxgridgo/internal/ctxlog"
	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/forms"
	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// Result is the terminal output of one computation pass. Refund and
// BalanceDue are mutually exclusive; the absent one is zero here.
type Result struct {
	TotalIncome   float64
	AGI           float64
	TaxableIncome float64
	TotalTax      float64
	TotalPayments float64
	Refund        float64
	BalanceDue    float64

	Filing *assemble.FilingSet
}

// Compute runs the whole pipeline against one immutable snapshot. Data
// absence never fails a pass; the only errors are construction defects
// (including accessor cycles surfaced during evaluation) and an unknown
// filing status.
func Compute(ctx context.Context, info *model.ValidatedInformation, p *params.Params) (result *Result, err error) {
	logger := ctxlog.FromContext(ctx)

	// Accessor cycles are raised as *form.Defect panics deep inside
	// lazy evaluation; convert them to an error at this boundary and
	// let anything else propagate.
	defer func() {
		if r := recover(); r != nil {
			if d, ok := form.AsDefect(r); ok {
				result = nil
				err = d
				return
			}
			panic(r)
		}
	}()

	ret, err := forms.Build(ctx, info, p)
	if err != nil {
		return nil, fmt.Errorf("failed to build form graph: %w", err)
	}

	filing := assemble.Build(ctx, ret.Root(), ret.Attachments(), ret.Trailer(), ret.BalanceDue())

	f1040 := ret.Form1040()
	result = &Result{
		TotalIncome:   line.Float(f1040.TotalIncome()),
		AGI:           line.Float(f1040.AGI()),
		TaxableIncome: line.Float(f1040.TaxableIncome()),
		TotalTax:      line.Float(f1040.TotalTax()),
		TotalPayments: line.Float(f1040.TotalPayments()),
		Refund:        line.Float(f1040.Refund()),
		BalanceDue:    line.Float(f1040.BalanceDue()),
		Filing:        filing,
	}
	logger.Debug("Computation pass finished.",
		"form_count", len(filing.Forms),
		"total_tax", result.TotalTax,
	)
	return result, nil
}
