package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/ctxlog"
	"github.com/vk/taxgridgo/internal/engine"
	"github.com/vk/taxgridgo/internal/line"
)

// Run executes one computation pass and renders the outcome.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	result, err := engine.Compute(ctx, a.info, a.p)
	if err != nil {
		return fmt.Errorf("computation failed: %w", err)
	}
	a.logger.Info("Return computed.",
		"form_count", len(result.Filing.Forms),
		"total_tax", result.TotalTax,
	)

	a.renderSummary(result)
	a.renderFilingSet(result)

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) renderSummary(result *engine.Result) {
	fmt.Fprintf(a.outW, "\nReturn summary for %s %s (%d, %s):\n",
		a.info.Taxpayer.FirstName, a.info.Taxpayer.LastName, a.info.Year, a.info.FilingStatus)

	table := tablewriter.NewWriter(a.outW)
	table.SetHeader([]string{"Line", "Amount"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Total income", money(result.TotalIncome)})
	table.Append([]string{"Adjusted gross income", money(result.AGI)})
	table.Append([]string{"Taxable income", money(result.TaxableIncome)})
	table.Append([]string{"Total tax", money(result.TotalTax)})
	table.Append([]string{"Total payments", money(result.TotalPayments)})
	if result.BalanceDue > 0 {
		table.Append([]string{"Balance due", money(result.BalanceDue)})
	} else {
		table.Append([]string{"Refund", money(result.Refund)})
	}
	table.Render()
}

func (a *App) renderFilingSet(result *engine.Result) {
	fmt.Fprintln(a.outW, "\nFiling set:")

	table := tablewriter.NewWriter(a.outW)
	table.SetHeader([]string{"#", "Form", "Copy", "Values"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, f := range result.Filing.Forms {
		rendered := make([]string, 0, len(f.Values()))
		for _, v := range f.Values() {
			rendered = append(rendered, renderValue(v))
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			f.Tag(),
			strconv.Itoa(f.CopyIndex()),
			strings.Join(rendered, ", "),
		})
	}
	table.Render()
}

// money renders a line amount for display.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// renderValue shows one raw line value; absent lines render as a dash.
func renderValue(v cty.Value) string {
	if line.IsNA(v) {
		return "-"
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		return strconv.FormatBool(v.True())
	default:
		return money(line.Float(v))
	}
}
