package assemble

import (
	"context"
	"sort"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/ctxlog"
	"github.com/vk/taxgridgo/internal/form"
	"github.com/vk/taxgridgo/internal/line"
)

// FilingSet is the final ordered list of form occurrences to render.
// It is built once per computation pass and discarded after consumption.
type FilingSet struct {
	Forms []form.Form
}

// Build assembles the filing set. The root always files first by virtue
// of its zero sequence index and position; attachments are filtered by
// IsNeeded, flattened with their copies, and stable-sorted so forms
// sharing a sequence index keep catalog order. The trailer bypasses the
// sort entirely: it is appended at the very end iff balanceDue is
// strictly positive.
func Build(ctx context.Context, root form.Form, attachments []form.Form, trailer form.Form, balanceDue cty.Value) *FilingSet {
	logger := ctxlog.FromContext(ctx)

	forms := make([]form.Form, 0, len(attachments)+2)
	forms = append(forms, root)
	for _, f := range attachments {
		if !f.IsNeeded() {
			continue
		}
		forms = append(forms, f)
		// Copies are only consulted once the primary instance passed
		// IsNeeded; a form whose primary does not file contributes no
		// occurrences at all.
		forms = append(forms, f.Copies()...)
	}
	logger.Debug("Attachment filtering complete.", "needed_count", len(forms)-1)

	sort.SliceStable(forms, func(i, j int) bool {
		return forms[i].SequenceIndex() < forms[j].SequenceIndex()
	})

	if trailer != nil && line.Positive(balanceDue) {
		forms = append(forms, trailer)
		logger.Debug("Appended payment voucher trailer.", "balance_due", line.Float(balanceDue))
	}

	return &FilingSet{Forms: forms}
}

// Tags returns the ordered instance identifiers, e.g.
// ["1040/0", "schedule_c/0", "schedule_c/1"]. Intended for logs, tests
// and display.
func (fs *FilingSet) Tags() []string {
	out := make([]string, 0, len(fs.Forms))
	for _, f := range fs.Forms {
		out = append(out, instanceTag(f))
	}
	return out
}

func instanceTag(f form.Form) string {
	return f.Tag() + "/" + strconv.Itoa(f.CopyIndex())
}
