package form

import "fmt"

// Defect describes a programming error in the form graph itself: an
// accessor cycle or a reference to a sibling that was never constructed.
// Defects are never recovered into a default value; they abort the
// computation pass and surface to the caller.
type Defect struct {
	Form   string
	Line   string
	Reason string
}

// Error implements the error interface.
func (d *Defect) Error() string {
	if d.Line != "" {
		return fmt.Sprintf("form graph defect: %s on line %q of %s", d.Reason, d.Line, d.Form)
	}
	return fmt.Sprintf("form graph defect: %s on %s", d.Reason, d.Form)
}

// AsDefect reports whether a recovered panic value is a form graph
// defect, returning it when so.
func AsDefect(r any) (*Defect, bool) {
	d, ok := r.(*Defect)
	return d, ok
}
