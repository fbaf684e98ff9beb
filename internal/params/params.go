package params

import "fmt"

// Bracket is one marginal tax bracket. UpTo is the bracket ceiling; a
// zero ceiling marks the unbounded top bracket.
type Bracket struct {
	Rate float64 `hcl:"rate"`
	UpTo float64 `hcl:"up_to,optional"`
}

// StatusTable carries the per-filing-status numbers.
type StatusTable struct {
	Status                  string    `hcl:"status,label"`
	StandardDeduction       float64   `hcl:"standard_deduction"`
	QualifiedZeroCeiling    float64   `hcl:"qualified_zero_ceiling"`
	QualifiedFifteenCeiling float64   `hcl:"qualified_fifteen_ceiling"`
	Brackets                []Bracket `hcl:"bracket,block"`
}

// Params is the full parameter table for one tax year.
type Params struct {
	Year int `hcl:"year"`

	ScheduleBThreshold float64 `hcl:"schedule_b_threshold"`
	SALTCap            float64 `hcl:"salt_cap"`
	ChildTaxCredit     float64 `hcl:"child_tax_credit"`
	CTCAgeLimit        int     `hcl:"ctc_age_limit"`

	SENetEarningsFactor  float64 `hcl:"se_net_earnings_factor"`
	SETaxRate            float64 `hcl:"se_tax_rate"`
	SEMinimumNetEarnings float64 `hcl:"se_minimum_net_earnings"`

	Statuses []StatusTable `hcl:"filing_status,block"`
}

// ForStatus returns the table for the given filing status string, or an
// error when the table does not cover it.
func (p *Params) ForStatus(status string) (*StatusTable, error) {
	for i := range p.Statuses {
		if p.Statuses[i].Status == status {
			return &p.Statuses[i], nil
		}
	}
	return nil, fmt.Errorf("no parameter table for filing status %q (year %d)", status, p.Year)
}

// TaxOn computes ordinary income tax on the given taxable amount using
// the status's marginal brackets.
func (t *StatusTable) TaxOn(taxable float64) float64 {
	if taxable <= 0 {
		return 0
	}
	tax := 0.0
	floor := 0.0
	for _, b := range t.Brackets {
		if b.UpTo == 0 || taxable <= b.UpTo {
			tax += (taxable - floor) * b.Rate
			return tax
		}
		tax += (b.UpTo - floor) * b.Rate
		floor = b.UpTo
	}
	return tax
}

func (p *Params) validate() error {
	if p.Year == 0 {
		return fmt.Errorf("parameter table is missing a year")
	}
	if len(p.Statuses) == 0 {
		return fmt.Errorf("parameter table for year %d declares no filing statuses", p.Year)
	}
	for _, st := range p.Statuses {
		if len(st.Brackets) == 0 {
			return fmt.Errorf("filing status %q declares no brackets", st.Status)
		}
		prev := 0.0
		for i, b := range st.Brackets {
			last := i == len(st.Brackets)-1
			if !last && b.UpTo <= prev {
				return fmt.Errorf("filing status %q: bracket ceilings must be ascending", st.Status)
			}
			prev = b.UpTo
		}
	}
	return nil
}
