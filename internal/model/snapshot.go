package model

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// FilingStatus enumerates the federal filing statuses the engine knows.
type FilingStatus string

const (
	StatusSingle          FilingStatus = "single"
	StatusMarriedJoint    FilingStatus = "married_joint"
	StatusMarriedSeparate FilingStatus = "married_separate"
	StatusHeadOfHousehold FilingStatus = "head_of_household"
)

// Valid reports whether the status is one of the known filing statuses.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case StatusSingle, StatusMarriedJoint, StatusMarriedSeparate, StatusHeadOfHousehold:
		return true
	}
	return false
}

// Person identifies a taxpayer or spouse.
type Person struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	SSN       string `yaml:"ssn"`
}

// Dependent is one claimed dependent. BirthYear drives age-based
// eligibility (child tax credit).
type Dependent struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	SSN          string `yaml:"ssn"`
	BirthYear    int    `yaml:"birth_year"`
	Relationship string `yaml:"relationship"`
}

// WageDocument is one W-2 style wage statement.
type WageDocument struct {
	Employer           string  `yaml:"employer"`
	Wages              float64 `yaml:"wages"`
	FederalWithholding float64 `yaml:"federal_withholding"`
}

// InterestIncome is one 1099-INT style interest statement.
type InterestIncome struct {
	Payer  string  `yaml:"payer"`
	Amount float64 `yaml:"amount"`
}

// DividendIncome is one 1099-DIV style dividend statement.
type DividendIncome struct {
	Payer     string  `yaml:"payer"`
	Ordinary  float64 `yaml:"ordinary"`
	Qualified float64 `yaml:"qualified"`
}

// Business is one sole-proprietorship activity. Each business drives one
// Schedule C occurrence in the final filing.
type Business struct {
	Name          string  `yaml:"name"`
	Activity      string  `yaml:"activity"`
	GrossReceipts float64 `yaml:"gross_receipts"`
	Expenses      float64 `yaml:"expenses"`
}

// ItemizedDeductions holds the raw inputs to Schedule A. A nil pointer
// on the snapshot means the taxpayer supplied no itemized data at all.
type ItemizedDeductions struct {
	MedicalExpenses  float64 `yaml:"medical_expenses"`
	StateLocalTaxes  float64 `yaml:"state_local_taxes"`
	MortgageInterest float64 `yaml:"mortgage_interest"`
	CharitableGifts  float64 `yaml:"charitable_gifts"`
}

// ValidatedInformation is the full tax-year snapshot for one return.
type ValidatedInformation struct {
	Year         int          `yaml:"year"`
	FilingStatus FilingStatus `yaml:"filing_status"`

	Taxpayer   Person      `yaml:"taxpayer"`
	Spouse     *Person     `yaml:"spouse"`
	Dependents []Dependent `yaml:"dependents"`

	Wages      []WageDocument   `yaml:"wages"`
	Interest   []InterestIncome `yaml:"interest"`
	Dividends  []DividendIncome `yaml:"dividends"`
	Businesses []Business       `yaml:"businesses"`

	Itemized      *ItemizedDeductions `yaml:"itemized"`
	ElectItemized bool                `yaml:"elect_itemized"`

	EstimatedPayments float64 `yaml:"estimated_payments"`
}

// Clone returns a deep copy of the snapshot. The scenario engine clones
// the base snapshot before applying modifications so the original is
// never mutated.
func (vi *ValidatedInformation) Clone() (*ValidatedInformation, error) {
	raw, err := copystructure.Copy(vi)
	if err != nil {
		return nil, fmt.Errorf("failed to clone snapshot: %w", err)
	}
	clone, ok := raw.(*ValidatedInformation)
	if !ok {
		return nil, fmt.Errorf("unexpected clone type %T", raw)
	}
	return clone, nil
}
