// Package testutil provides shared helpers for package tests: a
// thread-safe log capture buffer and canonical snapshot fixtures.
package testutil

import (
	"bytes"
	"sync"

	"github.com/vk/taxgridgo/internal/model"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SingleWageEarner is the canonical minimal snapshot: one W-2, filing
// single, no spouse, no dependents, nothing itemized.
func SingleWageEarner() *model.ValidatedInformation {
	return &model.ValidatedInformation{
		Year:         2025,
		FilingStatus: model.StatusSingle,
		Taxpayer: model.Person{
			FirstName: "Ada",
			LastName:  "Example",
			SSN:       "123-00-4567",
		},
		Wages: []model.WageDocument{
			{Employer: "Acme Corp", Wages: 50000, FederalWithholding: 4000},
		},
	}
}

// SelfEmployedFamily is a richer snapshot: joint filers with two
// businesses, dividends, dependents and itemized inputs. It exercises
// copies, Schedule SE, the child tax credit and the dividend worksheet.
func SelfEmployedFamily() *model.ValidatedInformation {
	return &model.ValidatedInformation{
		Year:         2025,
		FilingStatus: model.StatusMarriedJoint,
		Taxpayer: model.Person{
			FirstName: "Grace",
			LastName:  "Sample",
			SSN:       "321-00-7654",
		},
		Spouse: &model.Person{
			FirstName: "Max",
			LastName:  "Sample",
			SSN:       "321-00-7655",
		},
		Dependents: []model.Dependent{
			{FirstName: "Ivy", LastName: "Sample", SSN: "500-00-0001", BirthYear: 2015, Relationship: "daughter"},
			{FirstName: "Tom", LastName: "Sample", SSN: "500-00-0002", BirthYear: 2003, Relationship: "son"},
		},
		Wages: []model.WageDocument{
			{Employer: "Hooli", Wages: 90000, FederalWithholding: 11000},
		},
		Interest: []model.InterestIncome{
			{Payer: "First Bank", Amount: 2100},
		},
		Dividends: []model.DividendIncome{
			{Payer: "Vanguard", Ordinary: 3000, Qualified: 2500},
		},
		Businesses: []model.Business{
			{Name: "Sample Design", Activity: "design services", GrossReceipts: 40000, Expenses: 12000},
			{Name: "Sample Photo", Activity: "photography", GrossReceipts: 15000, Expenses: 6000},
		},
		Itemized: &model.ItemizedDeductions{
			StateLocalTaxes:  14000,
			MortgageInterest: 9000,
			CharitableGifts:  2000,
		},
		EstimatedPayments: 6000,
	}
}
