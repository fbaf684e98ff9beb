package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilingStatusValid(t *testing.T) {
	assert.True(t, StatusSingle.Valid())
	assert.True(t, StatusHeadOfHousehold.Valid())
	assert.False(t, FilingStatus("widowed").Valid())
	assert.False(t, FilingStatus("").Valid())
}

func TestClone(t *testing.T) {
	base := &ValidatedInformation{
		Year:         2025,
		FilingStatus: StatusSingle,
		Taxpayer:     Person{FirstName: "Ada", LastName: "Example", SSN: "123-00-4567"},
		Wages: []WageDocument{
			{Employer: "Acme", Wages: 50000, FederalWithholding: 4000},
		},
		Itemized: &ItemizedDeductions{StateLocalTaxes: 1200},
	}

	clone, err := base.Clone()
	require.NoError(t, err)
	require.NotSame(t, base, clone)
	assert.Equal(t, base, clone)

	// Mutating the clone must not reach the base through shared pointers
	// or slice backing arrays.
	clone.Wages[0].Wages = 99999
	clone.Itemized.StateLocalTaxes = 0
	assert.Equal(t, 50000.0, base.Wages[0].Wages)
	assert.Equal(t, 1200.0, base.Itemized.StateLocalTaxes)
}
