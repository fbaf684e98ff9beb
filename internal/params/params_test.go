package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	require.NotNil(t, p)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, 1500.0, p.ScheduleBThreshold)
	assert.Len(t, p.Statuses, 4)

	single, err := p.ForStatus("single")
	require.NoError(t, err)
	assert.Equal(t, 15000.0, single.StandardDeduction)
	assert.Len(t, single.Brackets, 7)
}

func TestForStatus(t *testing.T) {
	p := Default()
	_, err := p.ForStatus("widowed")
	assert.ErrorContains(t, err, "no parameter table")
}

func TestTaxOn(t *testing.T) {
	p := Default()
	single, err := p.ForStatus("single")
	require.NoError(t, err)

	t.Run("zero and negative taxable", func(t *testing.T) {
		assert.Equal(t, 0.0, single.TaxOn(0))
		assert.Equal(t, 0.0, single.TaxOn(-100))
	})

	t.Run("first bracket only", func(t *testing.T) {
		assert.InDelta(t, 1000.0, single.TaxOn(10000), 0.01)
	})

	t.Run("marginal across two brackets", func(t *testing.T) {
		// 10% of 11,925 plus 12% of the remainder.
		want := 11925*0.10 + (35000-11925)*0.12
		assert.InDelta(t, want, single.TaxOn(35000), 0.01)
	})

	t.Run("top bracket is unbounded", func(t *testing.T) {
		lower := single.TaxOn(1_000_000)
		higher := single.TaxOn(2_000_000)
		assert.InDelta(t, 370_000, higher-lower, 0.01)
	})
}

func TestLoad(t *testing.T) {
	t.Run("round-trips the embedded table from disk", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "params.hcl")
		require.NoError(t, os.WriteFile(path, defaultsHCL, 0o644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), p)
	})

	t.Run("rejects a table without brackets", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.hcl")
		src := []byte("year = 2025\nschedule_b_threshold = 0\nsalt_cap = 0\nchild_tax_credit = 0\nctc_age_limit = 0\nse_net_earnings_factor = 0\nse_tax_rate = 0\nse_minimum_net_earnings = 0\n\nfiling_status \"single\" {\n  standard_deduction = 1\n  qualified_zero_ceiling = 0\n  qualified_fifteen_ceiling = 0\n}\n")
		require.NoError(t, os.WriteFile(path, src, 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "declares no brackets")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})
}
