package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	t.Run("all absent inputs yield absent", func(t *testing.T) {
		out := Sum(NA(), NA(), NA())
		assert.True(t, IsNA(out))
	})

	t.Run("mix of present zero and absent yields zero", func(t *testing.T) {
		out := Sum(NA(), Num(0), NA())
		require.False(t, IsNA(out))
		assert.Equal(t, 0.0, Float(out))
	})

	t.Run("absent inputs count as zero when any value is present", func(t *testing.T) {
		out := Sum(Num(100), NA(), Num(25.5))
		assert.InDelta(t, 125.5, Float(out), 1e-9)
	})

	t.Run("empty input yields absent", func(t *testing.T) {
		assert.True(t, IsNA(Sum()))
	})
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 0.0, Float(NA()))
	assert.Equal(t, 42.0, Float(Num(42)))
	// Non-numeric values degrade to zero rather than failing.
	assert.Equal(t, 0.0, Float(Str("n/a")))
}

func TestNonNeg(t *testing.T) {
	assert.Equal(t, 0.0, Float(NonNeg(Num(-5))))
	assert.Equal(t, 7.0, Float(NonNeg(Num(7))))
	assert.True(t, IsNA(NonNeg(NA())))
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 5.0, Float(Sub(Num(12), Num(7))))
	assert.Equal(t, 12.0, Float(Sub(Num(12), NA())))
	assert.Equal(t, 21.0, Float(Mul(Num(3), Num(7))))
	assert.Equal(t, 3.0, Float(Min(Num(3), Num(7))))
	assert.Equal(t, 7.0, Float(Max(Num(3), Num(7))))
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive(Num(0.01)))
	assert.False(t, Positive(Num(0)))
	assert.False(t, Positive(Num(-1)))
	assert.False(t, Positive(NA()))
}
