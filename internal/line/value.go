package line

import (
	"github.com/zclconf/go-cty/cty"
)

// NA returns the explicit "not applicable" sentinel for a numeric line.
func NA() cty.Value {
	return cty.NullVal(cty.Number)
}

// Num wraps a float64 as a numeric line value.
func Num(f float64) cty.Value {
	return cty.NumberFloatVal(f)
}

// Str wraps a string as a textual line value (names, identifiers).
func Str(s string) cty.Value {
	return cty.StringVal(s)
}

// Bool wraps a bool as a checkbox line value.
func Bool(b bool) cty.Value {
	return cty.BoolVal(b)
}

// IsNA reports whether a line value is the "not applicable" sentinel.
func IsNA(v cty.Value) bool {
	return v.IsNull()
}

// Float extracts the numeric content of a line value. Absent values and
// non-numeric values degrade to 0; this is the documented default for
// downstream arithmetic on optional inputs.
func Float(v cty.Value) float64 {
	if v.IsNull() || v.Type() != cty.Number {
		return 0
	}
	f, _ := v.AsBigFloat().Float64()
	return f
}

// Sum combines a set of optional line values. If every input is absent
// the aggregate itself is absent; otherwise absent inputs count as zero.
func Sum(vals ...cty.Value) cty.Value {
	total := 0.0
	present := false
	for _, v := range vals {
		if IsNA(v) {
			continue
		}
		present = true
		total += Float(v)
	}
	if !present {
		return NA()
	}
	return Num(total)
}

// Sub returns a - b, treating absent operands as zero.
func Sub(a, b cty.Value) cty.Value {
	return Num(Float(a) - Float(b))
}

// Mul returns a * b, treating absent operands as zero.
func Mul(a, b cty.Value) cty.Value {
	return Num(Float(a) * Float(b))
}

// NonNeg clamps a line value at zero. Absent stays absent.
func NonNeg(v cty.Value) cty.Value {
	if IsNA(v) {
		return v
	}
	if Float(v) < 0 {
		return Num(0)
	}
	return v
}

// Min returns the smaller of two present values; absent operands count as zero.
func Min(a, b cty.Value) cty.Value {
	af, bf := Float(a), Float(b)
	if af < bf {
		return Num(af)
	}
	return Num(bf)
}

// Max returns the larger of two present values; absent operands count as zero.
func Max(a, b cty.Value) cty.Value {
	af, bf := Float(a), Float(b)
	if af > bf {
		return Num(af)
	}
	return Num(bf)
}

// Positive reports whether a line value is present and strictly greater
// than zero. This is the predicate behind the payment-voucher trailer rule.
func Positive(v cty.Value) bool {
	return !IsNA(v) && Float(v) > 0
}
