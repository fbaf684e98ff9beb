// Package line defines the value model for computed form lines.
//
// Every line on a form evaluates to a cty.Value. Numeric lines carry
// cty.Number; a null number is the explicit "not applicable" sentinel,
// distinct from a present zero. The helpers in this package encode the
// combination rules the whole graph relies on:
//
//   - Sum over a set of lines yields "not applicable" only when every
//     input is absent; a single present value (including zero) makes the
//     aggregate present.
//   - Point arithmetic (Sub, Mul, NonNeg, ...) degrades absent operands
//     to zero, because a partially edited return must still produce
//     partial results instead of failing.
//
// Keeping these rules in one place is what lets individual form
// implementations stay flat lists of formulas.
package line
