// Package params holds the year tax-parameter tables: standard
// deductions, marginal brackets, preferential-rate ceilings, credit
// amounts and self-employment constants.
//
// The tables are data, not code. They live in an HCL document so a new
// tax year is a file edit, not a rebuild; a default table for the
// current year is embedded in the binary.
package params
