// Package assemble produces the final filing set from a constructed
// form graph: filter attachments by need, flatten each needed
// attachment with its copies, stable-sort by sequence index, and append
// the payment-voucher trailer when a balance is due.
//
// The package is deliberately generic over form.Form so the ordering
// rules can be tested with fakes, independent of the catalog.
package assemble
