// Package pricing converts amounts between currencies through a directed exchange-rate
// table, applies per-line VAT and aggregates line totals into document totals.
//
// Every function here is pure: inputs are already-loaded snapshots and no I/O happens.
// A missing exchange rate never fails a computation. The amount is kept unconverted and
// a Warning is returned so the caller can tell the user.
package pricing
