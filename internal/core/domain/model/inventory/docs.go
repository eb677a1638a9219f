// Package inventory contains the append-only inventory ledger. Weight and
// value move through the system as postings scoped to a recycler's staging
// books or to the warehouse-global books; totals are always computed by
// summation over uncleared rows, never by mutating an aggregate counter.
package inventory
