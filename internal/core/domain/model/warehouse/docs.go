// Package warehouse contains the warehouse receipt aggregate: the intake
// record that, once processed, commits a completed shipment's contents
// into durable base-scoped inventory. A transportation order can have at
// most one receipt, and inventory is posted exactly once, at the
// Pending -> Processed transition.
package warehouse
