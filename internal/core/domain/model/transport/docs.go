// Package transport contains the transportation order aggregate: one
// recycler's staged inventory consolidated into a single shipment and
// moved to a processing base through a multi-stage physical handoff.
//
// Status governs the coarse lifecycle (Pending, Accepted, InTransit,
// Completed); Stage tracks the handoff sequence while in transit, with
// exact current-stage guards so racing transitions fail instead of
// corrupting state. Loading completion clears the originating recycler's
// staging inventory, a side effect coordinated by the application layer.
package transport
