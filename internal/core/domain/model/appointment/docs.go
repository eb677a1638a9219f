// Package appointment contains the Appointment aggregate: a single
// user-submitted pickup request and its lifecycle state machine.
//
// An appointment starts Pending, moves to InProgress when a recycler
// accepts it, and closes as Completed, Cancelled (user, before acceptance)
// or CancelledByRecyclerRollback (recycler, after acceptance). Completion
// is gated by the bilateral conversation handshake and posts the category
// line items to the recycler's staging inventory; both concerns are
// coordinated by the application layer.
package appointment
