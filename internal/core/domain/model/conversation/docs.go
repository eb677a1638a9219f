// Package conversation contains the chat session attached to an in-progress
// appointment and its bilateral termination protocol.
//
// Two independent nullable end markers, one per side, replace a single
// "ended/by whom" field: either party may end first and re-end, which keeps
// the handshake commutative and idempotent. The later marker is the
// effective end time and the history-visibility cutoff. Appointment
// completion is gated on both sides having ended.
package conversation
