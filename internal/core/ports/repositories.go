// Package ports defines the contracts between the workflow core and its
// infrastructure: repositories per aggregate, the unit of work, and the
// notification sink. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/recycler"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/domain/model/warehouse"
)

// AppointmentRepository is the persistence contract for appointment aggregates.
type AppointmentRepository interface {
	// Add persists a new appointment.
	Add(ctx context.Context, aggregate *appointment.Appointment) error

	// Update persists changes to an existing appointment as a
	// compare-and-set: the write only lands if the stored status still
	// equals fromStatus, the status the caller loaded the aggregate with.
	// A concurrent transition in between fails with a wrong-state error.
	Update(ctx context.Context, aggregate *appointment.Appointment, fromStatus appointment.Status) error

	// Get retrieves an appointment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)

	// GetAllDueReviewReminder retrieves appointments completed before the
	// given cutoff whose review reminder has not been sent yet.
	GetAllDueReviewReminder(ctx context.Context, completedBefore time.Time) ([]*appointment.Appointment, error)
}

// RecyclerRepository is the read contract for the recycler aggregate.
// Recycler administration is outside the workflow core; the workflow only
// needs to resolve a recycler and its availability flag.
type RecyclerRepository interface {
	// Get retrieves a recycler by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recycler.Recycler, error)
}

// ConversationRepository is the persistence contract for chat sessions and
// their messages.
type ConversationRepository interface {
	// Add persists a new conversation.
	Add(ctx context.Context, aggregate *conversation.Conversation) error

	// UpdateEndMarker persists the given role's end marker from the
	// aggregate. Only that side's column is written, so simultaneous ends
	// by the user and the recycler commute instead of overwriting each
	// other's marker with a stale nil.
	UpdateEndMarker(ctx context.Context, aggregate *conversation.Conversation, role conversation.Role) error

	// GetActiveByOrder retrieves the newest conversation for an appointment.
	// Returns errs.ErrObjectNotFound when the appointment has never had a chat.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*conversation.Conversation, error)

	// AddMessage appends a chat message. Messages are immutable once added.
	AddMessage(ctx context.Context, message *conversation.Message) error
}

// TransportRepository is the persistence contract for transportation orders.
// Add persists the order together with its category manifest in one unit.
type TransportRepository interface {
	// Add persists a new transportation order and its manifest atomically.
	Add(ctx context.Context, aggregate *transport.Order) error

	// Update persists changes to an existing transportation order as a
	// compare-and-set on the status and stage the caller loaded the
	// aggregate with. A concurrent transition in between fails with a
	// wrong-state error.
	Update(ctx context.Context, aggregate *transport.Order, fromStatus transport.Status, fromStage *transport.Stage) error

	// Get retrieves a transportation order by its unique identifier,
	// manifest included.
	Get(ctx context.Context, id kernel.UUID) (*transport.Order, error)
}

// WarehouseRepository is the persistence contract for warehouse receipts.
type WarehouseRepository interface {
	// Add persists a new receipt. The backing store enforces at most one
	// receipt per source transportation order; Add surfaces that conflict.
	Add(ctx context.Context, aggregate *warehouse.Receipt) error

	// Update persists changes to an existing receipt as a compare-and-set:
	// the write only lands if the stored status still equals fromStatus.
	// Two racing Process calls therefore cannot both flip the receipt, and
	// only the winner's inventory posting batch commits.
	Update(ctx context.Context, aggregate *warehouse.Receipt, fromStatus warehouse.Status) error

	// Get retrieves a receipt by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Receipt, error)

	// GetByTransportOrder retrieves the receipt created for a transportation
	// order. Returns errs.ErrObjectNotFound when none exists.
	GetByTransportOrder(ctx context.Context, transportOrderID kernel.UUID) (*warehouse.Receipt, error)
}

// InventoryRepository is the persistence contract for the append-only
// inventory ledger.
type InventoryRepository interface {
	// AddBatch appends postings to the ledger. All rows land in the current
	// transaction, so a batch is all-or-nothing.
	AddBatch(ctx context.Context, postings []*inventory.Posting) error

	// ClearStaging logically clears all uncleared staging postings of a
	// recycler by stamping them with the given time. Rows are filtered out
	// of staging totals from then on, never deleted.
	ClearStaging(ctx context.Context, recyclerID kernel.UUID, clearedAt time.Time) error
}
