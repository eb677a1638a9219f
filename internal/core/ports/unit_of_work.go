package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Guard check and state mutation for a workflow transition execute inside
// one unit of work, so a transition racing another on the same entity sees
// a stale guard and fails instead of corrupting state.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AppointmentRepository returns an AppointmentRepository bound to the
	// current transaction.
	AppointmentRepository() AppointmentRepository

	// RecyclerRepository returns a RecyclerRepository bound to the current
	// transaction.
	RecyclerRepository() RecyclerRepository

	// ConversationRepository returns a ConversationRepository bound to the
	// current transaction.
	ConversationRepository() ConversationRepository

	// TransportRepository returns a TransportRepository bound to the current
	// transaction.
	TransportRepository() TransportRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current
	// transaction.
	WarehouseRepository() WarehouseRepository

	// InventoryRepository returns an InventoryRepository bound to the current
	// transaction.
	InventoryRepository() InventoryRepository
}
