// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.AppointmentRepository().Add(ctx, appointment); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within same transaction
//	if err := uow.AppointmentRepository().Update(ctx, appointment, loadedStatus); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.InventoryRepository().AddBatch(ctx, postings); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Database-level locking may be needed for high-contention scenarios
package postgres

import (
	"context"

	"recycling/internal/adapters/out/postgres/appointmentrepo"
	"recycling/internal/adapters/out/postgres/conversationrepo"
	"recycling/internal/adapters/out/postgres/inventoryrepo"
	"recycling/internal/adapters/out/postgres/recyclerrepo"
	"recycling/internal/adapters/out/postgres/transportrepo"
	"recycling/internal/adapters/out/postgres/warehouserepo"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// Every guard check and state mutation of a workflow transition runs inside
// one unit of work, so a transition racing another on the same entity sees a
// stale guard and fails instead of corrupting state.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// current returns the active transaction, or the base connection when no
// transaction has been started.
func (uow *GormUnitOfWork) current() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// AppointmentRepository provides access to appointment persistence within the
// unit of work. Operations execute within the current transaction if one is
// active.
func (uow *GormUnitOfWork) AppointmentRepository() ports.AppointmentRepository {
	return appointmentrepo.NewGormAppointmentRepository(uow.current(), uow)
}

// RecyclerRepository provides read access to recyclers within the unit of work.
func (uow *GormUnitOfWork) RecyclerRepository() ports.RecyclerRepository {
	return recyclerrepo.NewGormRecyclerRepository(uow.current())
}

// ConversationRepository provides access to conversation and message
// persistence within the unit of work.
func (uow *GormUnitOfWork) ConversationRepository() ports.ConversationRepository {
	return conversationrepo.NewGormConversationRepository(uow.current(), uow)
}

// TransportRepository provides access to transportation order persistence
// within the unit of work.
func (uow *GormUnitOfWork) TransportRepository() ports.TransportRepository {
	return transportrepo.NewGormTransportRepository(uow.current(), uow)
}

// WarehouseRepository provides access to warehouse receipt persistence within
// the unit of work.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.current(), uow)
}

// InventoryRepository provides access to the inventory ledger within the unit
// of work.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.current())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
