// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: validation,
// transaction management, persistence, then best-effort notification
// fan-out after commit.
package commands

import (
	"context"

	"recycling/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command declares the narrowest repository set it needs,
// so tests mock exactly the surface the handler touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AppointmentRepoFactory provides access to the appointment repository
	// within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// RecyclerRepoFactory provides access to the recycler repository within
	// a transaction.
	RecyclerRepoFactory interface {
		RecyclerRepository() ports.RecyclerRepository
	}

	// ConversationRepoFactory provides access to the conversation repository
	// within a transaction.
	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	// TransportRepoFactory provides access to the transportation order
	// repository within a transaction.
	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// WarehouseRepoFactory provides access to the warehouse receipt
	// repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// InventoryRepoFactory provides access to the inventory ledger within
	// a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// CreateAppointmentUoW manages transactions for appointment submission.
	CreateAppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
	}

	// CreateAppointmentUoWFactory creates CreateAppointmentUoW instances.
	CreateAppointmentUoWFactory interface {
		Create() CreateAppointmentUoW
	}

	// AcceptAppointmentUoW manages transactions for appointment acceptance:
	// the appointment flip, the recycler availability check, and the opening
	// system chat message are one atomic unit.
	AcceptAppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		RecyclerRepoFactory
		ConversationRepoFactory
	}

	// AcceptAppointmentUoWFactory creates AcceptAppointmentUoW instances.
	AcceptAppointmentUoWFactory interface {
		Create() AcceptAppointmentUoW
	}

	// RollbackAppointmentUoW manages transactions for recycler rollback:
	// the status flip and the rationale chat message are one atomic unit.
	RollbackAppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		ConversationRepoFactory
	}

	// RollbackAppointmentUoWFactory creates RollbackAppointmentUoW instances.
	RollbackAppointmentUoWFactory interface {
		Create() RollbackAppointmentUoW
	}

	// CancelAppointmentUoW manages transactions for user cancellation.
	CancelAppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
	}

	// CancelAppointmentUoWFactory creates CancelAppointmentUoW instances.
	CancelAppointmentUoWFactory interface {
		Create() CancelAppointmentUoW
	}

	// CompleteAppointmentUoW manages transactions for appointment
	// completion: the both-ended gate check, the status flip and the staging
	// inventory postings are one atomic unit.
	CompleteAppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		ConversationRepoFactory
		InventoryRepoFactory
	}

	// CompleteAppointmentUoWFactory creates CompleteAppointmentUoW instances.
	CompleteAppointmentUoWFactory interface {
		Create() CompleteAppointmentUoW
	}

	// ConversationUoW manages transactions for conversation-only operations.
	ConversationUoW interface {
		TxManager
		ConversationRepoFactory
	}

	// ConversationUoWFactory creates ConversationUoW instances.
	ConversationUoWFactory interface {
		Create() ConversationUoW
	}

	// MessagingUoW manages transactions for sending chat messages, which
	// needs the appointment for authorship checks.
	MessagingUoW interface {
		TxManager
		AppointmentRepoFactory
		ConversationRepoFactory
	}

	// MessagingUoWFactory creates MessagingUoW instances.
	MessagingUoWFactory interface {
		Create() MessagingUoW
	}

	// CreateTransportUoW manages transactions for shipment creation: the
	// order row and its category manifest are one atomic unit.
	CreateTransportUoW interface {
		TxManager
		RecyclerRepoFactory
		TransportRepoFactory
	}

	// CreateTransportUoWFactory creates CreateTransportUoW instances.
	CreateTransportUoWFactory interface {
		Create() CreateTransportUoW
	}

	// TransportUoW manages transactions for transporter acceptance and
	// shipment completion.
	TransportUoW interface {
		TxManager
		TransportRepoFactory
	}

	// TransportUoWFactory creates TransportUoW instances.
	TransportUoWFactory interface {
		Create() TransportUoW
	}

	// AdvanceStageUoW manages transactions for stage transitions; loading
	// completion additionally clears the recycler's staging ledger in the
	// same transaction.
	AdvanceStageUoW interface {
		TxManager
		TransportRepoFactory
		InventoryRepoFactory
	}

	// AdvanceStageUoWFactory creates AdvanceStageUoW instances.
	AdvanceStageUoWFactory interface {
		Create() AdvanceStageUoW
	}

	// CreateReceiptUoW manages transactions for warehouse receipt creation,
	// which checks the source transportation order.
	CreateReceiptUoW interface {
		TxManager
		TransportRepoFactory
		WarehouseRepoFactory
	}

	// CreateReceiptUoWFactory creates CreateReceiptUoW instances.
	CreateReceiptUoWFactory interface {
		Create() CreateReceiptUoW
	}

	// ProcessReceiptUoW manages transactions for receipt processing: the
	// warehouse inventory postings and the status flip are one atomic unit.
	ProcessReceiptUoW interface {
		TxManager
		WarehouseRepoFactory
		InventoryRepoFactory
	}

	// ProcessReceiptUoWFactory creates ProcessReceiptUoW instances.
	ProcessReceiptUoWFactory interface {
		Create() ProcessReceiptUoW
	}

	// ReviewReminderUoW manages transactions for the review reminder sweep.
	ReviewReminderUoW interface {
		TxManager
		AppointmentRepoFactory
	}

	// ReviewReminderUoWFactory creates ReviewReminderUoW instances.
	ReviewReminderUoWFactory interface {
		Create() ReviewReminderUoW
	}
)
