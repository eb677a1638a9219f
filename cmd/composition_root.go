package cmd

import (
	"log/slog"

	httpin "recycling/internal/adapters/in/http"
	"recycling/internal/adapters/out/notify"
	"recycling/internal/adapters/out/postgres"
	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/application/usecases/queries"
	"recycling/internal/core/ports"
	"recycling/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into use case handlers.
// Every handler gets its own narrow unit-of-work factory backed by the
// shared gorm connection pool.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot creates the object graph root for the application.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewGormNotifier(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateAppointmentCommandHandler() commands.CreateAppointmentCommandHandler {
	var f commands.CreateAppointmentUoWFactory = FuncCreateAppointmentUoWFactory(func() commands.CreateAppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAppointmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptAppointmentCommandHandler() commands.AcceptAppointmentCommandHandler {
	var f commands.AcceptAppointmentUoWFactory = FuncAcceptAppointmentUoWFactory(func() commands.AcceptAppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAppointmentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRollbackAppointmentCommandHandler() commands.RollbackAppointmentCommandHandler {
	var f commands.RollbackAppointmentUoWFactory = FuncRollbackAppointmentUoWFactory(func() commands.RollbackAppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRollbackAppointmentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelAppointmentCommandHandler() commands.CancelAppointmentCommandHandler {
	var f commands.CancelAppointmentUoWFactory = FuncCancelAppointmentUoWFactory(func() commands.CancelAppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelAppointmentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteAppointmentCommandHandler() commands.CompleteAppointmentCommandHandler {
	var f commands.CompleteAppointmentUoWFactory = FuncCompleteAppointmentUoWFactory(func() commands.CompleteAppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAppointmentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEndConversationCommandHandler() commands.EndConversationCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEndConversationCommandHandler(f)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	var f commands.MessagingUoWFactory = FuncMessagingUoWFactory(func() commands.MessagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTransportOrderCommandHandler() commands.CreateTransportOrderCommandHandler {
	var f commands.CreateTransportUoWFactory = FuncCreateTransportUoWFactory(func() commands.CreateTransportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransportOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptTransportOrderCommandHandler() commands.AcceptTransportOrderCommandHandler {
	var f commands.TransportUoWFactory = FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptTransportOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceTransportStageCommandHandler() commands.AdvanceTransportStageCommandHandler {
	var f commands.AdvanceStageUoWFactory = FuncAdvanceStageUoWFactory(func() commands.AdvanceStageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTransportStageCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteTransportOrderCommandHandler() commands.CompleteTransportOrderCommandHandler {
	var f commands.TransportUoWFactory = FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTransportOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateWarehouseReceiptCommandHandler() commands.CreateWarehouseReceiptCommandHandler {
	var f commands.CreateReceiptUoWFactory = FuncCreateReceiptUoWFactory(func() commands.CreateReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseReceiptCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateProcessWarehouseReceiptCommandHandler() commands.ProcessWarehouseReceiptCommandHandler {
	var f commands.ProcessReceiptUoWFactory = FuncProcessReceiptUoWFactory(func() commands.ProcessReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessWarehouseReceiptCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSendReviewRemindersCommandHandler() commands.SendReviewRemindersCommandHandler {
	var f commands.ReviewReminderUoWFactory = FuncReviewReminderUoWFactory(func() commands.ReviewReminderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendReviewRemindersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateHasConversationEndedQueryHandler() queries.HasConversationEndedQueryHandler {
	return queries.NewHasConversationEndedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationHistoryQueryHandler() queries.GetConversationHistoryQueryHandler {
	return queries.NewGetConversationHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStagingInventoryQueryHandler() queries.GetStagingInventoryQueryHandler {
	return queries.NewGetStagingInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseInventoryQueryHandler() queries.GetWarehouseInventoryQueryHandler {
	return queries.NewGetWarehouseInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingTransportOrdersQueryHandler() queries.GetPendingTransportOrdersQueryHandler {
	return queries.NewGetPendingTransportOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateAppointmentCommandHandler(),
		c.CreateAcceptAppointmentCommandHandler(),
		c.CreateRollbackAppointmentCommandHandler(),
		c.CreateCancelAppointmentCommandHandler(),
		c.CreateCompleteAppointmentCommandHandler(),
		c.CreateEndConversationCommandHandler(),
		c.CreateSendMessageCommandHandler(),
		c.CreateCreateTransportOrderCommandHandler(),
		c.CreateAcceptTransportOrderCommandHandler(),
		c.CreateAdvanceTransportStageCommandHandler(),
		c.CreateCompleteTransportOrderCommandHandler(),
		c.CreateCreateWarehouseReceiptCommandHandler(),
		c.CreateProcessWarehouseReceiptCommandHandler(),
		c.CreateHasConversationEndedQueryHandler(),
		c.CreateGetConversationHistoryQueryHandler(),
		c.CreateGetStagingInventoryQueryHandler(),
		c.CreateGetWarehouseInventoryQueryHandler(),
		c.CreateGetPendingTransportOrdersQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSendReviewRemindersCommandHandler(),
		c.config.ReviewReminderDelay,
		c.logger,
	)
}

type FuncCreateAppointmentUoWFactory func() commands.CreateAppointmentUoW

func (f FuncCreateAppointmentUoWFactory) Create() commands.CreateAppointmentUoW {
	return f()
}

type FuncAcceptAppointmentUoWFactory func() commands.AcceptAppointmentUoW

func (f FuncAcceptAppointmentUoWFactory) Create() commands.AcceptAppointmentUoW {
	return f()
}

type FuncRollbackAppointmentUoWFactory func() commands.RollbackAppointmentUoW

func (f FuncRollbackAppointmentUoWFactory) Create() commands.RollbackAppointmentUoW {
	return f()
}

type FuncCancelAppointmentUoWFactory func() commands.CancelAppointmentUoW

func (f FuncCancelAppointmentUoWFactory) Create() commands.CancelAppointmentUoW {
	return f()
}

type FuncCompleteAppointmentUoWFactory func() commands.CompleteAppointmentUoW

func (f FuncCompleteAppointmentUoWFactory) Create() commands.CompleteAppointmentUoW {
	return f()
}

type FuncConversationUoWFactory func() commands.ConversationUoW

func (f FuncConversationUoWFactory) Create() commands.ConversationUoW {
	return f()
}

type FuncMessagingUoWFactory func() commands.MessagingUoW

func (f FuncMessagingUoWFactory) Create() commands.MessagingUoW {
	return f()
}

type FuncCreateTransportUoWFactory func() commands.CreateTransportUoW

func (f FuncCreateTransportUoWFactory) Create() commands.CreateTransportUoW {
	return f()
}

type FuncTransportUoWFactory func() commands.TransportUoW

func (f FuncTransportUoWFactory) Create() commands.TransportUoW {
	return f()
}

type FuncAdvanceStageUoWFactory func() commands.AdvanceStageUoW

func (f FuncAdvanceStageUoWFactory) Create() commands.AdvanceStageUoW {
	return f()
}

type FuncCreateReceiptUoWFactory func() commands.CreateReceiptUoW

func (f FuncCreateReceiptUoWFactory) Create() commands.CreateReceiptUoW {
	return f()
}

type FuncProcessReceiptUoWFactory func() commands.ProcessReceiptUoW

func (f FuncProcessReceiptUoWFactory) Create() commands.ProcessReceiptUoW {
	return f()
}

type FuncReviewReminderUoWFactory func() commands.ReviewReminderUoW

func (f FuncReviewReminderUoWFactory) Create() commands.ReviewReminderUoW {
	return f()
}
