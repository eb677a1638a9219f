// Package http exposes the pickup workflow over a JSON REST API.
// Handlers translate requests into commands and queries, and map
// application errors onto HTTP status codes: unknown objects become 404,
// ownership violations 403 and state machine violations 409, with the
// current state echoed in the message so clients can resynchronize.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/application/usecases/queries"
	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAppointmentHandler   commands.CreateAppointmentCommandHandler
	acceptAppointmentHandler   commands.AcceptAppointmentCommandHandler
	rollbackAppointmentHandler commands.RollbackAppointmentCommandHandler
	cancelAppointmentHandler   commands.CancelAppointmentCommandHandler
	completeAppointmentHandler commands.CompleteAppointmentCommandHandler
	endConversationHandler     commands.EndConversationCommandHandler
	sendMessageHandler         commands.SendMessageCommandHandler
	createTransportHandler     commands.CreateTransportOrderCommandHandler
	acceptTransportHandler     commands.AcceptTransportOrderCommandHandler
	advanceStageHandler        commands.AdvanceTransportStageCommandHandler
	completeTransportHandler   commands.CompleteTransportOrderCommandHandler
	createReceiptHandler       commands.CreateWarehouseReceiptCommandHandler
	processReceiptHandler      commands.ProcessWarehouseReceiptCommandHandler

	// Query handlers
	hasConversationEndedHandler queries.HasConversationEndedQueryHandler
	conversationHistoryHandler  queries.GetConversationHistoryQueryHandler
	stagingInventoryHandler     queries.GetStagingInventoryQueryHandler
	warehouseInventoryHandler   queries.GetWarehouseInventoryQueryHandler
	pendingTransportHandler     queries.GetPendingTransportOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createAppointmentHandler commands.CreateAppointmentCommandHandler,
	acceptAppointmentHandler commands.AcceptAppointmentCommandHandler,
	rollbackAppointmentHandler commands.RollbackAppointmentCommandHandler,
	cancelAppointmentHandler commands.CancelAppointmentCommandHandler,
	completeAppointmentHandler commands.CompleteAppointmentCommandHandler,
	endConversationHandler commands.EndConversationCommandHandler,
	sendMessageHandler commands.SendMessageCommandHandler,
	createTransportHandler commands.CreateTransportOrderCommandHandler,
	acceptTransportHandler commands.AcceptTransportOrderCommandHandler,
	advanceStageHandler commands.AdvanceTransportStageCommandHandler,
	completeTransportHandler commands.CompleteTransportOrderCommandHandler,
	createReceiptHandler commands.CreateWarehouseReceiptCommandHandler,
	processReceiptHandler commands.ProcessWarehouseReceiptCommandHandler,
	hasConversationEndedHandler queries.HasConversationEndedQueryHandler,
	conversationHistoryHandler queries.GetConversationHistoryQueryHandler,
	stagingInventoryHandler queries.GetStagingInventoryQueryHandler,
	warehouseInventoryHandler queries.GetWarehouseInventoryQueryHandler,
	pendingTransportHandler queries.GetPendingTransportOrdersQueryHandler,
) *Server {
	return &Server{
		createAppointmentHandler:    createAppointmentHandler,
		acceptAppointmentHandler:    acceptAppointmentHandler,
		rollbackAppointmentHandler:  rollbackAppointmentHandler,
		cancelAppointmentHandler:    cancelAppointmentHandler,
		completeAppointmentHandler:  completeAppointmentHandler,
		endConversationHandler:      endConversationHandler,
		sendMessageHandler:          sendMessageHandler,
		createTransportHandler:      createTransportHandler,
		acceptTransportHandler:      acceptTransportHandler,
		advanceStageHandler:         advanceStageHandler,
		completeTransportHandler:    completeTransportHandler,
		createReceiptHandler:        createReceiptHandler,
		processReceiptHandler:       processReceiptHandler,
		hasConversationEndedHandler: hasConversationEndedHandler,
		conversationHistoryHandler:  conversationHistoryHandler,
		stagingInventoryHandler:     stagingInventoryHandler,
		warehouseInventoryHandler:   warehouseInventoryHandler,
		pendingTransportHandler:     pendingTransportHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/appointments", s.CreateAppointment)
	api.POST("/appointments/:appointmentId/accept", s.AcceptAppointment)
	api.POST("/appointments/:appointmentId/rollback", s.RollbackAppointment)
	api.POST("/appointments/:appointmentId/cancel", s.CancelAppointment)
	api.POST("/appointments/:appointmentId/complete", s.CompleteAppointment)

	api.POST("/appointments/:appointmentId/conversation/end", s.EndConversation)
	api.GET("/appointments/:appointmentId/conversation/ended", s.HasConversationEnded)
	api.GET("/appointments/:appointmentId/conversation/messages", s.GetConversationHistory)
	api.POST("/appointments/:appointmentId/conversation/messages", s.SendMessage)

	api.POST("/transport-orders", s.CreateTransportOrder)
	api.GET("/transport-orders/pending", s.GetPendingTransportOrders)
	api.POST("/transport-orders/:orderId/accept", s.AcceptTransportOrder)
	api.POST("/transport-orders/:orderId/stage", s.AdvanceTransportStage)
	api.POST("/transport-orders/:orderId/complete", s.CompleteTransportOrder)

	api.POST("/warehouse-receipts", s.CreateWarehouseReceipt)
	api.POST("/warehouse-receipts/:receiptId/process", s.ProcessWarehouseReceipt)

	api.GET("/inventory/staging/:recyclerId", s.GetStagingInventory)
	api.GET("/inventory/warehouse", s.GetWarehouseInventory)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CategoryLineRequest is one category line of a submission, manifest or
// receipt summary.
type CategoryLineRequest struct {
	Category string          `json:"category"`
	Answers  string          `json:"answers,omitempty"`
	WeightKg float64         `json:"weightKg"`
	Value    decimal.Decimal `json:"value"`
}

func toCategoryLines(lines []CategoryLineRequest) []commands.CategoryLine {
	result := make([]commands.CategoryLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, commands.CategoryLine{
			Category: line.Category,
			Answers:  line.Answers,
			WeightKg: line.WeightKg,
			Value:    line.Value,
		})
	}
	return result
}

// CreateAppointment handles POST /api/v1/appointments.
func (s *Server) CreateAppointment(ctx echo.Context) error {
	var request struct {
		UserID            string                `json:"userId"`
		EstimatedWeightKg float64               `json:"estimatedWeightKg"`
		Items             []CategoryLineRequest `json:"items"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	appointmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAppointmentCommand(
		appointmentID, userID, request.EstimatedWeightKg, toCategoryLines(request.Items))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"appointmentId": appointmentID.String(),
	})
}

// AcceptAppointment handles POST /api/v1/appointments/{id}/accept.
func (s *Server) AcceptAppointment(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		RecyclerID string `json:"recyclerId"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recyclerID, err := kernel.UUIDFromString(request.RecyclerID)
	if err != nil {
		return badRequest(ctx, "Invalid recycler id")
	}

	cmd, err := commands.NewAcceptAppointmentCommand(appointmentID, recyclerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RollbackAppointment handles POST /api/v1/appointments/{id}/rollback.
// The reason is optional; a blank reason is replaced with a standard one.
func (s *Server) RollbackAppointment(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		RecyclerID string `json:"recyclerId"`
		Reason     string `json:"reason"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recyclerID, err := kernel.UUIDFromString(request.RecyclerID)
	if err != nil {
		return badRequest(ctx, "Invalid recycler id")
	}

	cmd, err := commands.NewRollbackAppointmentCommand(appointmentID, recyclerID, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rollbackAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelAppointment handles POST /api/v1/appointments/{id}/cancel.
func (s *Server) CancelAppointment(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		UserID string `json:"userId"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewCancelAppointmentCommand(appointmentID, userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAppointment handles POST /api/v1/appointments/{id}/complete.
// The actual weight is optional; when absent the estimated weight stands.
func (s *Server) CompleteAppointment(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		RecyclerID     string   `json:"recyclerId"`
		ActualWeightKg *float64 `json:"actualWeightKg"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recyclerID, err := kernel.UUIDFromString(request.RecyclerID)
	if err != nil {
		return badRequest(ctx, "Invalid recycler id")
	}

	cmd, err := commands.NewCompleteAppointmentCommand(appointmentID, recyclerID, request.ActualWeightKg)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EndConversation handles POST /api/v1/appointments/{id}/conversation/end.
func (s *Server) EndConversation(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		Role    string `json:"role"`
		ActorID string `json:"actorId"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, ok := parseRole(request.Role)
	if !ok {
		return badRequest(ctx, "Role must be 'user' or 'recycler'")
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewEndConversationCommand(appointmentID, role, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.endConversationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HasConversationEnded handles GET /api/v1/appointments/{id}/conversation/ended.
func (s *Server) HasConversationEnded(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	query, err := queries.NewHasConversationEndedQuery(appointmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.hasConversationEndedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, struct {
		BothEnded    bool       `json:"bothEnded"`
		EffectiveEnd *time.Time `json:"effectiveEnd,omitempty"`
	}{
		BothEnded:    response.BothEnded,
		EffectiveEnd: response.EffectiveEnd,
	})
}

// MessageResponse is one chat message in a conversation history.
type MessageResponse struct {
	ID      string    `json:"id"`
	Role    string    `json:"role"`
	Sender  *string   `json:"sender,omitempty"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
	Read    bool      `json:"read"`
}

// GetConversationHistory handles GET /api/v1/appointments/{id}/conversation/messages.
func (s *Server) GetConversationHistory(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	query, err := queries.NewGetConversationHistoryQuery(appointmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	messages, err := s.conversationHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		var sender *string
		if message.Sender != nil {
			senderStr := message.Sender.String()
			sender = &senderStr
		}

		response = append(response, MessageResponse{
			ID:      message.ID.String(),
			Role:    message.Role.String(),
			Sender:  sender,
			Content: message.Content,
			SentAt:  message.SentAt,
			Read:    message.Read,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendMessage handles POST /api/v1/appointments/{id}/conversation/messages.
func (s *Server) SendMessage(ctx echo.Context) error {
	appointmentID, err := pathUUID(ctx, "appointmentId")
	if err != nil {
		return badRequest(ctx, "Invalid appointment id")
	}

	var request struct {
		Role     string `json:"role"`
		SenderID string `json:"senderId"`
		Content  string `json:"content"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, ok := parseRole(request.Role)
	if !ok {
		return badRequest(ctx, "Role must be 'user' or 'recycler'")
	}

	senderID, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return badRequest(ctx, "Invalid sender id")
	}

	cmd, err := commands.NewSendMessageCommand(appointmentID, role, senderID, request.Content)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.sendMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTransportOrder handles POST /api/v1/transport-orders.
func (s *Server) CreateTransportOrder(ctx echo.Context) error {
	var request struct {
		RecyclerID        string                `json:"recyclerId"`
		TransporterID     string                `json:"transporterId"`
		PickupAddress     string                `json:"pickupAddress"`
		Destination       string                `json:"destination"`
		ContactName       string                `json:"contactName"`
		ContactPhone      string                `json:"contactPhone"`
		EstimatedWeightKg float64               `json:"estimatedWeightKg"`
		Categories        []CategoryLineRequest `json:"categories"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recyclerID, err := kernel.UUIDFromString(request.RecyclerID)
	if err != nil {
		return badRequest(ctx, "Invalid recycler id")
	}

	transporterID, err := kernel.UUIDFromString(request.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporter id")
	}

	cmd, err := commands.NewCreateTransportOrderCommand(
		kernel.NewUUID(),
		recyclerID,
		transporterID,
		request.PickupAddress,
		request.Destination,
		request.ContactName,
		request.ContactPhone,
		request.EstimatedWeightKg,
		toCategoryLines(request.Categories),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createTransportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"orderId":     result.OrderID.String(),
		"orderNumber": result.OrderNumber,
	})
}

// TransportOrderResponse is one pending shipment in a transporter worklist.
type TransportOrderResponse struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	PickupAddress     string    `json:"pickupAddress"`
	Destination       string    `json:"destination"`
	EstimatedWeightKg float64   `json:"estimatedWeightKg"`
	CreatedAt         time.Time `json:"createdAt"`
}

// GetPendingTransportOrders handles GET /api/v1/transport-orders/pending.
// The transporter is identified by the transporterId query parameter.
func (s *Server) GetPendingTransportOrders(ctx echo.Context) error {
	transporterID, err := kernel.UUIDFromString(ctx.QueryParam("transporterId"))
	if err != nil {
		return badRequest(ctx, "Invalid transporter id")
	}

	query, err := queries.NewGetPendingTransportOrdersQuery(transporterID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.pendingTransportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]TransportOrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, TransportOrderResponse{
			ID:                order.ID.String(),
			OrderNumber:       order.OrderNumber,
			PickupAddress:     order.PickupAddress,
			Destination:       order.Destination,
			EstimatedWeightKg: order.EstimatedWeightKg,
			CreatedAt:         order.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptTransportOrder handles POST /api/v1/transport-orders/{id}/accept.
func (s *Server) AcceptTransportOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request struct {
		TransporterID string `json:"transporterId"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	transporterID, err := kernel.UUIDFromString(request.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporter id")
	}

	cmd, err := commands.NewAcceptTransportOrderCommand(orderID, transporterID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptTransportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceTransportStage handles POST /api/v1/transport-orders/{id}/stage.
// The target stage is given by its wire name, e.g. "ConfirmPickup".
func (s *Server) AdvanceTransportStage(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request struct {
		Stage string `json:"stage"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage, ok := parseStage(request.Stage)
	if !ok {
		return badRequest(ctx, "Unknown stage: "+request.Stage)
	}

	cmd, err := commands.NewAdvanceTransportStageCommand(orderID, stage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.advanceStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTransportOrder handles POST /api/v1/transport-orders/{id}/complete.
func (s *Server) CompleteTransportOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request struct {
		ActualWeightKg *float64 `json:"actualWeightKg"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteTransportOrderCommand(orderID, request.ActualWeightKg)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeTransportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWarehouseReceipt handles POST /api/v1/warehouse-receipts.
func (s *Server) CreateWarehouseReceipt(ctx echo.Context) error {
	var request struct {
		TransportOrderID string                `json:"transportOrderId"`
		WorkerID         string                `json:"workerId"`
		TotalWeightKg    float64               `json:"totalWeightKg"`
		Categories       []CategoryLineRequest `json:"categories"`
		Notes            string                `json:"notes"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	transportOrderID, err := kernel.UUIDFromString(request.TransportOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid transport order id")
	}

	workerID, err := kernel.UUIDFromString(request.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	cmd, err := commands.NewCreateWarehouseReceiptCommand(
		kernel.NewUUID(),
		transportOrderID,
		workerID,
		request.TotalWeightKg,
		toCategoryLines(request.Categories),
		request.Notes,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"receiptId":     result.ReceiptID.String(),
		"receiptNumber": result.ReceiptNumber,
	})
}

// ProcessWarehouseReceipt handles POST /api/v1/warehouse-receipts/{id}/process.
func (s *Server) ProcessWarehouseReceipt(ctx echo.Context) error {
	receiptID, err := pathUUID(ctx, "receiptId")
	if err != nil {
		return badRequest(ctx, "Invalid receipt id")
	}

	cmd, err := commands.NewProcessWarehouseReceiptCommand(receiptID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.processReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InventoryLineResponse is one category line of an inventory summary.
type InventoryLineResponse struct {
	Category      string          `json:"category"`
	TotalWeightKg float64         `json:"totalWeightKg"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// GetStagingInventory handles GET /api/v1/inventory/staging/{recyclerId}.
func (s *Server) GetStagingInventory(ctx echo.Context) error {
	recyclerID, err := pathUUID(ctx, "recyclerId")
	if err != nil {
		return badRequest(ctx, "Invalid recycler id")
	}

	query, err := queries.NewGetStagingInventoryQuery(recyclerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.stagingInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryLines(summary))
}

// GetWarehouseInventory handles GET /api/v1/inventory/warehouse.
func (s *Server) GetWarehouseInventory(ctx echo.Context) error {
	query := queries.NewGetWarehouseInventoryQuery()

	summary, err := s.warehouseInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryLines(summary))
}

func toInventoryLines(summary []queries.InventorySummaryResponse) []InventoryLineResponse {
	response := make([]InventoryLineResponse, 0, len(summary))
	for _, line := range summary {
		response = append(response, InventoryLineResponse{
			Category:      line.Category,
			TotalWeightKg: line.TotalWeightKg,
			TotalValue:    line.TotalValue,
		})
	}
	return response
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseRole(raw string) (conversation.Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "user":
		return conversation.RoleUser, true
	case "recycler":
		return conversation.RoleRecycler, true
	default:
		return conversation.RoleUnknown, false
	}
}

func parseStage(raw string) (transport.Stage, bool) {
	stages := []transport.Stage{
		transport.StageConfirmPickup,
		transport.StageArrivePickup,
		transport.StageLoadingComplete,
		transport.StageConfirmDelivery,
		transport.StageArriveDelivery,
	}
	for _, stage := range stages {
		if strings.EqualFold(raw, stage.String()) {
			return stage, true
		}
	}
	return transport.StageUnknown, false
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps an application error to an HTTP status. Missing objects map to
// 404, ownership violations to 403, state machine or workflow rule
// violations to 409 with the current state named in the message, and input
// validation failures to 400.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, appointment.ErrNotAssignedRecycler),
		errors.Is(err, appointment.ErrNotAppointmentOwner),
		errors.Is(err, transport.ErrNotAssignedTransporter):
		code = http.StatusForbidden
	case errors.Is(err, commands.ErrRecyclerIsNotAvailable),
		errors.Is(err, commands.ErrConversationIsNotEnded),
		errors.Is(err, commands.ErrOrderAlreadyHasReceipt),
		errors.Is(err, conversation.ErrRoleCannotEndConversation),
		errors.Is(err, errs.ErrStateIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
