package commands_test

import (
	"context"
	"testing"
	"time"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/domain/model/warehouse"
	"recycling/internal/core/ports"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransportRepository struct{ mock.Mock }

func (m *MockTransportRepository) Add(ctx context.Context, o *transport.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportRepository) Update(ctx context.Context, o *transport.Order, fromStatus transport.Status, fromStage *transport.Stage) error {
	args := m.Called(ctx, o, fromStatus, fromStage)
	return args.Error(0)
}

func (m *MockTransportRepository) Get(ctx context.Context, id kernel.UUID) (*transport.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Order), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, r *warehouse.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, r *warehouse.Receipt, fromStatus warehouse.Status) error {
	args := m.Called(ctx, r, fromStatus)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Receipt), args.Error(1)
}

func (m *MockWarehouseRepository) GetByTransportOrder(ctx context.Context, transportOrderID kernel.UUID) (*warehouse.Receipt, error) {
	args := m.Called(ctx, transportOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Receipt), args.Error(1)
}

type MockCreateReceiptUoW struct{ mock.Mock }

func (m *MockCreateReceiptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateReceiptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateReceiptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateReceiptUoW) TransportRepository() ports.TransportRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRepository)
}

func (m *MockCreateReceiptUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockCreateReceiptUoWFactory struct{ mock.Mock }

func (m *MockCreateReceiptUoWFactory) Create() commands.CreateReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateReceiptUoW)
}

func completedTransportOrder(t *testing.T) *transport.Order {
	t.Helper()
	transporterID := kernel.NewUUID()
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)

	o, err := transport.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), transporterID,
		"12 Staging Yard", "Processing Base North", "Alex", "+1-555-0100",
		weight, nil, time.Now())
	require.NoError(t, err)

	require.NoError(t, o.Accept(transporterID, time.Now()))
	for _, stage := range []transport.Stage{
		transport.StageConfirmPickup,
		transport.StageArrivePickup,
		transport.StageLoadingComplete,
		transport.StageConfirmDelivery,
		transport.StageArriveDelivery,
	} {
		require.NoError(t, o.AdvanceTo(stage, time.Now()))
	}
	require.NoError(t, o.Complete(nil, time.Now()))
	return o
}

func receiptCommand(t *testing.T, orderID kernel.UUID) commands.CreateWarehouseReceiptCommand {
	t.Helper()
	cmd, err := commands.NewCreateWarehouseReceiptCommand(
		kernel.NewUUID(), orderID, kernel.NewUUID(), 39.5,
		[]commands.CategoryLine{{Category: "metal", WeightKg: 39.5, Value: decimal.NewFromInt(60)}},
		"weighed at gate 3")
	require.NoError(t, err)
	return cmd
}

func TestCreateWarehouseReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := completedTransportOrder(t)
	cmd := receiptCommand(t, order.ID())

	transportRepo := new(MockTransportRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockCreateReceiptUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportRepository").Return(transportRepo).Once(),
		transportRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("GetByTransportOrder", ctx, order.ID()).
			Return(nil, errs.NewObjectNotFoundError("warehouse receipt", order.ID().String())).Once(),
		warehouseRepo.On("Add", ctx, mock.MatchedBy(func(r *warehouse.Receipt) bool {
			return r.Status() == warehouse.StatusPending &&
				r.TransportOrderID().IsEqual(order.ID()) &&
				r.RecyclerID().IsEqual(order.RecyclerID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyAll", ctx, ports.TargetBaseStaff,
		"Intake recorded", mock.AnythingOfType("string")).Return(nil).Once()

	handler := commands.NewCreateWarehouseReceiptCommandHandler(factory, notifier, nil)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.ReceiptID(), result.ReceiptID)
	assert.Regexp(t, `^WR-\d{8}-[0-9A-F]{8}$`, result.ReceiptNumber)
	transportRepo.AssertExpectations(t)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateWarehouseReceiptCommandHandler_Handle_OrderNotCompleted(t *testing.T) {
	ctx := t.Context()
	transporterID := kernel.NewUUID()
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)
	order, err := transport.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), transporterID,
		"12 Staging Yard", "Processing Base North", "Alex", "+1-555-0100",
		weight, nil, time.Now())
	require.NoError(t, err)

	cmd := receiptCommand(t, order.ID())

	transportRepo := new(MockTransportRepository)
	uow := new(MockCreateReceiptUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportRepository").Return(transportRepo).Once(),
		transportRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWarehouseReceiptCommandHandler(factory, nil, nil)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "Pending")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateWarehouseReceiptCommandHandler_Handle_DuplicateReceipt(t *testing.T) {
	ctx := t.Context()
	order := completedTransportOrder(t)
	cmd := receiptCommand(t, order.ID())

	existing, err := warehouse.NewReceipt(
		kernel.NewUUID(), order.ID(), order.RecyclerID(), kernel.NewUUID(),
		mustWeight(t, 39.5), nil, "", time.Now())
	require.NoError(t, err)

	transportRepo := new(MockTransportRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockCreateReceiptUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportRepository").Return(transportRepo).Once(),
		transportRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("GetByTransportOrder", ctx, order.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWarehouseReceiptCommandHandler(factory, nil, nil)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderAlreadyHasReceipt)
	warehouseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
