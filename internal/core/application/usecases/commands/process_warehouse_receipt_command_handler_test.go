package commands_test

import (
	"context"
	"testing"
	"time"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/inventory"
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

type MockProcessReceiptUoW struct{ mock.Mock }

func (m *MockProcessReceiptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessReceiptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessReceiptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessReceiptUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockProcessReceiptUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockProcessReceiptUoWFactory struct{ mock.Mock }

func (m *MockProcessReceiptUoWFactory) Create() commands.ProcessReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessReceiptUoW)
}

func pendingReceipt(t *testing.T) *warehouse.Receipt {
	t.Helper()
	metal, err := transport.NewCategory("metal", mustWeight(t, 30), decimal.NewFromInt(60))
	require.NoError(t, err)
	paper, err := transport.NewCategory("paper", mustWeight(t, 9.5), decimal.NewFromInt(5))
	require.NoError(t, err)

	r, err := warehouse.NewReceipt(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustWeight(t, 39.5), []transport.Category{metal, paper},
		"weighed at gate 3", time.Now())
	require.NoError(t, err)
	return r
}

func TestProcessWarehouseReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	receipt := pendingReceipt(t)
	cmd, err := commands.NewProcessWarehouseReceiptCommand(receipt.ID())
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockProcessReceiptUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, receipt.ID()).Return(receipt, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("AddBatch", ctx, mock.MatchedBy(func(postings []*inventory.Posting) bool {
			if len(postings) != 2 {
				return false
			}
			for _, p := range postings {
				if p.Scope() != inventory.ScopeWarehouse || !p.SourceID().IsEqual(receipt.ID()) {
					return false
				}
			}
			return postings[0].Category() == "metal" && postings[1].Category() == "paper"
		})).Return(nil).Once(),
		warehouseRepo.On("Update", ctx, receipt, warehouse.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, ports.TargetRecycler, receipt.RecyclerID(),
		"Shipment processed", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
	notifier.On("NotifyAll", ctx, ports.TargetBaseStaff,
		"Receipt processed", mock.AnythingOfType("string")).Return(nil).Once()

	handler := commands.NewProcessWarehouseReceiptCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusProcessed, receipt.Status())
	warehouseRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestProcessWarehouseReceiptCommandHandler_Handle_AlreadyProcessed(t *testing.T) {
	ctx := t.Context()
	receipt := pendingReceipt(t)
	require.NoError(t, receipt.Process(time.Now()))
	cmd, err := commands.NewProcessWarehouseReceiptCommand(receipt.ID())
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockProcessReceiptUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, receipt.ID()).Return(receipt, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessWarehouseReceiptCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "not pending")
	inventoryRepo.AssertNotCalled(t, "AddBatch", mock.Anything, mock.Anything)
	warehouseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcessWarehouseReceiptCommandHandler_Handle_LostStatusRace(t *testing.T) {
	ctx := t.Context()
	receipt := pendingReceipt(t)
	cmd, err := commands.NewProcessWarehouseReceiptCommand(receipt.ID())
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockProcessReceiptUoW)

	staleErr := errs.NewStateIsInvalidError("status")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, receipt.ID()).Return(receipt, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("AddBatch", ctx, mock.Anything).Return(nil).Once(),
		warehouseRepo.On("Update", ctx, receipt, warehouse.StatusPending).Return(staleErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessWarehouseReceiptCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestProcessWarehouseReceiptCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockProcessReceiptUoWFactory)
	handler := commands.NewProcessWarehouseReceiptCommandHandler(factory, nil, nil)

	err := handler.Handle(t.Context(), commands.ProcessWarehouseReceiptCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProcessWarehouseReceiptCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
