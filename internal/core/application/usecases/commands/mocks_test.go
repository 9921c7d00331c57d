package commands_test

import (
	"context"
	"errors"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

// Transition mirrors the real contract: when the expectation supplies an
// aggregate, the mutator is applied to it and a mutator error aborts the
// call; a nil aggregate means the repository itself failed.
func (m *MockOrderRepository) Transition(
	ctx context.Context,
	id kernel.UUID,
	expected order.Status,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	args := m.Called(ctx, id, expected)
	aggregate, _ := args.Get(0).(*order.Order)
	if aggregate == nil {
		return nil, args.Error(1)
	}
	if err := mutate(aggregate); err != nil {
		return nil, err
	}
	return aggregate, args.Error(1)
}

type MockLedgerStore struct{ mock.Mock }

func (m *MockLedgerStore) Append(ctx context.Context, record ledger.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerStore) GetAll(_ context.Context) ([]ledger.TransactionRecord, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) LedgerStore() ports.LedgerStore {
	args := m.Called()
	return args.Get(0).(ports.LedgerStore)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) BroadcastToRole(role kernel.Role, event ports.Event) {
	m.Called(role, event)
}

func (m *MockNotifier) NotifyUser(role kernel.Role, userID string, event ports.Event) {
	m.Called(role, userID, event)
}

func mustItem(name string, quantity float64, unit string, unitPrice float64) order.Item {
	item, err := order.NewItem(name, quantity, unit, unitPrice)
	if err != nil {
		panic(err)
	}
	return item
}

func testItems() []order.Item {
	return []order.Item{
		mustItem("Carrot", 2, "kg", 10),
		mustItem("Banana", 1, "", 5),
	}
}
