package queries_test

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockLedgerReader struct{ mock.Mock }

func (m *MockLedgerReader) GetAll(ctx context.Context) ([]ledger.TransactionRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]ledger.TransactionRecord)
	return records, args.Error(1)
}

func mustItem(name string, quantity float64, unit string, unitPrice float64) order.Item {
	item, err := order.NewItem(name, quantity, unit, unitPrice)
	if err != nil {
		panic(err)
	}
	return item
}

func mustOrder(customerID string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{
		mustItem("Carrot", 2, "kg", 10),
		mustItem("Banana", 1, "", 5),
	})
	if err != nil {
		panic(err)
	}
	return o
}
