package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPendingOrdersQueryHandler_Handle_ReturnsProjections(t *testing.T) {
	ctx := t.Context()
	first := mustOrder("cust-1")
	second := mustOrder("cust-2")

	reader := new(MockOrderReader)
	reader.On("GetAllInPendingStatus", ctx).
		Return([]*order.Order{first, second}, nil).Once()

	h := queries.NewGetPendingOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewGetPendingOrdersQuery())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, first.ID(), result[0].ID)
	assert.Equal(t, "cust-1", result[0].CustomerID)
	assert.Equal(t, "Pending", result[0].Status)
	assert.InDelta(t, 25.0, result[0].TotalAmount, 1e-9)
	require.Len(t, result[0].Items, 2)
	assert.Equal(t, "Carrot", result[0].Items[0].Name)
	assert.Equal(t, "kg", result[0].Items[0].Unit)
	assert.Equal(t, order.DefaultUnit, result[0].Items[1].Unit)
	assert.Empty(t, result[0].AssignedPartnerID)

	reader.AssertExpectations(t)
}

func TestGetPendingOrdersQueryHandler_Handle_EmptyBoard(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAllInPendingStatus", ctx).Return([]*order.Order{}, nil).Once()

	h := queries.NewGetPendingOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewGetPendingOrdersQuery())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetPendingOrdersQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetPendingOrdersQueryHandler(new(MockOrderReader))
	result, err := h.Handle(ctx, queries.GetPendingOrdersQuery{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}

func TestGetPendingOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAllInPendingStatus", ctx).Return(nil, assert.AnError).Once()

	h := queries.NewGetPendingOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewGetPendingOrdersQuery())
	require.Error(t, err)
	assert.Nil(t, result)
}
