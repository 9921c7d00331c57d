// Package http exposes the coordinator's REST and websocket API on top of
// the echo framework. Handlers translate between transport DTOs and
// application commands/queries; all business rules live below this layer.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to application use cases.
// It coordinates between HTTP handlers and the command/query layer and owns
// the websocket subscribe endpoint feeding the notification hub.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler
	closeOrderHandler  commands.CloseOrderCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getLedgerHandler        queries.GetLedgerQueryHandler
	getNearbyItemsHandler   queries.GetNearbyItemsQueryHandler

	hub *notifier.Hub
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getLedgerHandler queries.GetLedgerQueryHandler,
	getNearbyItemsHandler queries.GetNearbyItemsQueryHandler,
	hub *notifier.Hub,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		closeOrderHandler:       closeOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getOrderHandler:         getOrderHandler,
		getLedgerHandler:        getLedgerHandler,
		getNearbyItemsHandler:   getNearbyItemsHandler,
		hub:                     hub,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/close", s.CloseOrder)
	api.GET("/ledger", s.GetLedger)
	api.GET("/items/nearby", s.GetNearbyItems)
	api.GET("/subscribe", s.Subscribe)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), request.CustomerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetAvailableOrders handles GET /api/v1/orders/available - the dispatch board.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(o))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - a partner claims an order.
// Exactly one claim per order ever succeeds; losers receive 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request AcceptOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, request.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AcceptOrderResponse{
		OrderID:     accepted.ID().String(),
		PartnerID:   accepted.AssignedPartnerID(),
		Status:      accepted.Status().String(),
		HandoffCode: accepted.HandoffCode(),
	})
}

// CloseOrder handles POST /api/v1/orders/:id/close - completes a delivery.
func (s *Server) CloseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request CloseOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCloseOrderCommand(orderID, request.HandoffCode)
	if err != nil {
		return badRequest(ctx, "Invalid close data: "+err.Error())
	}

	record, err := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, recordResponseFromDomain(record))
}

// GetLedger handles GET /api/v1/ledger - the full transaction ledger.
func (s *Server) GetLedger(ctx echo.Context) error {
	query := queries.NewGetLedgerQuery()

	records, err := s.getLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]TransactionRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, TransactionRecordResponse{
			OrderID:            record.OrderID.String(),
			CustomerID:         record.CustomerID,
			PartnerID:          record.PartnerID,
			OrderTotal:         record.OrderTotal,
			RewardBonus:        record.RewardBonus,
			PartnerCommission:  record.PartnerCommission,
			PlatformCommission: record.PlatformCommission,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearbyItems handles GET /api/v1/items/nearby - the item catalog.
func (s *Server) GetNearbyItems(ctx echo.Context) error {
	query := queries.NewGetNearbyItemsQuery()

	items, err := s.getNearbyItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]NearbyItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, NearbyItemResponse{
			Name:   item.Name,
			Price:  item.Price,
			Vendor: item.Vendor,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// mapError translates application errors into HTTP status codes:
// unknown orders map to 404, lost claim races to 409, a wrong handoff code
// or any validation failure to 400, everything else to 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrStatusConflict):
		return respondError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrHandoffCodeMismatch):
		return respondError(ctx, http.StatusBadRequest, "Handoff code does not match")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respondError(ctx, http.StatusBadRequest, message)
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
