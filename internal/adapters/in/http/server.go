// Package http exposes the order tracking use cases over REST with echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	advanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error)
	}
	registerDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDeliveryCommand) (*order.Order, error)
	}
	advanceOrderByFlowHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderByFlowCommand) (*order.Order, error)
	}
	listOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	getOrderEventsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderEventsQuery) ([]queries.EventView, error)
	}
	failureRecorder interface {
		CommandFailed(operation, reason string)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateLegacyOrder  createOrderHandler
	CreateDirectOrder  createOrderHandler
	AdvanceOrder       advanceOrderHandler
	RegisterDelivery   registerDeliveryHandler
	AdvanceOrderByFlow advanceOrderByFlowHandler
	ListOrders         listOrdersHandler
	GetOrder           getOrderHandler
	GetOrderEvents     getOrderEventsHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	failures failureRecorder
	logger   *slog.Logger
}

func NewServer(handlers Handlers, failures failureRecorder, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		failures: failures,
		logger:   logger.With("component", "http"),
	}
}

// CreateLegacyOrder handles POST /v3/orders/varredura-ml.
func (s *Server) CreateLegacyOrder(c echo.Context) error {
	return s.createOrder(c, "create_legacy_order", s.handlers.CreateLegacyOrder)
}

// CreateDirectOrder handles POST /v3/orders/create-order.
func (s *Server) CreateDirectOrder(c echo.Context) error {
	return s.createOrder(c, "create_direct_order", s.handlers.CreateDirectOrder)
}

func (s *Server) createOrder(c echo.Context, operation string, handler createOrderHandler) error {
	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, operation, errInvalidBody)
	}

	cmd, err := commands.NewCreateOrderCommand(by, req.ClientID, req.PackageCode, req.Service, req.Street, req.CEP)
	if err != nil {
		return s.fail(c, operation, err)
	}

	o, err := handler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(o))
}

// AdvanceOrder handles PATCH /v3/orders/update-order.
func (s *Server) AdvanceOrder(c echo.Context) error {
	const operation = "advance_order"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	var req AdvanceOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, operation, errInvalidBody)
	}

	cmd, err := commands.NewAdvanceOrderCommand(by, req.PackageCode, req.ClientID, req.UserID, req.Service)
	if err != nil {
		return s.fail(c, operation, err)
	}

	o, err := s.handlers.AdvanceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// RegisterDelivery handles PATCH /v3/orders/registro-entrega.
func (s *Server) RegisterDelivery(c echo.Context) error {
	const operation = "register_delivery"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	var req PackageRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, operation, errInvalidBody)
	}

	cmd, err := commands.NewRegisterDeliveryCommand(by, req.PackageCode)
	if err != nil {
		return s.fail(c, operation, err)
	}

	o, err := s.handlers.RegisterDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// AdvanceOrderByFlow handles PATCH /v3/orders/advance-flow.
func (s *Server) AdvanceOrderByFlow(c echo.Context) error {
	const operation = "advance_order_by_flow"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	var req PackageRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, operation, errInvalidBody)
	}

	cmd, err := commands.NewAdvanceOrderByFlowCommand(by, req.PackageCode)
	if err != nil {
		return s.fail(c, operation, err)
	}

	o, err := s.handlers.AdvanceOrderByFlow.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// ListOrders handles GET /v3/orders, with an optional ?status= filter.
func (s *Server) ListOrders(c echo.Context) error {
	const operation = "list_orders"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	var status *int
	if raw := c.QueryParam("status"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return s.fail(c, operation, errInvalidStatusFilter)
		}
		status = &v
	}

	query, err := queries.NewListOrdersQuery(by.OwnerID(), status)
	if err != nil {
		return s.fail(c, operation, err)
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, operation, err)
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /v3/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	const operation = "get_order"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	query, err := queries.NewGetOrderQuery(by.OwnerID(), c.Param("id"))
	if err != nil {
		return s.fail(c, operation, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// GetOrderEvents handles GET /v3/orders/:id/events.
func (s *Server) GetOrderEvents(c echo.Context) error {
	const operation = "get_order_events"

	by, err := actorFrom(c)
	if err != nil {
		return s.fail(c, operation, err)
	}

	query, err := queries.NewGetOrderEventsQuery(by.OwnerID(), c.Param("id"))
	if err != nil {
		return s.fail(c, operation, err)
	}

	views, err := s.handlers.GetOrderEvents.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, operation, err)
	}

	response := make([]Event, len(views))
	for i, v := range views {
		response[i] = eventFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) fail(c echo.Context, operation string, err error) error {
	status, reason := classify(err)
	s.failures.CommandFailed(operation, reason)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Use case failed", "operation", operation, "error", err)
		message = "Internal error"
	}

	return c.JSON(status, Error{Code: status, Message: message})
}
