// Package http exposes the order board over REST and hands websocket
// upgrades to the broadcast hub. The handlers translate between HTTP and
// the application's commands and queries; no business rules live here.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"orderboard/internal/adapters/in/ws"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	removeItemHandler   commands.RemoveOrderItemCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	clearQueueHandler   commands.ClearQueueCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	exportOrdersHandler      queries.ExportOrdersQueryHandler

	hub      *ws.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer creates an HTTP server with the required command and query
// handlers plus the hub that websocket upgrades register with.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	clearQueueHandler commands.ClearQueueCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
	hub *ws.Hub,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeStatusHandler:      changeStatusHandler,
		removeItemHandler:        removeItemHandler,
		deleteOrderHandler:       deleteOrderHandler,
		clearQueueHandler:        clearQueueHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrderHandler:          getOrderHandler,
		exportOrdersHandler:      exportOrdersHandler,
		hub:                      hub,
		logger:                   logger,
		upgrader: websocket.Upgrader{
			// The board is served to browsers on other origins in
			// development; access control happens upstream.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts every route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders", s.CreateOrder)
	e.PATCH("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
	e.DELETE("/orders", s.ClearQueue)
	e.GET("/export/orders", s.ExportOrders)
	e.GET("/ws", s.Subscribe)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /orders - retrieves orders in one status,
// defaulting to the pending queue.
func (s *Server) GetOrders(ctx echo.Context) error {
	statusParam := ctx.QueryParam("status")
	if statusParam == "" {
		statusParam = "pending"
	}

	status, err := order.StatusFromString(statusParam)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshots, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetOrder handles GET /orders/:id - retrieves a single order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// CreateOrder handles POST /orders - places a new order into the queue.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateOrderItem, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		item, err := itemRequest.normalize()
		if err != nil {
			return s.fail(ctx, err)
		}
		items = append(items, item)
	}

	createdAt, err := request.createdAtTime()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		request.Customer,
		request.CustomerName,
		request.TableNumber,
		request.OrderType,
		request.OrderCode,
		items,
		createdAt,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, snapshot)
}

// UpdateOrder handles PATCH /orders/:id. A status payload advances the
// order; an itemId payload strikes an item. Both return the refreshed
// snapshot.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	switch {
	case request.ItemID != nil:
		return s.removeItem(ctx, id, *request.ItemID)
	case request.Status != nil:
		return s.changeStatus(ctx, id, *request.Status)
	default:
		return s.fail(ctx, errs.NewValueIsRequiredError("status or itemId"))
	}
}

func (s *Server) changeStatus(ctx echo.Context, id kernel.UUID, statusParam string) error {
	status, err := order.StatusFromString(statusParam)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

func (s *Server) removeItem(ctx echo.Context, id kernel.UUID, itemParam string) error {
	itemID, err := kernel.UUIDFromString(itemParam)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// DeleteOrder handles DELETE /orders/:id - cancels an order outright.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"orderId": id.String()})
}

// ClearQueue handles DELETE /orders - bulk-confirms the pending queue.
func (s *Server) ClearQueue(ctx echo.Context) error {
	cmd := commands.NewClearQueueCommand()

	snapshots, err := s.clearQueueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// ExportOrders handles GET /export/orders - downloads today's confirmed
// orders as CSV.
func (s *Server) ExportOrders(ctx echo.Context) error {
	now := time.Now().UTC()

	query, err := queries.NewExportOrdersQuery(now)
	if err != nil {
		return s.fail(ctx, err)
	}

	csvBytes, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	filename := fmt.Sprintf("sales-%s.csv", now.Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Blob(http.StatusOK, "text/csv", csvBytes)
}

// Subscribe handles GET /ws - upgrades the connection and registers it
// with the hub. The client then pulls a snapshot over HTTP and applies
// broadcast events on top of it.
func (s *Server) Subscribe(ctx echo.Context) error {
	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	client := ws.NewClient(s.hub, conn, s.logger)
	s.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()

	return nil
}

// fail maps application errors onto the HTTP error taxonomy: not-found to
// 404, validation and transition errors to 400, everything else to 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrLastItemCannotBeRemoved),
		errors.Is(err, commands.ErrItemsAreRequired):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
