// Package http exposes the point-of-sale operations over HTTP using echo.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST surface to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	ingestHandler       commands.IngestPartnerEventsCommandHandler
	saveConfigHandler   commands.SavePartnerConfigCommandHandler
	refreshTokenHandler commands.RefreshPartnerTokenCommandHandler
	simulateHandler     commands.SimulatePartnerOrdersCommandHandler

	// Query handlers
	listOrdersHandler    queries.ListOrdersQueryHandler
	dispatchQueueHandler queries.GetDispatchQueueQueryHandler
	getConfigHandler     queries.GetPartnerConfigQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	ingestHandler commands.IngestPartnerEventsCommandHandler,
	saveConfigHandler commands.SavePartnerConfigCommandHandler,
	refreshTokenHandler commands.RefreshPartnerTokenCommandHandler,
	simulateHandler commands.SimulatePartnerOrdersCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	dispatchQueueHandler queries.GetDispatchQueueQueryHandler,
	getConfigHandler queries.GetPartnerConfigQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateStatusHandler:  updateStatusHandler,
		ingestHandler:        ingestHandler,
		saveConfigHandler:    saveConfigHandler,
		refreshTokenHandler:  refreshTokenHandler,
		simulateHandler:      simulateHandler,
		listOrdersHandler:    listOrdersHandler,
		dispatchQueueHandler: dispatchQueueHandler,
		getConfigHandler:     getConfigHandler,
		logger:               logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	e.POST("/partner/webhook", s.IngestPartnerEvents)
	e.GET("/partner/queue", s.GetDispatchQueue)
	e.GET("/partner/config", s.GetPartnerConfig)
	e.POST("/partner/config", s.SavePartnerConfig)
	e.POST("/partner/auth", s.RefreshPartnerToken)
	e.POST("/partner/simulate", s.SimulatePartnerOrders)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.Channel, req.CustomerName, req.TableID, items)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// ListOrders handles GET /orders with an optional ?status= filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, orderResponseFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// IngestPartnerEvents handles POST /partner/webhook. The endpoint always
// acknowledges with 200 once the batch has been iterated; per-event failures
// are reflected in the counts, not the status code, so the partner does not
// retry the whole batch.
func (s *Server) IngestPartnerEvents(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	events, err := decodePartnerEvents(body)
	if err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	result, err := s.ingestHandler.Handle(
		ctx.Request().Context(),
		commands.NewIngestPartnerEventsCommand(events),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ingestResultResponseFrom(result))
}

// GetDispatchQueue handles GET /partner/queue.
func (s *Server) GetDispatchQueue(ctx echo.Context) error {
	result, err := s.dispatchQueueHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDispatchQueueQuery(),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dispatchQueueResponseFrom(result))
}

// GetPartnerConfig handles GET /partner/config.
func (s *Server) GetPartnerConfig(ctx echo.Context) error {
	config, err := s.getConfigHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetPartnerConfigQuery(),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, partnerConfigResponse{
		Environment:     config.Environment,
		ClientID:        config.ClientID,
		HasClientSecret: config.HasClientSecret,
		MerchantID:      config.MerchantID,
		HasAccessToken:  config.HasAccessToken,
		TokenExpiresAt:  config.TokenExpiresAt,
		UpdatedAt:       config.UpdatedAt,
	})
}

// SavePartnerConfig handles POST /partner/config.
func (s *Server) SavePartnerConfig(ctx echo.Context) error {
	var req partnerConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSavePartnerConfigCommand(req.Environment, req.ClientID, req.ClientSecret, req.MerchantID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	saved, err := s.saveConfigHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, partnerConfigResponse{
		Environment:     saved.Environment(),
		ClientID:        saved.ClientID(),
		HasClientSecret: saved.ClientSecret() != "",
		MerchantID:      saved.MerchantID(),
		HasAccessToken:  saved.AccessToken() != "",
		TokenExpiresAt:  saved.TokenExpiresAt(),
		UpdatedAt:       saved.UpdatedAt(),
	})
}

// RefreshPartnerToken handles POST /partner/auth.
func (s *Server) RefreshPartnerToken(ctx echo.Context) error {
	token, err := s.refreshTokenHandler.Handle(ctx.Request().Context())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, partnerTokenResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	})
}

// SimulatePartnerOrders handles POST /partner/simulate.
func (s *Server) SimulatePartnerOrders(ctx echo.Context) error {
	var req simulateRequest
	if err := ctx.Bind(&req); err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	cmd, err := commands.NewSimulatePartnerOrdersCommand(req.Count, items)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.simulateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ingestResultResponseFrom(result))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse maps domain errors onto HTTP status codes: validation errors
// are 400, unknown objects 404, lost write races 409, everything else 500
// with the detail kept out of the body.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}
