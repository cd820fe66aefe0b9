package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetyard/dispatch/internal/pkg/middleware"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	natspkg "github.com/fleetyard/dispatch/internal/pkg/nats"
	"github.com/fleetyard/dispatch/services/dispatch"
	httphandler "github.com/fleetyard/dispatch/services/dispatch/handler/http"
	natshandler "github.com/fleetyard/dispatch/services/dispatch/handler/nats"
)

// Handler combines the HTTP handlers and NATS consumers for the
// dispatch service
type Handler struct {
	dispatchHTTP    *httphandler.DispatchHandler
	bookingConsumer *natshandler.BookingConsumer
}

// NewHandler creates the combined dispatch handler
func NewHandler(dispatchUC dispatch.DispatchUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		dispatchHTTP:    httphandler.NewDispatchHandler(dispatchUC),
		bookingConsumer: natshandler.NewBookingConsumer(natsClient, dispatchUC),
	}
}

// RegisterRoutes wires the dispatch routes onto the Echo instance. The
// /internal group serves peer services behind API keys; the /api/v1
// group serves the dashboard behind JWT auth. Both reach the same
// handlers.
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMW *middleware.APIKeyMiddleware, jwtConfig models.JWTConfig) {
	internal := e.Group("/internal", apiKeyMW.Validate("booking-service", "fleet-service", "dashboard"))
	h.registerDispatchRoutes(internal)

	dashboard := e.Group("/api/v1", middleware.JWTAuthMiddleware(jwtConfig))
	h.registerDispatchRoutes(dashboard)
}

func (h *Handler) registerDispatchRoutes(g *echo.Group) {
	g.POST("/dispatches", h.dispatchHTTP.CreateDispatch)
	g.GET("/dispatches", h.dispatchHTTP.ListDispatches)
	g.GET("/dispatches/:dispatchID", h.dispatchHTTP.GetDispatch)
	g.GET("/dispatches/:dispatchID/details", h.dispatchHTTP.GetDispatchDetails)
	g.GET("/dispatches/:dispatchID/transitions", h.dispatchHTTP.GetAllowedTransitions)
	g.PATCH("/dispatches/:dispatchID/status", h.dispatchHTTP.UpdateDispatchStatus)
	g.POST("/dispatches/:dispatchID/cancel", h.dispatchHTTP.CancelDispatch)
	g.GET("/drivers/:driverID/dispatches", h.dispatchHTTP.ListDriverDispatches)
	g.GET("/bookings/:bookingID/dispatch", h.dispatchHTTP.GetBookingDispatch)
}

// InitNATSConsumers starts the event subscriptions
func (h *Handler) InitNATSConsumers() error {
	return h.bookingConsumer.Start()
}
