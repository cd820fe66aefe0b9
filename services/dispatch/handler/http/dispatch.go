package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetyard/dispatch/internal/pkg/logger"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	"github.com/fleetyard/dispatch/internal/utils"
	"github.com/fleetyard/dispatch/services/dispatch"
)

// DispatchHandler handles HTTP requests for the dispatch lifecycle
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// CreateDispatch handles POST /dispatches
func (h *DispatchHandler) CreateDispatch(c echo.Context) error {
	var req models.CreateDispatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	created, err := h.dispatchUC.CreateDispatch(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Dispatch created", created)
}

// GetDispatch handles GET /dispatches/:dispatchID
func (h *DispatchHandler) GetDispatch(c echo.Context) error {
	dispatchID, err := parseDispatchID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	d, err := h.dispatchUC.GetDispatch(c.Request().Context(), dispatchID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

// GetDispatchDetails handles GET /dispatches/:dispatchID/details
func (h *DispatchHandler) GetDispatchDetails(c echo.Context) error {
	dispatchID, err := parseDispatchID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	view, err := h.dispatchUC.GetDispatchWithDetails(c.Request().Context(), dispatchID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// GetAllowedTransitions handles GET /dispatches/:dispatchID/transitions
func (h *DispatchHandler) GetAllowedTransitions(c echo.Context) error {
	dispatchID, err := parseDispatchID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	allowed, err := h.dispatchUC.AllowedTransitions(c.Request().Context(), dispatchID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"allowed": allowed,
	})
}

// ListDispatches handles GET /dispatches?status=&offset=&limit=
func (h *DispatchHandler) ListDispatches(c echo.Context) error {
	status, err := models.ParseDispatchStatus(c.QueryParam("status"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	offset, limit, err := parsePagination(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	dispatches, err := h.dispatchUC.ListDispatchesByStatus(c.Request().Context(), status, offset, limit)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", dispatches)
}

// ListDriverDispatches handles GET /drivers/:driverID/dispatches
func (h *DispatchHandler) ListDriverDispatches(c echo.Context) error {
	driverID, err := strconv.ParseInt(c.Param("driverID"), 10, 64)
	if err != nil || driverID <= 0 {
		return utils.BadRequestResponse(c, "driverID must be a positive integer")
	}

	offset, limit, err := parsePagination(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	dispatches, err := h.dispatchUC.ListDispatchesByDriver(c.Request().Context(), driverID, offset, limit)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", dispatches)
}

// GetBookingDispatch handles GET /bookings/:bookingID/dispatch
func (h *DispatchHandler) GetBookingDispatch(c echo.Context) error {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil || bookingID <= 0 {
		return utils.BadRequestResponse(c, "bookingID must be a positive integer")
	}

	d, err := h.dispatchUC.GetDispatchByBookingID(c.Request().Context(), bookingID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

// UpdateDispatchStatus handles PATCH /dispatches/:dispatchID/status
func (h *DispatchHandler) UpdateDispatchStatus(c echo.Context) error {
	dispatchID, err := parseDispatchID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.UpdateDispatchStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	req.DispatchID = dispatchID

	updated, err := h.dispatchUC.UpdateDispatchStatus(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispatch status updated", updated)
}

// CancelDispatch handles POST /dispatches/:dispatchID/cancel
func (h *DispatchHandler) CancelDispatch(c echo.Context) error {
	dispatchID, err := parseDispatchID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	cancelled, err := h.dispatchUC.CancelDispatch(c.Request().Context(), dispatchID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispatch cancelled", cancelled)
}

// mapError translates domain errors into HTTP responses. Business-rule
// rejections and upstream failures get distinct status codes so callers
// can tell a retryable conflict from a broken request.
func (h *DispatchHandler) mapError(c echo.Context, err error) error {
	switch {
	case models.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrDispatchNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.UnprocessableResponse(c, err.Error())
	case errors.Is(err, models.ErrDispatchTerminal),
		errors.Is(err, models.ErrStaleDispatch):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrIncompleteJoin):
		return utils.ServiceUnavailableResponse(c, err.Error())
	case errors.Is(err, models.ErrUpstreamFailure):
		logger.Error("upstream call failed", logger.Err(err))
		return utils.BadGatewayResponse(c, "")
	default:
		logger.Error("dispatch request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

func parseDispatchID(c echo.Context) (string, error) {
	raw := c.Param("dispatchID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", models.ValidationError{Field: "dispatchID", Msg: "must be a valid UUID"}
	}
	return id.String(), nil
}

func parsePagination(c echo.Context) (int, int, error) {
	offset, limit := 0, 0

	if raw := c.QueryParam("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, models.ValidationError{Field: "offset", Msg: "must be a non-negative integer"}
		}
		offset = v
	}
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return 0, 0, models.ValidationError{Field: "limit", Msg: "must be a positive integer"}
		}
		limit = v
	}

	return offset, limit, nil
}
