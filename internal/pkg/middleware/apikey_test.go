package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

func runAPIKeyRequest(t *testing.T, mw *APIKeyMiddleware, peers []string, key string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/dispatches", nil)
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Validate(peers...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestAPIKeyMiddleware(t *testing.T) {
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{
		BookingService: "booking-secret",
		FleetService:   "fleet-secret",
		Dashboard:      "dashboard-secret",
	})

	rec := runAPIKeyRequest(t, mw, []string{"booking-service", "dashboard"}, "booking-secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = runAPIKeyRequest(t, mw, []string{"booking-service", "dashboard"}, "dashboard-secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddlewareRejectsWrongPeer(t *testing.T) {
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{
		BookingService: "booking-secret",
		FleetService:   "fleet-secret",
	})

	// A valid key for a peer not allowed on this route is still rejected.
	rec := runAPIKeyRequest(t, mw, []string{"booking-service"}, "fleet-secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddlewareRejectsMissingKey(t *testing.T) {
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{BookingService: "booking-secret"})

	rec := runAPIKeyRequest(t, mw, []string{"booking-service"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddlewareRejectsUnconfiguredPeer(t *testing.T) {
	// An empty configured key never matches, even an empty header.
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{})

	rec := runAPIKeyRequest(t, mw, []string{"booking-service"}, "anything")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
