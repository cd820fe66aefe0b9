package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/fleetyard/dispatch/internal/pkg/models"
	"github.com/fleetyard/dispatch/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the peer service's API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service routes
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates an API key middleware from config
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"booking-service": cfg.BookingService,
			"fleet-service":   cfg.FleetService,
			"dashboard":       cfg.Dashboard,
		},
	}
}

// Validate returns an Echo middleware that accepts requests carrying
// the API key of any of the allowed peers.
func (m *APIKeyMiddleware) Validate(allowedPeers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, peer := range allowedPeers {
				expected := m.keys[peer]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
