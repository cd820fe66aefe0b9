package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware returns an Echo middleware that logs every request
// through the application logger.
func EchoMiddleware(appLogger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = res.Header().Get(echo.HeaderXRequestID)
			}

			appLogger.LogHTTPRequest(
				req.Method,
				req.URL.Path,
				c.RealIP(),
				requestID,
				res.Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
