package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetyard/dispatch/internal/pkg/logger"
)

// Checker verifies one dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context) error

// Check implements Checker.
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Service runs registered dependency checks for readiness probes.
type Service struct {
	appLogger *logger.AppLogger
	checkers  map[string]Checker
}

// NewService creates a health service.
func NewService(appLogger *logger.AppLogger) *Service {
	return &Service{
		appLogger: appLogger,
		checkers:  make(map[string]Checker),
	}
}

// AddChecker registers a named dependency check.
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckAll runs every registered check with a per-check timeout and
// returns the per-dependency result.
func (s *Service) CheckAll(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			results[name] = err.Error()
			s.appLogger.WarnF("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			continue
		}
		results[name] = "ok"
	}

	return results, healthy
}

type statusResponse struct {
	Service    string            `json:"service"`
	Version    string            `json:"version"`
	Status     string            `json:"status"`
	GoVersion  string            `json:"go_version"`
	Hostname   string            `json:"hostname"`
	ServerTime time.Time         `json:"server_time"`
	Checks     map[string]string `json:"checks,omitempty"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, statusResponse{
			Service:    serviceName,
			Version:    version,
			Status:     "ok",
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		checks, healthy := service.CheckAll(c.Request().Context())

		resp := statusResponse{
			Service:    serviceName,
			Version:    version,
			Status:     "ok",
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
			Checks:     checks,
		}
		if !healthy {
			resp.Status = "degraded"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
}
