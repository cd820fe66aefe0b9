package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	pkghttp "github.com/fleetyard/dispatch/internal/pkg/http"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	"github.com/fleetyard/dispatch/internal/utils"
)

// FleetGW is the HTTP client for the fleet service
type FleetGW struct {
	client *pkghttp.Client
	apiKey string
}

// NewFleetGW creates a new fleet service gateway
func NewFleetGW(client *pkghttp.Client, apiKey string) *FleetGW {
	return &FleetGW{
		client: client,
		apiKey: apiKey,
	}
}

// GetDriver fetches a driver by employee ID from the fleet service
func (g *FleetGW) GetDriver(ctx context.Context, driverID int64) (*models.Driver, error) {
	url := fmt.Sprintf("%s/internal/drivers/%d", g.client.BaseURL, driverID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver request: %w", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fleet service: %v", models.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrDriverNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fleet service returned status %d", models.ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver response: %w", err)
	}

	var driver models.Driver
	if err := utils.ParseJSONResponse(body, &driver); err != nil {
		return nil, fmt.Errorf("failed to parse driver response: %w", err)
	}

	return &driver, nil
}
