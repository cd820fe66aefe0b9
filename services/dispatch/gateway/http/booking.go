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

// BookingGW is the HTTP client for the booking service
type BookingGW struct {
	client *pkghttp.Client
	apiKey string
}

// NewBookingGW creates a new booking service gateway
func NewBookingGW(client *pkghttp.Client, apiKey string) *BookingGW {
	return &BookingGW{
		client: client,
		apiKey: apiKey,
	}
}

// GetBooking fetches a booking by ID from the booking service
func (g *BookingGW) GetBooking(ctx context.Context, bookingID int64) (*models.Booking, error) {
	url := fmt.Sprintf("%s/internal/bookings/%d", g.client.BaseURL, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking request: %w", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: booking service: %v", models.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrBookingNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: booking service returned status %d", models.ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking response: %w", err)
	}

	var booking models.Booking
	if err := utils.ParseJSONResponse(body, &booking); err != nil {
		return nil, fmt.Errorf("failed to parse booking response: %w", err)
	}

	return &booking, nil
}
