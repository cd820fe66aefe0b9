package dispatch

import (
	"context"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// DispatchGW publishes dispatch lifecycle events
type DispatchGW interface {
	PublishDispatchCreated(ctx context.Context, dispatch *models.Dispatch) error
	PublishStatusChanged(ctx context.Context, dispatch *models.Dispatch, previous models.DispatchStatus) error
}

// BookingGW is the HTTP client contract for the booking service
type BookingGW interface {
	GetBooking(ctx context.Context, bookingID int64) (*models.Booking, error)
}

// FleetGW is the HTTP client contract for the fleet service
type FleetGW interface {
	GetDriver(ctx context.Context, driverID int64) (*models.Driver, error)
}
