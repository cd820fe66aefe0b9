package dispatch

import (
	"context"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// DispatchUC defines the dispatch lifecycle use cases
type DispatchUC interface {
	CreateDispatch(ctx context.Context, req models.CreateDispatchRequest) (*models.Dispatch, error)
	GetDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error)
	GetDispatchByBookingID(ctx context.Context, bookingID int64) (*models.Dispatch, error)
	ListDispatchesByStatus(ctx context.Context, status models.DispatchStatus, offset, limit int) ([]*models.Dispatch, error)
	ListDispatchesByDriver(ctx context.Context, driverID int64, offset, limit int) ([]*models.Dispatch, error)
	AllowedTransitions(ctx context.Context, dispatchID string) ([]models.DispatchStatus, error)
	UpdateDispatchStatus(ctx context.Context, req models.UpdateDispatchStatusRequest) (*models.Dispatch, error)
	CancelDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error)
	GetDispatchWithDetails(ctx context.Context, dispatchID string) (*models.DispatchWithDetails, error)

	// CancelActiveDispatchForBooking cancels the booking's dispatch if
	// one exists and is still active. Used by the booking event consumer.
	CancelActiveDispatchForBooking(ctx context.Context, bookingID int64) error
}
