package dispatch

import (
	"context"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// DispatchRepo defines the interface for dispatch data access operations
type DispatchRepo interface {
	CreateDispatch(ctx context.Context, dispatch *models.Dispatch) error
	GetDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error)
	GetDispatchByBookingID(ctx context.Context, bookingID int64) (*models.Dispatch, error)
	ListByStatus(ctx context.Context, status models.DispatchStatus, offset, limit int) ([]*models.Dispatch, error)
	ListByDriver(ctx context.Context, driverID int64, offset, limit int) ([]*models.Dispatch, error)

	// UpdateStatus persists a transition with a compare-and-set on the
	// previously fetched status. It returns models.ErrStaleDispatch when
	// another actor moved the dispatch first.
	UpdateStatus(ctx context.Context, dispatch *models.Dispatch, from models.DispatchStatus) error
}
