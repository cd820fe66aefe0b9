package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetyard/dispatch/internal/pkg/logger"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	"github.com/fleetyard/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch lifecycle use cases
type DispatchUC struct {
	cfg        *models.Config
	repo       dispatch.DispatchRepo
	cache      dispatch.ViewCache
	dispatchGW dispatch.DispatchGW
	bookingGW  dispatch.BookingGW
	fleetGW    dispatch.FleetGW
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	cache dispatch.ViewCache,
	dispatchGW dispatch.DispatchGW,
	bookingGW dispatch.BookingGW,
	fleetGW dispatch.FleetGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		repo:       repo,
		cache:      cache,
		dispatchGW: dispatchGW,
		bookingGW:  bookingGW,
		fleetGW:    fleetGW,
	}
}

// CreateDispatch creates a dispatch for a booking. The booking must
// exist in the booking service before anything is persisted, and a
// booking can hold at most one active dispatch.
func (uc *DispatchUC) CreateDispatch(ctx context.Context, req models.CreateDispatchRequest) (*models.Dispatch, error) {
	if req.BookingID <= 0 {
		return nil, models.ValidationError{Field: "booking_id", Msg: "must be a positive integer"}
	}

	if _, err := uc.bookingGW.GetBooking(ctx, req.BookingID); err != nil {
		return nil, err
	}

	if req.DriverID != nil {
		if _, err := uc.fleetGW.GetDriver(ctx, *req.DriverID); err != nil {
			return nil, err
		}
	}

	existing, err := uc.repo.GetDispatchByBookingID(ctx, req.BookingID)
	if err != nil && !errors.Is(err, models.ErrDispatchNotFound) {
		return nil, fmt.Errorf("failed to check existing dispatch: %w", err)
	}
	if existing != nil && !existing.Status.IsTerminal() {
		return nil, models.ValidationError{Field: "booking_id", Msg: "booking already has an active dispatch"}
	}

	now := time.Now()
	created := &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  req.BookingID,
		DriverID:   req.DriverID,
		Status:     models.DispatchStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.repo.CreateDispatch(ctx, created); err != nil {
		return nil, err
	}

	if err := uc.dispatchGW.PublishDispatchCreated(ctx, created); err != nil {
		// The row is persisted; event consumers catch up on the next
		// status change.
		logger.Warn("failed to publish dispatch created event",
			logger.String("dispatch_id", created.DispatchID.String()),
			logger.Err(err))
	}

	logger.Info("dispatch created",
		logger.String("dispatch_id", created.DispatchID.String()),
		logger.Int64("booking_id", created.BookingID))

	return created, nil
}

// GetDispatch retrieves a dispatch by ID
func (uc *DispatchUC) GetDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error) {
	return uc.repo.GetDispatch(ctx, dispatchID)
}

// GetDispatchByBookingID retrieves the dispatch attached to a booking
func (uc *DispatchUC) GetDispatchByBookingID(ctx context.Context, bookingID int64) (*models.Dispatch, error) {
	return uc.repo.GetDispatchByBookingID(ctx, bookingID)
}

// ListDispatchesByStatus lists dispatches in a given status
func (uc *DispatchUC) ListDispatchesByStatus(ctx context.Context, status models.DispatchStatus, offset, limit int) ([]*models.Dispatch, error) {
	offset, limit = uc.clampPage(offset, limit)
	return uc.repo.ListByStatus(ctx, status, offset, limit)
}

// ListDispatchesByDriver lists dispatches assigned to a driver
func (uc *DispatchUC) ListDispatchesByDriver(ctx context.Context, driverID int64, offset, limit int) ([]*models.Dispatch, error) {
	offset, limit = uc.clampPage(offset, limit)
	return uc.repo.ListByDriver(ctx, driverID, offset, limit)
}

// AllowedTransitions returns the statuses the dispatch may move to.
// Terminal dispatches return an empty set.
func (uc *DispatchUC) AllowedTransitions(ctx context.Context, dispatchID string) ([]models.DispatchStatus, error) {
	current, err := uc.repo.GetDispatch(ctx, dispatchID)
	if err != nil {
		return nil, err
	}
	return current.Status.AllowedTransitions(), nil
}

// UpdateDispatchStatus transitions a dispatch to a new status. The
// current row is re-fetched and validated against, then persisted with
// a compare-and-set on the fetched status, so a concurrent transition
// surfaces as models.ErrStaleDispatch instead of a silent overwrite.
func (uc *DispatchUC) UpdateDispatchStatus(ctx context.Context, req models.UpdateDispatchStatusRequest) (*models.Dispatch, error) {
	target, err := models.ParseDispatchStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := uc.repo.GetDispatch(ctx, req.DispatchID)
	if err != nil {
		return nil, err
	}

	updated, err := models.ApplyTransition(*current, target, time.Now(), models.TransitionTimes{
		DispatchTime: req.DispatchTime,
		ArrivalTime:  req.ArrivalTime,
	})
	if err != nil {
		return nil, err
	}

	return uc.persistTransition(ctx, &updated, current.Status)
}

// CancelDispatch cancels a dispatch from any non-terminal status
func (uc *DispatchUC) CancelDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error) {
	current, err := uc.repo.GetDispatch(ctx, dispatchID)
	if err != nil {
		return nil, err
	}

	cancelled, err := models.Cancel(*current, time.Now())
	if err != nil {
		return nil, err
	}

	return uc.persistTransition(ctx, &cancelled, current.Status)
}

// GetDispatchWithDetails assembles the dispatch detail view from the
// dispatch row, its booking and its driver, serving from cache when a
// fresh entry exists.
func (uc *DispatchUC) GetDispatchWithDetails(ctx context.Context, dispatchID string) (*models.DispatchWithDetails, error) {
	if cached, err := uc.cache.GetView(ctx, dispatchID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Warn("dispatch view cache read failed",
			logger.String("dispatch_id", dispatchID),
			logger.Err(err))
	}

	d, err := uc.repo.GetDispatch(ctx, dispatchID)
	if err != nil {
		return nil, err
	}

	booking, err := uc.bookingGW.GetBooking(ctx, d.BookingID)
	if err != nil {
		return nil, err
	}

	if d.DriverID == nil {
		return nil, models.ErrIncompleteJoin
	}
	driver, err := uc.fleetGW.GetDriver(ctx, *d.DriverID)
	if err != nil {
		return nil, err
	}

	view, err := models.AssembleDispatchView(d, booking, driver)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetView(ctx, view); err != nil {
		logger.Warn("dispatch view cache write failed",
			logger.String("dispatch_id", dispatchID),
			logger.Err(err))
	}

	return view, nil
}

// CancelActiveDispatchForBooking cancels the booking's dispatch if one
// exists and is still active. Invoked by the booking.cancelled event
// consumer; a missing or already-terminal dispatch is a no-op.
func (uc *DispatchUC) CancelActiveDispatchForBooking(ctx context.Context, bookingID int64) error {
	d, err := uc.repo.GetDispatchByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, models.ErrDispatchNotFound) {
			return nil
		}
		return err
	}
	if d.Status.IsTerminal() {
		return nil
	}

	if _, err := uc.CancelDispatch(ctx, d.DispatchID.String()); err != nil {
		// Raced with another canceller or a concurrent transition into a
		// terminal state; the booking's dispatch is already settled.
		if errors.Is(err, models.ErrStaleDispatch) || errors.Is(err, models.ErrDispatchTerminal) {
			return nil
		}
		return err
	}

	logger.Info("dispatch cancelled after booking cancellation",
		logger.String("dispatch_id", d.DispatchID.String()),
		logger.Int64("booking_id", bookingID))

	return nil
}

func (uc *DispatchUC) persistTransition(ctx context.Context, updated *models.Dispatch, from models.DispatchStatus) (*models.Dispatch, error) {
	if err := uc.repo.UpdateStatus(ctx, updated, from); err != nil {
		return nil, err
	}

	if err := uc.cache.InvalidateView(ctx, updated.DispatchID.String()); err != nil {
		logger.Warn("dispatch view invalidation failed",
			logger.String("dispatch_id", updated.DispatchID.String()),
			logger.Err(err))
	}

	if err := uc.dispatchGW.PublishStatusChanged(ctx, updated, from); err != nil {
		logger.Warn("failed to publish status change event",
			logger.String("dispatch_id", updated.DispatchID.String()),
			logger.String("status", string(updated.Status)),
			logger.Err(err))
	}

	logger.Info("dispatch status updated",
		logger.String("dispatch_id", updated.DispatchID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(updated.Status)))

	return updated, nil
}

func (uc *DispatchUC) clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = uc.cfg.Dispatch.DefaultPageSize
	}
	if limit > uc.cfg.Dispatch.MaxPageSize {
		limit = uc.cfg.Dispatch.MaxPageSize
	}
	return offset, limit
}
