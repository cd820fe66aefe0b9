package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// DispatchRepo provides dispatch data access over PostgreSQL
type DispatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(cfg *models.Config, db *sqlx.DB) *DispatchRepo {
	return &DispatchRepo{
		cfg: cfg,
		db:  db,
	}
}

const dispatchColumns = `dispatch_id, booking_id, driver_id, status, dispatch_time, arrival_time, created_at, updated_at`

// CreateDispatch inserts a new dispatch row
func (r *DispatchRepo) CreateDispatch(ctx context.Context, dispatch *models.Dispatch) error {
	query := `
		INSERT INTO dispatches (
			dispatch_id, booking_id, driver_id, status,
			dispatch_time, arrival_time, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		dispatch.DispatchID,
		dispatch.BookingID,
		nullInt64(dispatch.DriverID),
		dispatch.Status,
		nullTime(dispatch.DispatchTime),
		nullTime(dispatch.ArrivalTime),
		dispatch.CreatedAt,
		dispatch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dispatch: %w", err)
	}

	return nil
}

// GetDispatch retrieves a dispatch by ID
func (r *DispatchRepo) GetDispatch(ctx context.Context, dispatchID string) (*models.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE dispatch_id = $1`

	row := r.db.QueryRowContext(ctx, query, dispatchID)
	return scanDispatch(row)
}

// GetDispatchByBookingID retrieves the dispatch for a booking. The
// booking-dispatch relationship is one-to-one.
func (r *DispatchRepo) GetDispatchByBookingID(ctx context.Context, bookingID int64) (*models.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE booking_id = $1 ORDER BY created_at DESC LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, bookingID)
	return scanDispatch(row)
}

// ListByStatus retrieves dispatches in the given status, newest first
func (r *DispatchRepo) ListByStatus(ctx context.Context, status models.DispatchStatus, offset, limit int) ([]*models.Dispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE status = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, status, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches by status: %w", err)
	}
	defer rows.Close()

	return scanDispatches(rows)
}

// ListByDriver retrieves dispatches assigned to a driver, newest first
func (r *DispatchRepo) ListByDriver(ctx context.Context, driverID int64, offset, limit int) ([]*models.Dispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE driver_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, driverID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches by driver: %w", err)
	}
	defer rows.Close()

	return scanDispatches(rows)
}

// UpdateStatus persists a transition with a compare-and-set on the
// status read by the caller. Zero rows affected means the row moved
// underneath us or does not exist.
func (r *DispatchRepo) UpdateStatus(ctx context.Context, dispatch *models.Dispatch, from models.DispatchStatus) error {
	query := `
		UPDATE dispatches
		SET status = $1, dispatch_time = $2, arrival_time = $3, updated_at = $4
		WHERE dispatch_id = $5 AND status = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		dispatch.Status,
		nullTime(dispatch.DispatchTime),
		nullTime(dispatch.ArrivalTime),
		dispatch.UpdatedAt,
		dispatch.DispatchID,
		from,
	)
	if err != nil {
		return fmt.Errorf("failed to update dispatch status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrStaleDispatch
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDispatch(row rowScanner) (*models.Dispatch, error) {
	dispatch := &models.Dispatch{}
	var driverID sql.NullInt64
	var dispatchTime, arrivalTime sql.NullTime

	err := row.Scan(
		&dispatch.DispatchID,
		&dispatch.BookingID,
		&driverID,
		&dispatch.Status,
		&dispatchTime,
		&arrivalTime,
		&dispatch.CreatedAt,
		&dispatch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDispatchNotFound
		}
		return nil, err
	}

	if driverID.Valid {
		dispatch.DriverID = &driverID.Int64
	}
	if dispatchTime.Valid {
		dispatch.DispatchTime = &dispatchTime.Time
	}
	if arrivalTime.Valid {
		dispatch.ArrivalTime = &arrivalTime.Time
	}

	return dispatch, nil
}

func scanDispatches(rows *sql.Rows) ([]*models.Dispatch, error) {
	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dispatches, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
