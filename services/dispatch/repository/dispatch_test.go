package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*DispatchRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewDispatchRepository(&models.Config{}, db), mock
}

func dispatchRows(d *models.Dispatch) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"dispatch_id", "booking_id", "driver_id", "status",
		"dispatch_time", "arrival_time", "created_at", "updated_at",
	})
	var driverID driver.Value
	if d.DriverID != nil {
		driverID = *d.DriverID
	}
	var dispatchTime, arrivalTime driver.Value
	if d.DispatchTime != nil {
		dispatchTime = *d.DispatchTime
	}
	if d.ArrivalTime != nil {
		arrivalTime = *d.ArrivalTime
	}
	rows.AddRow(d.DispatchID.String(), d.BookingID, driverID, string(d.Status), dispatchTime, arrivalTime, d.CreatedAt, d.UpdatedAt)
	return rows
}

func TestCreateDispatch(t *testing.T) {
	repo, mock := newTestRepo(t)
	driverID := int64(42)
	now := time.Now()

	d := &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		DriverID:   &driverID,
		Status:     models.DispatchStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dispatches")).
		WithArgs(d.DispatchID, d.BookingID, sqlmock.AnyArg(), d.Status, sqlmock.AnyArg(), sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDispatch(context.Background(), d)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDispatch(t *testing.T) {
	repo, mock := newTestRepo(t)
	driverID := int64(42)
	now := time.Now()
	dt := now.Add(-time.Hour)

	want := &models.Dispatch{
		DispatchID:   uuid.New(),
		BookingID:    7,
		DriverID:     &driverID,
		Status:       models.DispatchStatusInTransit,
		DispatchTime: &dt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT dispatch_id, booking_id, driver_id, status, dispatch_time, arrival_time, created_at, updated_at FROM dispatches WHERE dispatch_id = $1")).
		WithArgs(want.DispatchID.String()).
		WillReturnRows(dispatchRows(want))

	got, err := repo.GetDispatch(context.Background(), want.DispatchID.String())
	require.NoError(t, err)
	assert.Equal(t, want.DispatchID, got.DispatchID)
	assert.Equal(t, want.Status, got.Status)
	require.NotNil(t, got.DriverID)
	assert.Equal(t, driverID, *got.DriverID)
	require.NotNil(t, got.DispatchTime)
	assert.WithinDuration(t, dt, *got.DispatchTime, time.Second)
	assert.Nil(t, got.ArrivalTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDispatchNullableColumns(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	want := &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		Status:     models.DispatchStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery("SELECT (.+) FROM dispatches WHERE dispatch_id").
		WithArgs(want.DispatchID.String()).
		WillReturnRows(dispatchRows(want))

	got, err := repo.GetDispatch(context.Background(), want.DispatchID.String())
	require.NoError(t, err)
	assert.Nil(t, got.DriverID)
	assert.Nil(t, got.DispatchTime)
	assert.Nil(t, got.ArrivalTime)
}

func TestGetDispatchNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT (.+) FROM dispatches WHERE dispatch_id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"dispatch_id", "booking_id", "driver_id", "status",
			"dispatch_time", "arrival_time", "created_at", "updated_at",
		}))

	_, err := repo.GetDispatch(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrDispatchNotFound)
}

func TestGetDispatchByBookingID(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	want := &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		Status:     models.DispatchStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery("SELECT (.+) FROM dispatches WHERE booking_id").
		WithArgs(int64(7)).
		WillReturnRows(dispatchRows(want))

	got, err := repo.GetDispatchByBookingID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want.DispatchID, got.DispatchID)
}

func TestListByStatus(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	first := &models.Dispatch{DispatchID: uuid.New(), BookingID: 7, Status: models.DispatchStatusPending, CreatedAt: now, UpdatedAt: now}
	second := &models.Dispatch{DispatchID: uuid.New(), BookingID: 8, Status: models.DispatchStatusPending, CreatedAt: now, UpdatedAt: now}

	rows := dispatchRows(first)
	rows.AddRow(second.DispatchID.String(), second.BookingID, nil, string(second.Status), nil, nil, second.CreatedAt, second.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM dispatches\\s+WHERE status").
		WithArgs(models.DispatchStatusPending, 0, 20).
		WillReturnRows(rows)

	got, err := repo.ListByStatus(context.Background(), models.DispatchStatusPending, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.DispatchID, got[0].DispatchID)
	assert.Equal(t, second.DispatchID, got[1].DispatchID)
}

func TestListByDriverEmpty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM dispatches\\s+WHERE driver_id").
		WithArgs(int64(42), 0, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"dispatch_id", "booking_id", "driver_id", "status",
			"dispatch_time", "arrival_time", "created_at", "updated_at",
		}))

	got, err := repo.ListByDriver(context.Background(), 42, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()
	dt := now

	d := &models.Dispatch{
		DispatchID:   uuid.New(),
		BookingID:    7,
		Status:       models.DispatchStatusDispatched,
		DispatchTime: &dt,
		UpdatedAt:    now,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE dispatches")).
		WithArgs(d.Status, sqlmock.AnyArg(), sqlmock.AnyArg(), d.UpdatedAt, d.DispatchID, models.DispatchStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), d, models.DispatchStatusPending)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Zero rows affected means the compare-and-set lost the race.
func TestUpdateStatusStale(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	d := &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		Status:     models.DispatchStatusCancelled,
		UpdatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE dispatches")).
		WithArgs(d.Status, sqlmock.AnyArg(), sqlmock.AnyArg(), d.UpdatedAt, d.DispatchID, models.DispatchStatusInTransit).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), d, models.DispatchStatusInTransit)
	assert.ErrorIs(t, err, models.ErrStaleDispatch)
}

func TestUpdateStatusQueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	d := &models.Dispatch{
		DispatchID: uuid.New(),
		Status:     models.DispatchStatusDispatched,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE dispatches")).
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateStatus(context.Background(), d, models.DispatchStatusPending)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrStaleDispatch)
}
