package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []DispatchStatus{
	DispatchStatusPending,
	DispatchStatusDispatched,
	DispatchStatusInTransit,
	DispatchStatusArrived,
	DispatchStatusCompleted,
	DispatchStatusCancelled,
}

func newTestDispatch(status DispatchStatus) Dispatch {
	driverID := int64(42)
	return Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		DriverID:   &driverID,
		Status:     status,
		CreatedAt:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestParseDispatchStatus(t *testing.T) {
	for _, s := range allStatuses {
		parsed, err := ParseDispatchStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, raw := range []string{"", "Pending", "in transit", "IN_TRANSIT", "done", "canceled"} {
		_, err := ParseDispatchStatus(raw)
		assert.Error(t, err, "token %q should be rejected", raw)
		assert.True(t, IsValidation(err))
	}
}

func TestAllowedTransitions(t *testing.T) {
	expected := map[DispatchStatus][]DispatchStatus{
		DispatchStatusPending:    {DispatchStatusDispatched, DispatchStatusCancelled},
		DispatchStatusDispatched: {DispatchStatusInTransit, DispatchStatusCancelled},
		DispatchStatusInTransit:  {DispatchStatusArrived, DispatchStatusCancelled},
		DispatchStatusArrived:    {DispatchStatusCompleted, DispatchStatusCancelled},
		DispatchStatusCompleted:  {},
		DispatchStatusCancelled:  {},
	}

	for status, want := range expected {
		assert.Equal(t, want, status.AllowedTransitions(), "from %s", status)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, DispatchStatusCompleted.IsTerminal())
	assert.True(t, DispatchStatusCancelled.IsTerminal())
	for _, s := range []DispatchStatus{DispatchStatusPending, DispatchStatusDispatched, DispatchStatusInTransit, DispatchStatusArrived} {
		assert.False(t, s.IsTerminal(), "%s", s)
	}
}

// ApplyTransition must succeed exactly when the transition table allows
// the move, across the full source-target cross product.
func TestApplyTransitionCrossProduct(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			d := newTestDispatch(from)
			updated, err := ApplyTransition(d, to, now, TransitionTimes{})

			switch {
			case from.IsTerminal():
				assert.ErrorIs(t, err, ErrDispatchTerminal, "%s -> %s", from, to)
			case from.CanTransitionTo(to):
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, updated.Status)
				assert.Equal(t, now, updated.UpdatedAt)
			default:
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestApplyTransitionDoesNotMutateInput(t *testing.T) {
	d := newTestDispatch(DispatchStatusPending)
	_, err := ApplyTransition(d, DispatchStatusDispatched, time.Now(), TransitionTimes{})
	require.NoError(t, err)

	assert.Equal(t, DispatchStatusPending, d.Status)
	assert.Nil(t, d.DispatchTime)
}

func TestApplyTransitionSetsDispatchTimeOnce(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	d := newTestDispatch(DispatchStatusPending)
	dispatched, err := ApplyTransition(d, DispatchStatusDispatched, now, TransitionTimes{})
	require.NoError(t, err)
	require.NotNil(t, dispatched.DispatchTime)
	assert.Equal(t, now, *dispatched.DispatchTime)
	assert.Nil(t, dispatched.ArrivalTime)

	// Later transitions leave the already-set timestamp alone.
	later := now.Add(time.Hour)
	inTransit, err := ApplyTransition(dispatched, DispatchStatusInTransit, later, TransitionTimes{})
	require.NoError(t, err)
	assert.Equal(t, now, *inTransit.DispatchTime)
}

func TestApplyTransitionSetsArrivalTimeOnce(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	d := newTestDispatch(DispatchStatusInTransit)
	dt := now.Add(-time.Hour)
	d.DispatchTime = &dt

	arrived, err := ApplyTransition(d, DispatchStatusArrived, now, TransitionTimes{})
	require.NoError(t, err)
	require.NotNil(t, arrived.ArrivalTime)
	assert.Equal(t, now, *arrived.ArrivalTime)
	assert.Equal(t, dt, *arrived.DispatchTime)
}

func TestApplyTransitionExplicitTimestampWins(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	backdated := now.Add(-30 * time.Minute)

	d := newTestDispatch(DispatchStatusPending)
	dispatched, err := ApplyTransition(d, DispatchStatusDispatched, now, TransitionTimes{DispatchTime: &backdated})
	require.NoError(t, err)
	assert.Equal(t, backdated, *dispatched.DispatchTime)

	// An explicit value never overwrites an already-set timestamp.
	other := now.Add(time.Hour)
	inTransit, err := ApplyTransition(dispatched, DispatchStatusInTransit, now, TransitionTimes{DispatchTime: &other})
	require.NoError(t, err)
	assert.Equal(t, backdated, *inTransit.DispatchTime)
}

// Retrying an already-applied transition is rejected, never
// double-applied.
func TestApplyTransitionRetryRejected(t *testing.T) {
	now := time.Now()

	d := newTestDispatch(DispatchStatusPending)
	dispatched, err := ApplyTransition(d, DispatchStatusDispatched, now, TransitionTimes{})
	require.NoError(t, err)

	_, err = ApplyTransition(dispatched, DispatchStatusDispatched, now, TransitionTimes{})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	completed, err := ApplyTransition(newTestDispatch(DispatchStatusArrived), DispatchStatusCompleted, now, TransitionTimes{})
	require.NoError(t, err)
	_, err = ApplyTransition(completed, DispatchStatusCompleted, now, TransitionTimes{})
	assert.ErrorIs(t, err, ErrDispatchTerminal)
}

func TestCancel(t *testing.T) {
	now := time.Now()

	for _, from := range []DispatchStatus{DispatchStatusPending, DispatchStatusDispatched, DispatchStatusInTransit, DispatchStatusArrived} {
		cancelled, err := Cancel(newTestDispatch(from), now)
		require.NoError(t, err, "from %s", from)
		assert.Equal(t, DispatchStatusCancelled, cancelled.Status)
	}

	_, err := Cancel(newTestDispatch(DispatchStatusCompleted), now)
	assert.ErrorIs(t, err, ErrDispatchTerminal)
	_, err = Cancel(newTestDispatch(DispatchStatusCancelled), now)
	assert.ErrorIs(t, err, ErrDispatchTerminal)
}

func TestCancelPreservesTimestamps(t *testing.T) {
	now := time.Now()
	d := newTestDispatch(DispatchStatusInTransit)
	dt := now.Add(-time.Hour)
	d.DispatchTime = &dt

	cancelled, err := Cancel(d, now)
	require.NoError(t, err)
	assert.Equal(t, dt, *cancelled.DispatchTime)
	assert.Nil(t, cancelled.ArrivalTime)
}

func TestAssembleDispatchView(t *testing.T) {
	d := newTestDispatch(DispatchStatusDispatched)
	booking := &Booking{BookingID: d.BookingID, Source: "Tanjung Priok", Destination: "Cikarang"}
	driver := &Driver{EmployeeID: 42, Name: "Asep"}

	view, err := AssembleDispatchView(&d, booking, driver)
	require.NoError(t, err)
	assert.Equal(t, d.DispatchID, view.Dispatch.DispatchID)
	assert.Equal(t, booking.BookingID, view.Booking.BookingID)
	assert.Equal(t, driver.EmployeeID, view.Driver.EmployeeID)

	cases := []struct {
		name    string
		d       *Dispatch
		booking *Booking
		driver  *Driver
	}{
		{"missing dispatch", nil, booking, driver},
		{"missing booking", &d, nil, driver},
		{"missing driver", &d, booking, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AssembleDispatchView(tc.d, tc.booking, tc.driver)
			assert.ErrorIs(t, err, ErrIncompleteJoin)
		})
	}
}
