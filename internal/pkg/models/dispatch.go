package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus represents the lifecycle status of a dispatch.
// The string values are the wire tokens used by the dashboard and
// peer services; they must not change.
type DispatchStatus string

const (
	DispatchStatusPending    DispatchStatus = "pending"
	DispatchStatusDispatched DispatchStatus = "dispatched"
	DispatchStatusInTransit  DispatchStatus = "in_transit"
	DispatchStatusArrived    DispatchStatus = "arrived"
	DispatchStatusCompleted  DispatchStatus = "completed"
	DispatchStatusCancelled  DispatchStatus = "cancelled"
)

// statusTransitions is the single source of truth for legal status
// moves. Every view and every mutation path derives from this table.
var statusTransitions = map[DispatchStatus][]DispatchStatus{
	DispatchStatusPending:    {DispatchStatusDispatched, DispatchStatusCancelled},
	DispatchStatusDispatched: {DispatchStatusInTransit, DispatchStatusCancelled},
	DispatchStatusInTransit:  {DispatchStatusArrived, DispatchStatusCancelled},
	DispatchStatusArrived:    {DispatchStatusCompleted, DispatchStatusCancelled},
	DispatchStatusCompleted:  {},
	DispatchStatusCancelled:  {},
}

// ParseDispatchStatus validates a raw status token from a request or
// query parameter into the closed enum.
func ParseDispatchStatus(raw string) (DispatchStatus, error) {
	s := DispatchStatus(raw)
	if _, ok := statusTransitions[s]; !ok {
		return "", ValidationError{Field: "status", Msg: "unknown status " + raw}
	}
	return s, nil
}

// AllowedTransitions returns the set of statuses reachable from s.
// Terminal states return an empty slice.
func (s DispatchStatus) AllowedTransitions() []DispatchStatus {
	next := statusTransitions[s]
	out := make([]DispatchStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a legal next status from s.
func (s DispatchStatus) CanTransitionTo(target DispatchStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchStatusCompleted || s == DispatchStatusCancelled
}

// Dispatch is the operational assignment and execution record for a
// single booking. DispatchTime and ArrivalTime stay nil until the
// dispatch first enters the corresponding status.
type Dispatch struct {
	DispatchID   uuid.UUID      `json:"dispatch_id" db:"dispatch_id"`
	BookingID    int64          `json:"booking_id" db:"booking_id"`
	DriverID     *int64         `json:"driver_id" db:"driver_id"`
	Status       DispatchStatus `json:"status" db:"status"`
	DispatchTime *time.Time     `json:"dispatch_time" db:"dispatch_time"`
	ArrivalTime  *time.Time     `json:"arrival_time" db:"arrival_time"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// TransitionTimes carries caller-supplied timestamps for a transition,
// used when the dashboard backdates a status change. A nil field means
// "use the transition time".
type TransitionTimes struct {
	DispatchTime *time.Time `json:"dispatch_time"`
	ArrivalTime  *time.Time `json:"arrival_time"`
}

// ApplyTransition validates target against the transition table and
// returns a copy of d with the new status and any timestamp side
// effects applied. It performs no I/O.
//
// Terminal states are rejected with ErrDispatchTerminal before the
// table lookup so callers can surface a distinct message. DispatchTime
// is set exactly once, on the first transition into dispatched;
// ArrivalTime likewise on the first transition into arrived. A
// timestamp that is already set is never overwritten.
func ApplyTransition(d Dispatch, target DispatchStatus, at time.Time, explicit TransitionTimes) (Dispatch, error) {
	if d.Status.IsTerminal() {
		return Dispatch{}, ErrDispatchTerminal
	}
	if !d.Status.CanTransitionTo(target) {
		return Dispatch{}, ErrInvalidTransition
	}

	updated := d
	updated.Status = target
	updated.UpdatedAt = at

	if target == DispatchStatusDispatched && updated.DispatchTime == nil {
		ts := at
		if explicit.DispatchTime != nil {
			ts = *explicit.DispatchTime
		}
		updated.DispatchTime = &ts
	}
	if target == DispatchStatusArrived && updated.ArrivalTime == nil {
		ts := at
		if explicit.ArrivalTime != nil {
			ts = *explicit.ArrivalTime
		}
		updated.ArrivalTime = &ts
	}

	return updated, nil
}

// Cancel transitions d to cancelled. Cancellation is offered from every
// non-terminal state, so it gets its own entry point.
func Cancel(d Dispatch, at time.Time) (Dispatch, error) {
	return ApplyTransition(d, DispatchStatusCancelled, at, TransitionTimes{})
}

// DispatchWithDetails is the read model joining a dispatch with its
// booking and driver for the detail views.
type DispatchWithDetails struct {
	Dispatch Dispatch `json:"dispatch"`
	Booking  Booking  `json:"booking"`
	Driver   Driver   `json:"driver"`
}

// AssembleDispatchView joins the three already-fetched entities into a
// single read model. The detail view needs all three to render, so a
// missing input fails with ErrIncompleteJoin.
func AssembleDispatchView(d *Dispatch, b *Booking, drv *Driver) (*DispatchWithDetails, error) {
	if d == nil || b == nil || drv == nil {
		return nil, ErrIncompleteJoin
	}
	return &DispatchWithDetails{
		Dispatch: *d,
		Booking:  *b,
		Driver:   *drv,
	}, nil
}

// CreateDispatchRequest is the payload for creating a dispatch.
// DriverID is optional; assignment may happen after creation.
type CreateDispatchRequest struct {
	BookingID int64  `json:"booking_id"`
	DriverID  *int64 `json:"driver_id"`
}

// UpdateDispatchStatusRequest is the payload for a status transition.
type UpdateDispatchStatusRequest struct {
	DispatchID   string     `json:"-"`
	Status       string     `json:"status"`
	DispatchTime *time.Time `json:"dispatch_time"`
	ArrivalTime  *time.Time `json:"arrival_time"`
}

// DispatchEvent is the payload published to NATS on lifecycle changes.
type DispatchEvent struct {
	DispatchID     string         `json:"dispatch_id"`
	BookingID      int64          `json:"booking_id"`
	DriverID       *int64         `json:"driver_id"`
	Status         DispatchStatus `json:"status"`
	PreviousStatus DispatchStatus `json:"previous_status,omitempty"`
	DispatchTime   *time.Time     `json:"dispatch_time"`
	ArrivalTime    *time.Time     `json:"arrival_time"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// BookingCancelledEvent is consumed from the booking service when a
// booking is cancelled upstream.
type BookingCancelledEvent struct {
	BookingID   int64     `json:"booking_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}
