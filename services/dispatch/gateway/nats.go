package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fleetyard/dispatch/internal/pkg/constants"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	natspkg "github.com/fleetyard/dispatch/internal/pkg/nats"
)

// DispatchGW publishes dispatch lifecycle events to NATS
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client) *DispatchGW {
	return &DispatchGW{natsClient: natsClient}
}

// PublishDispatchCreated publishes a dispatch.created event
func (g *DispatchGW) PublishDispatchCreated(ctx context.Context, dispatch *models.Dispatch) error {
	event := eventFromDispatch(dispatch, "")
	return g.publish(constants.SubjectDispatchCreated, event)
}

// PublishStatusChanged publishes a dispatch.status_changed event. When
// the dispatch reached a terminal status the event is also published on
// the dedicated completed or cancelled subject so consumers that only
// care about outcomes do not have to filter the full stream.
func (g *DispatchGW) PublishStatusChanged(ctx context.Context, dispatch *models.Dispatch, previous models.DispatchStatus) error {
	event := eventFromDispatch(dispatch, previous)

	if err := g.publish(constants.SubjectDispatchStatusChanged, event); err != nil {
		return err
	}

	switch dispatch.Status {
	case models.DispatchStatusCompleted:
		return g.publish(constants.SubjectDispatchCompleted, event)
	case models.DispatchStatusCancelled:
		return g.publish(constants.SubjectDispatchCancelled, event)
	}

	return nil
}

func (g *DispatchGW) publish(subject string, event models.DispatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

func eventFromDispatch(dispatch *models.Dispatch, previous models.DispatchStatus) models.DispatchEvent {
	return models.DispatchEvent{
		DispatchID:     dispatch.DispatchID.String(),
		BookingID:      dispatch.BookingID,
		DriverID:       dispatch.DriverID,
		Status:         dispatch.Status,
		PreviousStatus: previous,
		DispatchTime:   dispatch.DispatchTime,
		ArrivalTime:    dispatch.ArrivalTime,
		OccurredAt:     time.Now(),
	}
}
