package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fleetyard/dispatch/internal/pkg/constants"
	"github.com/fleetyard/dispatch/internal/pkg/logger"
	"github.com/fleetyard/dispatch/internal/pkg/models"
	natspkg "github.com/fleetyard/dispatch/internal/pkg/nats"
	"github.com/fleetyard/dispatch/services/dispatch"
)

// BookingConsumer reacts to booking service events. When a booking is
// cancelled upstream, its active dispatch is cancelled here; booking
// state itself is never written by this service.
type BookingConsumer struct {
	natsClient *natspkg.Client
	dispatchUC dispatch.DispatchUC
}

// NewBookingConsumer creates a new booking event consumer
func NewBookingConsumer(natsClient *natspkg.Client, dispatchUC dispatch.DispatchUC) *BookingConsumer {
	return &BookingConsumer{
		natsClient: natsClient,
		dispatchUC: dispatchUC,
	}
}

// Start subscribes to booking events as part of the dispatch queue
// group so each event is handled by exactly one instance.
func (c *BookingConsumer) Start() error {
	_, err := c.natsClient.QueueSubscribe(
		constants.SubjectBookingCancelled,
		constants.QueueGroupDispatch,
		c.handleBookingCancelled,
	)
	return err
}

func (c *BookingConsumer) handleBookingCancelled(msg *nats.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to parse booking cancelled event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.dispatchUC.CancelActiveDispatchForBooking(ctx, event.BookingID); err != nil {
		logger.Error("failed to cancel dispatch for cancelled booking",
			logger.Int64("booking_id", event.BookingID),
			logger.Err(err))
		return
	}

	logger.Debug("booking cancelled event processed",
		logger.Int64("booking_id", event.BookingID))
}
