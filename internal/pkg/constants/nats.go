package constants

// NATS Subjects
const (
	// Dispatch events
	SubjectDispatchCreated       = "dispatch.created"
	SubjectDispatchStatusChanged = "dispatch.status_changed"
	SubjectDispatchCompleted     = "dispatch.completed"
	SubjectDispatchCancelled     = "dispatch.cancelled"

	// Booking service events consumed by this service
	SubjectBookingCancelled = "booking.cancelled"
)

// Queue groups
const (
	QueueGroupDispatch = "dispatch-service"
)
