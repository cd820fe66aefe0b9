package models

import "time"

// ServiceType classifies a booking's transport service.
type ServiceType string

const (
	ServiceTypeCargo     ServiceType = "cargo"
	ServiceTypePassenger ServiceType = "passenger"
	ServiceTypePublic    ServiceType = "public"
)

// BookingStatus represents the booking lifecycle owned by the booking
// service. The dispatch service only reads it.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking is the customer's transport request, fetched from the
// booking service for validation and detail views.
type Booking struct {
	BookingID     int64         `json:"booking_id"`
	Source        string        `json:"source"`
	Destination   string        `json:"destination"`
	ServiceType   ServiceType   `json:"service_type"`
	Price         float64       `json:"price"`
	TruckID       *int64        `json:"truck_id"`
	UserID        int64         `json:"user_id"`
	BookingStatus BookingStatus `json:"booking_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
