package models

import "time"

// Driver is the fleet service's view of a driver, joined into dispatch
// detail views for display. The dispatch service never mutates it.
type Driver struct {
	EmployeeID    int64      `json:"employee_id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	IsAvailable   bool       `json:"is_available"`
	TotalTrips    int        `json:"total_trips"`
	LicenseNumber string     `json:"license_number"`
	LicenseExpiry *time.Time `json:"license_expiry"`
}
