package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet vehicle scoped to an organization. Plate is unique
// within the organization. DriverID is set when the vehicle belongs to an
// affiliated driver and zero for standalone fleet vehicles.
type Vehicle struct {
	ID             int64     `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Plate          string    `json:"plate"`
	VehicleClass   string    `json:"vehicle_class"`
	DriverID       int64     `json:"driver_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
