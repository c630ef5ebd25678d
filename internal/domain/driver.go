package domain

import (
	"time"

	"github.com/google/uuid"
)

// DriverRole distinguishes company drivers from affiliated ones. Affiliated
// drivers own their vehicle, so importing one also registers the vehicle.
type DriverRole string

const (
	RoleDriver     DriverRole = "Driver"
	RoleAffiliated DriverRole = "Affiliated"
)

// DriverStatusActive is the fixed status assigned to every imported driver.
const DriverStatusActive = "active"

// Driver is a registered driver scoped to an organization. CPF is unique
// within the organization.
type Driver struct {
	ID             int64      `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	CPF            string     `json:"cpf"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	BirthDate      string     `json:"birth_date"`
	Gender         string     `json:"gender"`
	Role           DriverRole `json:"role"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}
