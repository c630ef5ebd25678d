package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant in the system. Every driver, customer,
// vehicle and address record belongs to exactly one organization.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrganization creates a new organization.
func NewOrganization(name string) Organization {
	now := time.Now()
	return Organization{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
