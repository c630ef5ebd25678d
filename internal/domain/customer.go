package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a corporate client scoped to an organization. CNPJ is unique
// within the organization.
type Customer struct {
	ID             int64     `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	CNPJ           string    `json:"cnpj"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}
