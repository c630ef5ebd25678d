package domain

import "github.com/google/uuid"

// State is global reference data: the 27 Brazilian federative units. States
// are pre-seeded and never created by application code.
type State struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// City belongs to a state. Natural key: (name, state_id) per organization.
type City struct {
	ID             int64     `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	StateID        int64     `json:"state_id"`
}

// Neighborhood belongs to a city. Natural key: (name, city_id).
type Neighborhood struct {
	ID             int64     `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	CityID         int64     `json:"city_id"`
}

// Street belongs to a neighborhood. Natural key: (name, postal_code,
// neighborhood_id). PostalCode may be empty and still participates in the
// key: two streets with the same name but different CEPs are distinct.
type Street struct {
	ID             int64     `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	PostalCode     string    `json:"postal_code"`
	NeighborhoodID int64     `json:"neighborhood_id"`
}

// DriverAddress links a driver to a resolved street.
type DriverAddress struct {
	ID         int64  `json:"id"`
	DriverID   int64  `json:"driver_id"`
	StreetID   int64  `json:"street_id"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
}
