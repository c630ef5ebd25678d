package repository

import (
	"context"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
)

// OrganizationRepository defines the interface for organization operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

// StateRepository looks up the pre-seeded state reference data. States are
// global, not tenant scoped, and are never created by application code.
type StateRepository interface {
	GetByCode(ctx context.Context, code string) (domain.State, error)
}

// CityRepository defines find-or-create operations for cities. Find and
// Create are separate calls with no enclosing transaction; callers must not
// run them concurrently for the same natural key.
type CityRepository interface {
	FindByNameAndState(ctx context.Context, organizationID uuid.UUID, name string, stateID int64) (domain.City, bool, error)
	Create(ctx context.Context, city domain.City) (domain.City, error)
}

// NeighborhoodRepository defines find-or-create operations for neighborhoods.
type NeighborhoodRepository interface {
	FindByNameAndCity(ctx context.Context, organizationID uuid.UUID, name string, cityID int64) (domain.Neighborhood, bool, error)
	Create(ctx context.Context, neighborhood domain.Neighborhood) (domain.Neighborhood, error)
}

// StreetRepository defines find-or-create operations for streets. The postal
// code participates in the natural key as given, including when blank.
type StreetRepository interface {
	FindByNaturalKey(ctx context.Context, organizationID uuid.UUID, name string, postalCode string, neighborhoodID int64) (domain.Street, bool, error)
	Create(ctx context.Context, street domain.Street) (domain.Street, error)
}

// DriverRepository defines driver persistence operations. Create returns a
// domain.DuplicateKeyError when the CPF is already registered for the
// organization.
type DriverRepository interface {
	Create(ctx context.Context, driver domain.Driver) (domain.Driver, error)
	GetByID(ctx context.Context, id int64) (domain.Driver, error)
	List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Driver, error)
}

// CustomerRepository defines customer persistence operations. Create returns
// a domain.DuplicateKeyError when the CNPJ is already registered.
type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Customer, error)
}

// VehicleRepository defines vehicle persistence operations. Create returns a
// domain.DuplicateKeyError when the plate is already registered.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)
	List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Vehicle, error)
}

// DriverAddressRepository links drivers to resolved streets.
type DriverAddressRepository interface {
	Create(ctx context.Context, address domain.DriverAddress) (domain.DriverAddress, error)
}

// ImportLogRepository stores row-level import failures for operator review.
type ImportLogRepository interface {
	Record(ctx context.Context, entry domain.ImportLogEntry) error
	List(ctx context.Context, organizationID uuid.UUID, kind domain.ImportKind, fileName string, limit int, offset int) ([]domain.ImportLogEntry, error)
}
