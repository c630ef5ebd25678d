package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/repository"

	"github.com/google/uuid"
)

// Resolver resolves free-text address fields into the persisted
// state > city > neighborhood > street chain, creating missing levels on the
// way down and returning the street id.
//
// Find and create are separate storage calls with no transaction or unique
// index backing them. Callers must resolve rows sequentially: two concurrent
// resolutions of the same new city would both observe "not found" and both
// create a record, breaking the natural-key invariant.
type Resolver struct {
	states        repository.StateRepository
	cities        repository.CityRepository
	neighborhoods repository.NeighborhoodRepository
	streets       repository.StreetRepository
}

// NewResolver creates a resolver over the address repositories.
func NewResolver(
	states repository.StateRepository,
	cities repository.CityRepository,
	neighborhoods repository.NeighborhoodRepository,
	streets repository.StreetRepository,
) *Resolver {
	return &Resolver{
		states:        states,
		cities:        cities,
		neighborhoods: neighborhoods,
		streets:       streets,
	}
}

// ResolveStreet resolves the full address chain and returns the street id.
// States are lookup-only reference data; an unrecognized state fails with a
// domain.NotFoundError naming the offending value. City, neighborhood and
// street are found or created level by level, each strictly after its
// parent.
func (r *Resolver) ResolveStreet(
	ctx context.Context,
	organizationID uuid.UUID,
	state string,
	city string,
	neighborhood string,
	street string,
	postalCode string,
) (int64, error) {
	city = strings.TrimSpace(city)
	neighborhood = strings.TrimSpace(neighborhood)
	street = strings.TrimSpace(street)
	postalCode = strings.TrimSpace(postalCode)

	if city == "" {
		return 0, &domain.DependencyError{Level: "street", Missing: "city"}
	}
	if street != "" && neighborhood == "" {
		return 0, &domain.DependencyError{Level: "street", Missing: "neighborhood"}
	}

	code, ok := NormalizeStateCode(state)
	if !ok {
		return 0, &domain.NotFoundError{Kind: "state", Value: strings.TrimSpace(state)}
	}

	stateRecord, err := r.states.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	cityID, err := r.resolveCity(ctx, organizationID, city, stateRecord.ID)
	if err != nil {
		return 0, err
	}

	neighborhoodID, err := r.resolveNeighborhood(ctx, organizationID, neighborhood, cityID)
	if err != nil {
		return 0, err
	}

	return r.resolveStreet(ctx, organizationID, street, postalCode, neighborhoodID)
}

func (r *Resolver) resolveCity(ctx context.Context, organizationID uuid.UUID, name string, stateID int64) (int64, error) {
	existing, found, err := r.cities.FindByNameAndState(ctx, organizationID, name, stateID)
	if err != nil {
		return 0, fmt.Errorf("look up city %q: %w", name, err)
	}
	if found {
		return existing.ID, nil
	}

	created, err := r.cities.Create(ctx, domain.City{
		OrganizationID: organizationID,
		Name:           name,
		StateID:        stateID,
	})
	if err != nil {
		return 0, fmt.Errorf("create city %q: %w", name, err)
	}
	return created.ID, nil
}

func (r *Resolver) resolveNeighborhood(ctx context.Context, organizationID uuid.UUID, name string, cityID int64) (int64, error) {
	existing, found, err := r.neighborhoods.FindByNameAndCity(ctx, organizationID, name, cityID)
	if err != nil {
		return 0, fmt.Errorf("look up neighborhood %q: %w", name, err)
	}
	if found {
		return existing.ID, nil
	}

	created, err := r.neighborhoods.Create(ctx, domain.Neighborhood{
		OrganizationID: organizationID,
		Name:           name,
		CityID:         cityID,
	})
	if err != nil {
		return 0, fmt.Errorf("create neighborhood %q: %w", name, err)
	}
	return created.ID, nil
}

func (r *Resolver) resolveStreet(ctx context.Context, organizationID uuid.UUID, name string, postalCode string, neighborhoodID int64) (int64, error) {
	existing, found, err := r.streets.FindByNaturalKey(ctx, organizationID, name, postalCode, neighborhoodID)
	if err != nil {
		return 0, fmt.Errorf("look up street %q: %w", name, err)
	}
	if found {
		return existing.ID, nil
	}

	created, err := r.streets.Create(ctx, domain.Street{
		OrganizationID: organizationID,
		Name:           name,
		PostalCode:     postalCode,
		NeighborhoodID: neighborhoodID,
	})
	if err != nil {
		return 0, fmt.Errorf("create street %q: %w", name, err)
	}
	return created.ID, nil
}
