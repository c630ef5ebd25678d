package address

import (
	"context"
	"errors"
	"testing"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/repository"

	"github.com/google/uuid"
)

type memStateRepo struct {
	states map[string]domain.State
}

var _ repository.StateRepository = (*memStateRepo)(nil)

func (m *memStateRepo) GetByCode(_ context.Context, code string) (domain.State, error) {
	state, ok := m.states[code]
	if !ok {
		return domain.State{}, &domain.NotFoundError{Kind: "state", Value: code}
	}
	return state, nil
}

type memCityRepo struct {
	cities []domain.City
	nextID int64
}

var _ repository.CityRepository = (*memCityRepo)(nil)

func (m *memCityRepo) FindByNameAndState(_ context.Context, organizationID uuid.UUID, name string, stateID int64) (domain.City, bool, error) {
	for _, city := range m.cities {
		if city.OrganizationID == organizationID && city.Name == name && city.StateID == stateID {
			return city, true, nil
		}
	}
	return domain.City{}, false, nil
}

func (m *memCityRepo) Create(_ context.Context, city domain.City) (domain.City, error) {
	m.nextID++
	city.ID = m.nextID
	m.cities = append(m.cities, city)
	return city, nil
}

type memNeighborhoodRepo struct {
	neighborhoods []domain.Neighborhood
	nextID        int64
}

var _ repository.NeighborhoodRepository = (*memNeighborhoodRepo)(nil)

func (m *memNeighborhoodRepo) FindByNameAndCity(_ context.Context, organizationID uuid.UUID, name string, cityID int64) (domain.Neighborhood, bool, error) {
	for _, n := range m.neighborhoods {
		if n.OrganizationID == organizationID && n.Name == name && n.CityID == cityID {
			return n, true, nil
		}
	}
	return domain.Neighborhood{}, false, nil
}

func (m *memNeighborhoodRepo) Create(_ context.Context, neighborhood domain.Neighborhood) (domain.Neighborhood, error) {
	m.nextID++
	neighborhood.ID = m.nextID
	m.neighborhoods = append(m.neighborhoods, neighborhood)
	return neighborhood, nil
}

type memStreetRepo struct {
	streets []domain.Street
	nextID  int64
}

var _ repository.StreetRepository = (*memStreetRepo)(nil)

func (m *memStreetRepo) FindByNaturalKey(_ context.Context, organizationID uuid.UUID, name string, postalCode string, neighborhoodID int64) (domain.Street, bool, error) {
	for _, street := range m.streets {
		if street.OrganizationID == organizationID && street.Name == name &&
			street.PostalCode == postalCode && street.NeighborhoodID == neighborhoodID {
			return street, true, nil
		}
	}
	return domain.Street{}, false, nil
}

func (m *memStreetRepo) Create(_ context.Context, street domain.Street) (domain.Street, error) {
	m.nextID++
	street.ID = m.nextID
	m.streets = append(m.streets, street)
	return street, nil
}

type resolverFixture struct {
	resolver      *Resolver
	cities        *memCityRepo
	neighborhoods *memNeighborhoodRepo
	streets       *memStreetRepo
}

func newResolverFixture() *resolverFixture {
	states := &memStateRepo{states: map[string]domain.State{
		"PE": {ID: 1, Code: "PE", Name: "Pernambuco"},
		"PB": {ID: 2, Code: "PB", Name: "Paraíba"},
	}}
	f := &resolverFixture{
		cities:        &memCityRepo{},
		neighborhoods: &memNeighborhoodRepo{},
		streets:       &memStreetRepo{},
	}
	f.resolver = NewResolver(states, f.cities, f.neighborhoods, f.streets)
	return f
}

var testOrg = uuid.MustParse("8c9a3a9c-68e1-4f0d-9a0f-2f6a4b9a2a10")

func TestResolveStreetIsIdempotent(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()

	first, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "Recife", "Boa Vista", "Rua da Aurora", "50050000")
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	second, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "Recife", "Boa Vista", "Rua da Aurora", "50050000")
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}

	if first != second {
		t.Fatalf("expected the same street id, got %d and %d", first, second)
	}
	if len(f.cities.cities) != 1 || len(f.neighborhoods.neighborhoods) != 1 || len(f.streets.streets) != 1 {
		t.Fatalf("expected no duplicate records: %d cities, %d neighborhoods, %d streets",
			len(f.cities.cities), len(f.neighborhoods.neighborhoods), len(f.streets.streets))
	}
}

func TestResolveStreetAcceptsFullStateName(t *testing.T) {
	f := newResolverFixture()

	_, err := f.resolver.ResolveStreet(context.Background(), testOrg, "Pernambuco", "Recife", "Boa Vista", "Rua da Aurora", "")
	if err != nil {
		t.Fatalf("resolution with full state name failed: %v", err)
	}
	if len(f.cities.cities) != 1 || f.cities.cities[0].StateID != 1 {
		t.Fatalf("city not created under the resolved state: %+v", f.cities.cities)
	}
}

func TestResolveStreetSameCityNameDifferentStates(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()

	// Both states have a Bayeux; they must become distinct cities.
	if _, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "Bayeux", "Centro", "Rua Um", ""); err != nil {
		t.Fatalf("resolution under PE failed: %v", err)
	}
	if _, err := f.resolver.ResolveStreet(ctx, testOrg, "PB", "Bayeux", "Centro", "Rua Um", ""); err != nil {
		t.Fatalf("resolution under PB failed: %v", err)
	}

	if len(f.cities.cities) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(f.cities.cities))
	}
}

func TestResolveStreetPostalCodeDistinguishesStreets(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()

	first, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "Recife", "Centro", "Rua do Sol", "50030000")
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	second, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "Recife", "Centro", "Rua do Sol", "50030900")
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}

	if first == second {
		t.Fatalf("streets with different postal codes must be distinct, both got id %d", first)
	}
	if len(f.streets.streets) != 2 {
		t.Fatalf("expected 2 streets, got %d", len(f.streets.streets))
	}
}

func TestResolveStreetUnknownState(t *testing.T) {
	f := newResolverFixture()

	_, err := f.resolver.ResolveStreet(context.Background(), testOrg, "XX", "Recife", "Centro", "Rua do Sol", "")
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Kind != "state" || notFound.Value != "XX" {
		t.Fatalf("unexpected error detail: %+v", notFound)
	}
	if len(f.cities.cities) != 0 {
		t.Fatalf("no city should be created for an unknown state")
	}
}

func TestResolveStreetMissingDependencies(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()

	_, err := f.resolver.ResolveStreet(ctx, testOrg, "PE", "", "Centro", "Rua do Sol", "")
	var dependency *domain.DependencyError
	if !errors.As(err, &dependency) {
		t.Fatalf("expected DependencyError for blank city, got %v", err)
	}

	_, err = f.resolver.ResolveStreet(ctx, testOrg, "PE", "Recife", "", "Rua do Sol", "")
	if !errors.As(err, &dependency) {
		t.Fatalf("expected DependencyError for street without neighborhood, got %v", err)
	}
}
