package repository

import (
	"context"
	"errors"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The address tables carry no unique index over their natural keys; the
// import pipeline's sequential processing is what keeps find-or-create from
// racing itself. See the resolver documentation.

type cityRepository struct {
	pool *pgxpool.Pool
}

// NewCityRepository wires a repository backed by pgxpool.
func NewCityRepository(pool *pgxpool.Pool) CityRepository {
	return &cityRepository{pool: pool}
}

func (r *cityRepository) FindByNameAndState(ctx context.Context, organizationID uuid.UUID, name string, stateID int64) (domain.City, bool, error) {
	var city domain.City
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, organization_id, name, state_id
		 FROM cities
		 WHERE organization_id = $1 AND name = $2 AND state_id = $3
		 LIMIT 1`,
		organizationID, name, stateID,
	).Scan(&city.ID, &city.OrganizationID, &city.Name, &city.StateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.City{}, false, nil
		}
		return domain.City{}, false, &domain.StoreError{Op: "find city", Err: err}
	}
	return city, true, nil
}

func (r *cityRepository) Create(ctx context.Context, city domain.City) (domain.City, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO cities (organization_id, name, state_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		city.OrganizationID, city.Name, city.StateID,
	).Scan(&city.ID)
	if err != nil {
		return domain.City{}, &domain.StoreError{Op: "create city", Err: err}
	}
	return city, nil
}

type neighborhoodRepository struct {
	pool *pgxpool.Pool
}

// NewNeighborhoodRepository wires a repository backed by pgxpool.
func NewNeighborhoodRepository(pool *pgxpool.Pool) NeighborhoodRepository {
	return &neighborhoodRepository{pool: pool}
}

func (r *neighborhoodRepository) FindByNameAndCity(ctx context.Context, organizationID uuid.UUID, name string, cityID int64) (domain.Neighborhood, bool, error) {
	var neighborhood domain.Neighborhood
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, organization_id, name, city_id
		 FROM neighborhoods
		 WHERE organization_id = $1 AND name = $2 AND city_id = $3
		 LIMIT 1`,
		organizationID, name, cityID,
	).Scan(&neighborhood.ID, &neighborhood.OrganizationID, &neighborhood.Name, &neighborhood.CityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Neighborhood{}, false, nil
		}
		return domain.Neighborhood{}, false, &domain.StoreError{Op: "find neighborhood", Err: err}
	}
	return neighborhood, true, nil
}

func (r *neighborhoodRepository) Create(ctx context.Context, neighborhood domain.Neighborhood) (domain.Neighborhood, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO neighborhoods (organization_id, name, city_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		neighborhood.OrganizationID, neighborhood.Name, neighborhood.CityID,
	).Scan(&neighborhood.ID)
	if err != nil {
		return domain.Neighborhood{}, &domain.StoreError{Op: "create neighborhood", Err: err}
	}
	return neighborhood, nil
}

type streetRepository struct {
	pool *pgxpool.Pool
}

// NewStreetRepository wires a repository backed by pgxpool.
func NewStreetRepository(pool *pgxpool.Pool) StreetRepository {
	return &streetRepository{pool: pool}
}

func (r *streetRepository) FindByNaturalKey(ctx context.Context, organizationID uuid.UUID, name string, postalCode string, neighborhoodID int64) (domain.Street, bool, error) {
	var street domain.Street
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, organization_id, name, postal_code, neighborhood_id
		 FROM streets
		 WHERE organization_id = $1 AND name = $2 AND postal_code = $3 AND neighborhood_id = $4
		 LIMIT 1`,
		organizationID, name, postalCode, neighborhoodID,
	).Scan(&street.ID, &street.OrganizationID, &street.Name, &street.PostalCode, &street.NeighborhoodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Street{}, false, nil
		}
		return domain.Street{}, false, &domain.StoreError{Op: "find street", Err: err}
	}
	return street, true, nil
}

func (r *streetRepository) Create(ctx context.Context, street domain.Street) (domain.Street, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO streets (organization_id, name, postal_code, neighborhood_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		street.OrganizationID, street.Name, street.PostalCode, street.NeighborhoodID,
	).Scan(&street.ID)
	if err != nil {
		return domain.Street{}, &domain.StoreError{Op: "create street", Err: err}
	}
	return street, nil
}
