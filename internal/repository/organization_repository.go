package repository

import (
	"context"
	"errors"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type organizationRepository struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository wires a repository backed by pgxpool.
func NewOrganizationRepository(pool *pgxpool.Pool) OrganizationRepository {
	return &organizationRepository{pool: pool}
}

func (r *organizationRepository) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO organizations (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		org.ID, org.Name, org.CreatedAt, org.UpdatedAt,
	).Scan(&org.ID)
	if err != nil {
		return domain.Organization{}, mapCreateError("create organization", "organization", "name "+org.Name, err)
	}
	return org, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error) {
	var org domain.Organization
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, name, created_at, updated_at FROM organizations WHERE id = $1`,
		id,
	).Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Organization{}, &domain.NotFoundError{Kind: "organization", Value: id.String()}
		}
		return domain.Organization{}, &domain.StoreError{Op: "get organization", Err: err}
	}
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, name, created_at, updated_at FROM organizations ORDER BY name`,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "list organizations", Err: err}
	}
	defer rows.Close()

	organizations := []domain.Organization{}
	for rows.Next() {
		var org domain.Organization
		if scanErr := rows.Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt); scanErr != nil {
			return nil, &domain.StoreError{Op: "scan organization", Err: scanErr}
		}
		organizations = append(organizations, org)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, &domain.StoreError{Op: "iterate organizations", Err: rowsErr}
	}

	return organizations, nil
}
