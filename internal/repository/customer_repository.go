package repository

import (
	"context"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository wires a repository backed by pgxpool.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO customers (organization_id, name, cnpj, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		customer.OrganizationID,
		customer.Name,
		customer.CNPJ,
		customer.Email,
		customer.Phone,
		customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return domain.Customer{}, mapCreateError("create customer", "customer", "CNPJ "+customer.CNPJ, err)
	}
	return customer, nil
}

func (r *customerRepository) List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, organization_id, name, cnpj, email, phone, created_at
		 FROM customers
		 WHERE organization_id = $1
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		organizationID, limit, offset,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "list customers", Err: err}
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		if scanErr := rows.Scan(
			&customer.ID,
			&customer.OrganizationID,
			&customer.Name,
			&customer.CNPJ,
			&customer.Email,
			&customer.Phone,
			&customer.CreatedAt,
		); scanErr != nil {
			return nil, &domain.StoreError{Op: "scan customer", Err: scanErr}
		}
		customers = append(customers, customer)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, &domain.StoreError{Op: "iterate customers", Err: rowsErr}
	}

	return customers, nil
}
