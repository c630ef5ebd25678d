package repository

import (
	"context"
	"errors"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type driverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository wires a repository backed by pgxpool.
func NewDriverRepository(pool *pgxpool.Pool) DriverRepository {
	return &driverRepository{pool: pool}
}

func (r *driverRepository) Create(ctx context.Context, driver domain.Driver) (domain.Driver, error) {
	var birthDate any
	if driver.BirthDate != "" {
		birthDate = driver.BirthDate
	}

	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO drivers (organization_id, name, cpf, email, phone, birth_date, gender, role, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		driver.OrganizationID,
		driver.Name,
		driver.CPF,
		driver.Email,
		driver.Phone,
		birthDate,
		driver.Gender,
		driver.Role,
		driver.Status,
		driver.CreatedAt,
	).Scan(&driver.ID)
	if err != nil {
		return domain.Driver{}, mapCreateError("create driver", "driver", "CPF "+driver.CPF, err)
	}
	return driver, nil
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (domain.Driver, error) {
	var (
		driver    domain.Driver
		birthDate *string
	)
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, organization_id, name, cpf, email, phone, birth_date::text, gender, role, status, created_at
		 FROM drivers
		 WHERE id = $1`,
		id,
	).Scan(
		&driver.ID,
		&driver.OrganizationID,
		&driver.Name,
		&driver.CPF,
		&driver.Email,
		&driver.Phone,
		&birthDate,
		&driver.Gender,
		&driver.Role,
		&driver.Status,
		&driver.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Driver{}, &domain.NotFoundError{Kind: "driver", Value: ""}
		}
		return domain.Driver{}, &domain.StoreError{Op: "get driver", Err: err}
	}
	if birthDate != nil {
		driver.BirthDate = *birthDate
	}
	return driver, nil
}

func (r *driverRepository) List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Driver, error) {
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, organization_id, name, cpf, email, phone, birth_date::text, gender, role, status, created_at
		 FROM drivers
		 WHERE organization_id = $1
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		organizationID, limit, offset,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "list drivers", Err: err}
	}
	defer rows.Close()

	drivers := []domain.Driver{}
	for rows.Next() {
		var (
			driver    domain.Driver
			birthDate *string
		)
		if scanErr := rows.Scan(
			&driver.ID,
			&driver.OrganizationID,
			&driver.Name,
			&driver.CPF,
			&driver.Email,
			&driver.Phone,
			&birthDate,
			&driver.Gender,
			&driver.Role,
			&driver.Status,
			&driver.CreatedAt,
		); scanErr != nil {
			return nil, &domain.StoreError{Op: "scan driver", Err: scanErr}
		}
		if birthDate != nil {
			driver.BirthDate = *birthDate
		}
		drivers = append(drivers, driver)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, &domain.StoreError{Op: "iterate drivers", Err: rowsErr}
	}

	return drivers, nil
}

type driverAddressRepository struct {
	pool *pgxpool.Pool
}

// NewDriverAddressRepository wires a repository backed by pgxpool.
func NewDriverAddressRepository(pool *pgxpool.Pool) DriverAddressRepository {
	return &driverAddressRepository{pool: pool}
}

func (r *driverAddressRepository) Create(ctx context.Context, address domain.DriverAddress) (domain.DriverAddress, error) {
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO driver_addresses (driver_id, street_id, number, complement)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		address.DriverID, address.StreetID, address.Number, address.Complement,
	).Scan(&address.ID)
	if err != nil {
		return domain.DriverAddress{}, &domain.StoreError{Op: "create driver address", Err: err}
	}
	return address, nil
}
