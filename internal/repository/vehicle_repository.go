package repository

import (
	"context"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository wires a repository backed by pgxpool.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	var driverID any
	if vehicle.DriverID != 0 {
		driverID = vehicle.DriverID
	}

	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO vehicles (organization_id, plate, vehicle_class, driver_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		vehicle.OrganizationID,
		vehicle.Plate,
		vehicle.VehicleClass,
		driverID,
		vehicle.CreatedAt,
	).Scan(&vehicle.ID)
	if err != nil {
		return domain.Vehicle{}, mapCreateError("create vehicle", "vehicle", "plate "+vehicle.Plate, err)
	}
	return vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, organizationID uuid.UUID, limit int, offset int) ([]domain.Vehicle, error) {
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, organization_id, plate, vehicle_class, COALESCE(driver_id, 0), created_at
		 FROM vehicles
		 WHERE organization_id = $1
		 ORDER BY plate
		 LIMIT $2 OFFSET $3`,
		organizationID, limit, offset,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "list vehicles", Err: err}
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var vehicle domain.Vehicle
		if scanErr := rows.Scan(
			&vehicle.ID,
			&vehicle.OrganizationID,
			&vehicle.Plate,
			&vehicle.VehicleClass,
			&vehicle.DriverID,
			&vehicle.CreatedAt,
		); scanErr != nil {
			return nil, &domain.StoreError{Op: "scan vehicle", Err: scanErr}
		}
		vehicles = append(vehicles, vehicle)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, &domain.StoreError{Op: "iterate vehicles", Err: rowsErr}
	}

	return vehicles, nil
}
