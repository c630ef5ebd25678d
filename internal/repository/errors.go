package repository

import (
	"errors"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// mapCreateError translates storage failures on entity creation into the
// domain taxonomy: unique violations become DuplicateKeyError with a
// human-readable entity/key pair, everything else a StoreError.
func mapCreateError(op, entity, key string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.DuplicateKeyError{Entity: entity, Key: key}
	}
	return &domain.StoreError{Op: op, Err: err}
}
