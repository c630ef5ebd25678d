package repository

import (
	"context"
	"errors"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stateRepository struct {
	pool *pgxpool.Pool
}

// NewStateRepository wires a repository over the pre-seeded state table.
func NewStateRepository(pool *pgxpool.Pool) StateRepository {
	return &stateRepository{pool: pool}
}

func (r *stateRepository) GetByCode(ctx context.Context, code string) (domain.State, error) {
	var state domain.State
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, code, name FROM states WHERE code = $1`,
		code,
	).Scan(&state.ID, &state.Code, &state.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.State{}, &domain.NotFoundError{Kind: "state", Value: code}
		}
		return domain.State{}, &domain.StoreError{Op: "get state", Err: err}
	}
	return state, nil
}
