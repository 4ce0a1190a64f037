package repository

import "context"

//go:generate mockgen -source=unit_of_work.go -destination=../../usecase/mocks/mock_unit_of_work.go -package=mocks

type UnitOfWork interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	Idempotency() IdempotencyRepository
}
