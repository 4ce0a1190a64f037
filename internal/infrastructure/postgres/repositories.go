package postgres

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/domain/entity"
	"github.com/gest-dev/pagseguro-go/internal/domain/repository"
)

// Schema creates the idempotency table when it is missing.
const Schema = `CREATE TABLE IF NOT EXISTS idempotency_keys (
	key           TEXT PRIMARY KEY,
	kind          TEXT NOT NULL,
	response_body BYTEA NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}

func (u *UnitOfWork) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{pool: u.pool, tx: tx}, nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}

func (u *UnitOfWork) Idempotency() repository.IdempotencyRepository {
	return &IdempotencyRepo{tx: u.tx, pool: u.pool}
}

type IdempotencyRepo struct {
	tx   pgx.Tx
	pool *pgxpool.Pool
}

func (r *IdempotencyRepo) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func (r *IdempotencyRepo) Find(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var kind string
	var body []byte
	var createdAt time.Time
	err := r.q().QueryRow(ctx,
		`SELECT kind, response_body, created_at FROM idempotency_keys WHERE key = $1`,
		key,
	).Scan(&kind, &body, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIdempotencyRecord(key, charge.Kind(kind), body, createdAt), nil
}

func (r *IdempotencyRepo) Save(ctx context.Context, record *entity.IdempotencyRecord) error {
	if r.tx == nil {
		return errNoTx
	}
	_, err := r.tx.Exec(ctx,
		`INSERT INTO idempotency_keys (key, kind, response_body, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO NOTHING`,
		record.Key(), string(record.Kind()), record.OrderBody(), record.CreatedAt(),
	)
	return err
}

// Lock takes a transaction-scoped advisory lock derived from key.
func (r *IdempotencyRepo) Lock(ctx context.Context, key string) error {
	if r.tx == nil {
		return errNoTx
	}
	_, err := r.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, LockID(key))
	return err
}

var errNoTx = errors.New("postgres: operation requires a transaction")

// LockID maps an idempotency key onto the int64 space of advisory locks.
func LockID(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}
