package idempotency

import (
	"context"
	"errors"
	"fmt"

	json "github.com/json-iterator/go"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/domain/entity"
	"github.com/gest-dev/pagseguro-go/internal/domain/repository"
	"github.com/gest-dev/pagseguro-go/internal/usecase/checkout"
)

//go:generate mockgen -source=idempotency.go -destination=../mocks/mock_charger.go -package=mocks

var (
	ErrMissingKey = errors.New("idempotency key required")
	ErrKeyReused  = errors.New("idempotency key already used for another charge kind")
)

// Charger sends one charge to the provider.
type Charger interface {
	Execute(ctx context.Context, req checkout.Request) (*charge.Order, error)
}

// UseCase makes charge creation idempotent per client key. The first
// successful order for a key is stored and replayed on every retry; failed
// attempts are not stored.
type UseCase struct {
	uow  repository.UnitOfWork
	next Charger
}

func NewUseCase(uow repository.UnitOfWork, next Charger) *UseCase {
	return &UseCase{uow: uow, next: next}
}

func (uc *UseCase) Execute(ctx context.Context, req checkout.Request) (*charge.Order, error) {
	if req.IdempotencyKey == "" {
		return nil, ErrMissingKey
	}

	cached, err := uc.uow.Idempotency().Find(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return uc.parseCache(cached, req.Kind)
	}

	tx, err := uc.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.Idempotency().Lock(ctx, req.IdempotencyKey); err != nil {
		return nil, err
	}

	cached, err = tx.Idempotency().Find(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return uc.parseCache(cached, req.Kind)
	}

	order, err := uc.next.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	return uc.saveAndReturn(ctx, tx, req, order)
}

func (uc *UseCase) saveAndReturn(
	ctx context.Context,
	tx repository.UnitOfWork,
	req checkout.Request,
	order *charge.Order,
) (*charge.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	record := entity.NewIdempotencyRecord(req.IdempotencyKey, req.Kind, body)
	if err := tx.Idempotency().Save(ctx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *UseCase) parseCache(record *entity.IdempotencyRecord, kind charge.Kind) (*charge.Order, error) {
	if record.Kind() != kind {
		return nil, ErrKeyReused
	}
	var order charge.Order
	if err := json.Unmarshal(record.OrderBody(), &order); err != nil {
		return nil, fmt.Errorf("decode cached order: %w", err)
	}
	return &order, nil
}
