package idempotency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/domain/entity"
	"github.com/gest-dev/pagseguro-go/internal/usecase/checkout"
	"github.com/gest-dev/pagseguro-go/internal/usecase/idempotency"
	"github.com/gest-dev/pagseguro-go/internal/usecase/mocks"
)

func TestIdempotencyUseCase_Execute_ReplaysCachedOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)
	next := mocks.NewMockCharger(ctrl)

	uc := idempotency.NewUseCase(uow, next)

	cachedBody := []byte(`{"id":"ORDE_CACHED","reference_id":"order-1"}`)
	record := entity.ReconstructIdempotencyRecord("test-key", charge.KindPix, cachedBody, time.Time{})

	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "test-key").Return(record, nil)

	order, err := uc.Execute(context.Background(), checkout.Request{
		Kind:           charge.KindPix,
		IdempotencyKey: "test-key",
	})

	require.NoError(t, err)
	assert.Equal(t, "ORDE_CACHED", order.ID)
}

func TestIdempotencyUseCase_Execute_StoresNewOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	txUow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)
	next := mocks.NewMockCharger(ctrl)

	uc := idempotency.NewUseCase(uow, next)

	req := checkout.Request{Kind: charge.KindBoleto, IdempotencyKey: "new-key"}

	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "new-key").Return(nil, nil)

	uow.EXPECT().Begin(gomock.Any()).Return(txUow, nil)
	txUow.EXPECT().Rollback(gomock.Any()).Return(nil)

	txUow.EXPECT().Idempotency().Return(idempotencyRepo).Times(3)
	idempotencyRepo.EXPECT().Lock(gomock.Any(), "new-key").Return(nil)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "new-key").Return(nil, nil)

	next.EXPECT().Execute(gomock.Any(), req).Return(&charge.Order{ID: "ORDE_NEW", ReferenceID: "inv-1"}, nil)

	var saved *entity.IdempotencyRecord
	idempotencyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *entity.IdempotencyRecord) error {
			saved = r
			return nil
		})
	txUow.EXPECT().Commit(gomock.Any()).Return(nil)

	order, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ORDE_NEW", order.ID)
	require.NotNil(t, saved)
	assert.Equal(t, "new-key", saved.Key())
	assert.Equal(t, charge.KindBoleto, saved.Kind())
	assert.JSONEq(t, `{"id":"ORDE_NEW","reference_id":"inv-1","created_at":""}`, string(saved.OrderBody()))
}

func TestIdempotencyUseCase_Execute_ConcurrentWinnerReplayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	txUow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)
	next := mocks.NewMockCharger(ctrl)

	uc := idempotency.NewUseCase(uow, next)

	record := entity.ReconstructIdempotencyRecord("race-key", charge.KindPix, []byte(`{"id":"ORDE_WINNER"}`), time.Now())

	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "race-key").Return(nil, nil)

	uow.EXPECT().Begin(gomock.Any()).Return(txUow, nil)
	txUow.EXPECT().Rollback(gomock.Any()).Return(nil)

	txUow.EXPECT().Idempotency().Return(idempotencyRepo).Times(2)
	idempotencyRepo.EXPECT().Lock(gomock.Any(), "race-key").Return(nil)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "race-key").Return(record, nil)

	order, err := uc.Execute(context.Background(), checkout.Request{Kind: charge.KindPix, IdempotencyKey: "race-key"})

	require.NoError(t, err)
	assert.Equal(t, "ORDE_WINNER", order.ID)
}

func TestIdempotencyUseCase_Execute_FailedChargeNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	txUow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)
	next := mocks.NewMockCharger(ctrl)

	uc := idempotency.NewUseCase(uow, next)

	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "fail-key").Return(nil, nil)

	uow.EXPECT().Begin(gomock.Any()).Return(txUow, nil)
	txUow.EXPECT().Rollback(gomock.Any()).Return(nil)

	txUow.EXPECT().Idempotency().Return(idempotencyRepo).Times(2)
	idempotencyRepo.EXPECT().Lock(gomock.Any(), "fail-key").Return(nil)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "fail-key").Return(nil, nil)

	rejection := &charge.ProviderError{StatusCode: 400}
	next.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, rejection)

	_, err := uc.Execute(context.Background(), checkout.Request{Kind: charge.KindPix, IdempotencyKey: "fail-key"})

	var pErr *charge.ProviderError
	require.ErrorAs(t, err, &pErr)
}

func TestIdempotencyUseCase_Execute_KeyReusedForOtherKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)

	uc := idempotency.NewUseCase(uow, mocks.NewMockCharger(ctrl))

	record := entity.ReconstructIdempotencyRecord("shared", charge.KindPix, []byte(`{"id":"ORDE_1"}`), time.Now())
	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "shared").Return(record, nil)

	_, err := uc.Execute(context.Background(), checkout.Request{Kind: charge.KindBoleto, IdempotencyKey: "shared"})

	assert.ErrorIs(t, err, idempotency.ErrKeyReused)
}

func TestIdempotencyUseCase_Execute_LockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	txUow := mocks.NewMockUnitOfWork(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)

	uc := idempotency.NewUseCase(uow, mocks.NewMockCharger(ctrl))

	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "lock-key").Return(nil, nil)
	uow.EXPECT().Begin(gomock.Any()).Return(txUow, nil)
	txUow.EXPECT().Rollback(gomock.Any()).Return(nil)
	txUow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Lock(gomock.Any(), "lock-key").Return(errors.New("deadlock detected"))

	_, err := uc.Execute(context.Background(), checkout.Request{Kind: charge.KindPix, IdempotencyKey: "lock-key"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestIdempotencyUseCase_Execute_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := idempotency.NewUseCase(mocks.NewMockUnitOfWork(ctrl), mocks.NewMockCharger(ctrl))

	_, err := uc.Execute(context.Background(), checkout.Request{Kind: charge.KindPix})

	assert.ErrorIs(t, err, idempotency.ErrMissingKey)
}
