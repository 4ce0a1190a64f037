package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/usecase/boleto"
	"github.com/gest-dev/pagseguro-go/internal/usecase/pix"
)

var ErrUnknownKind = errors.New("unknown charge kind")

type Request struct {
	Kind           charge.Kind
	IdempotencyKey string
	Charge         Charge
}

type UseCase struct {
	transport charge.Transport
	settings  charge.Settings
	now       func() time.Time
}

func NewUseCase(transport charge.Transport, settings charge.Settings) *UseCase {
	return &UseCase{transport: transport, settings: settings, now: time.Now}
}

// WithClock returns a copy of uc using now for due date defaults.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	c := *uc
	c.now = now
	return &c
}

// Execute builds one charge of req.Kind from req.Charge and sends it.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*charge.Order, error) {
	switch req.Kind {
	case charge.KindPix:
		b := pix.NewBuilder(uc.transport, uc.settings,
			pix.WithClock(uc.now),
			pix.WithIdempotencyKey(req.IdempotencyKey),
		)
		if err := req.Charge.Fill(b.Draft()); err != nil {
			return nil, err
		}
		return b.Send(ctx)
	case charge.KindBoleto:
		b := boleto.NewBuilder(uc.transport, uc.settings,
			boleto.WithClock(uc.now),
			boleto.WithIdempotencyKey(req.IdempotencyKey),
		)
		if err := req.Charge.Fill(b.Draft()); err != nil {
			return nil, err
		}
		return b.Send(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
}
