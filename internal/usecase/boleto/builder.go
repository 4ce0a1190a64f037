package boleto

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

type Option func(*Builder)

// WithClock replaces time.Now when defaulting the due date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIdempotencyKey fixes the x-idempotency-key sent to PagSeguro. A random
// UUID is used otherwise.
func WithIdempotencyKey(key string) Option {
	return func(b *Builder) { b.idempotencyKey = key }
}

// Builder accumulates one boleto charge and sends it once. It is not safe for
// concurrent use.
type Builder struct {
	transport      charge.Transport
	settings       charge.Settings
	now            func() time.Time
	idempotencyKey string

	draft charge.Draft
	sent  bool
}

func NewBuilder(transport charge.Transport, settings charge.Settings, opts ...Option) *Builder {
	b := &Builder{
		transport: transport,
		settings:  settings,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) SetReference(text string) *Builder {
	b.draft.SetReference(text)
	return b
}

func (b *Builder) SetAmount(value string) error {
	return b.draft.SetAmount(value)
}

func (b *Builder) SetFirstDueDate(t time.Time) *Builder {
	b.draft.SetFirstDueDate(t)
	return b
}

func (b *Builder) SetNumberOfPayments(value string) *Builder {
	b.draft.SetNumberOfPayments(value)
	return b
}

func (b *Builder) SetDescription(text string) *Builder {
	b.draft.SetDescription(text)
	return b
}

func (b *Builder) SetInstructions(text string) *Builder {
	b.draft.SetInstructions(text)
	return b
}

func (b *Builder) SetCustomerInfo(in charge.CustomerInput) error {
	return b.draft.SetCustomerInfo(in)
}

func (b *Builder) SetItems(in []charge.LineItemInput) error {
	return b.draft.SetItems(in)
}

func (b *Builder) SetCustomerAddress(in charge.AddressInput) error {
	return b.draft.SetCustomerAddress(in)
}

func (b *Builder) SetNotificationURL(raw string) error {
	return b.draft.SetNotificationURL(raw)
}

// Draft exposes the accumulated fields for inspection.
func (b *Builder) Draft() *charge.Draft {
	return &b.draft
}

// Send submits the charge. A validation failure leaves the builder usable;
// once the transport has been called the builder is spent.
func (b *Builder) Send(ctx context.Context) (*charge.Order, error) {
	if b.sent {
		return nil, charge.ErrAlreadySent
	}

	b.draft.DefaultDueDate(b.now())

	if err := b.draft.Revalidate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(newPayload(&b.draft))
	if err != nil {
		return nil, fmt.Errorf("encode boleto payload: %w", err)
	}

	key := b.idempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	b.sent = true
	resp, err := b.transport.Send(ctx, charge.NewJSONRequest(
		b.settings.Endpoint(charge.KindBoleto),
		b.settings.Token(),
		key,
		body,
	))
	if err != nil {
		return nil, err
	}

	var order charge.Order
	if err := json.Unmarshal(resp, &order); err != nil {
		return nil, &charge.TransportError{Body: resp, Err: fmt.Errorf("decode boleto order: %w", err)}
	}
	return &order, nil
}
