package entity

import (
	"time"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

// IdempotencyRecord is the stored provider answer for one client key.
type IdempotencyRecord struct {
	key       string
	kind      charge.Kind
	orderBody []byte
	createdAt time.Time
}

func NewIdempotencyRecord(key string, kind charge.Kind, body []byte) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:       key,
		kind:      kind,
		orderBody: body,
		createdAt: time.Now(),
	}
}

func ReconstructIdempotencyRecord(key string, kind charge.Kind, body []byte, createdAt time.Time) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:       key,
		kind:      kind,
		orderBody: body,
		createdAt: createdAt,
	}
}

func (r *IdempotencyRecord) Key() string {
	return r.key
}

func (r *IdempotencyRecord) Kind() charge.Kind {
	return r.kind
}

func (r *IdempotencyRecord) OrderBody() []byte {
	return r.orderBody
}

func (r *IdempotencyRecord) CreatedAt() time.Time {
	return r.createdAt
}
