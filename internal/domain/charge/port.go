package charge

import (
	"context"
	"net/http"
)

type Kind string

const (
	KindPix    Kind = "pix"
	KindBoleto Kind = "boleto"
)

//go:generate mockgen -source=port.go -destination=../../usecase/mocks/mock_port.go -package=mocks

// Request is one outbound call to the provider.
type Request struct {
	Method   string
	Endpoint string
	Header   http.Header
	Body     []byte
}

// Transport performs the HTTP exchange. It returns the response body for a
// 2xx answer, a *ProviderError for a structured rejection and a
// *TransportError for everything else.
type Transport interface {
	Send(ctx context.Context, req Request) ([]byte, error)
}

// Settings supplies the endpoint per transaction kind and the bearer token.
type Settings interface {
	Endpoint(kind Kind) string
	Token() string
}

// NewJSONRequest builds a POST with the JSON and bearer headers PagSeguro
// expects.
func NewJSONRequest(endpoint, token, idempotencyKey string, body []byte) Request {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer "+token)
	if idempotencyKey != "" {
		h.Set("x-idempotency-key", idempotencyKey)
	}
	return Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Header:   h,
		Body:     body,
	}
}
