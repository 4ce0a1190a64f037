package pagseguro_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/pagseguro"
)

func TestClient_Send_Success(t *testing.T) {
	var gotHeader http.Header
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDE_1"}`))
	}))
	defer srv.Close()

	c := pagseguro.NewClient(time.Second, nil)
	body, err := c.Send(context.Background(), charge.NewJSONRequest(srv.URL, "tok", "key-1", []byte(`{"a":1}`)))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ORDE_1"}`, string(body))
	assert.Equal(t, `{"a":1}`, string(gotBody))
	assert.Equal(t, "Bearer tok", gotHeader.Get("Authorization"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "key-1", gotHeader.Get("X-Idempotency-Key"))
}

func TestClient_Send_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_messages":[{"code":"40002","description":"invalid_parameter","parameter_name":"customer.tax_id"}]}`))
	}))
	defer srv.Close()

	c := pagseguro.NewClient(time.Second, nil)
	_, err := c.Send(context.Background(), charge.NewJSONRequest(srv.URL, "tok", "", nil))

	var pErr *charge.ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, http.StatusBadRequest, pErr.StatusCode)
	require.Len(t, pErr.Messages, 1)
	assert.Equal(t, "40002", pErr.Messages[0].Code)
	assert.Equal(t, "customer.tax_id", pErr.Messages[0].ParameterName)
}

func TestClient_Send_UnstructuredFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := pagseguro.NewClient(time.Second, nil)
	_, err := c.Send(context.Background(), charge.NewJSONRequest(srv.URL, "tok", "", nil))

	var tErr *charge.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusBadGateway, tErr.StatusCode)
	assert.Contains(t, string(tErr.Body), "bad gateway")
}

func TestClient_Send_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_messages":[{"code":"UNAUTHORIZED","description":"Invalid credential"}]}`))
	}))
	defer srv.Close()

	c := pagseguro.NewClient(time.Second, nil)
	_, err := c.Send(context.Background(), charge.NewJSONRequest(srv.URL, "wrong", "", nil))

	var pErr *charge.ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, http.StatusUnauthorized, pErr.StatusCode)
}

func TestClient_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := pagseguro.NewClient(50*time.Millisecond, nil)
	_, err := c.Send(context.Background(), charge.NewJSONRequest(srv.URL, "tok", "", nil))

	var tErr *charge.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, tErr.StatusCode)
	assert.Error(t, errors.Unwrap(tErr))
}

func TestClient_Send_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := pagseguro.NewClient(time.Second, nil)
	_, err := c.Send(ctx, charge.NewJSONRequest(srv.URL, "tok", "", nil))

	assert.ErrorIs(t, err, context.Canceled)
}
