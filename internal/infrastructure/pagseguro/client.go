package pagseguro

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/json-iterator/go"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

const maxResponseBytes = 1 << 20

type errorDocument struct {
	ErrorMessages []charge.ProviderMessage `json:"error_messages"`
}

// Client posts requests to the PagSeguro orders API. It implements
// charge.Transport and never retries.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		IdleConnTimeout:     60 * time.Second,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 16,
		ForceAttemptHTTP2:   true,
	}
	return NewClientWithHTTP(&http.Client{Transport: tr, Timeout: timeout}, logger)
}

func NewClientWithHTTP(httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{httpClient: httpClient, logger: logger}
}

func (c *Client) Send(ctx context.Context, req charge.Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Endpoint, bytes.NewReader(req.Body))
	if err != nil {
		return nil, &charge.TransportError{Err: err}
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("pagseguro request failed", "endpoint", req.Endpoint, "error", err)
		return nil, &charge.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &charge.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Info("pagseguro request",
		"method", req.Method,
		"endpoint", req.Endpoint,
		"status", resp.StatusCode,
		"idempotency_key", req.Header.Get("x-idempotency-key"),
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var doc errorDocument
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.ErrorMessages) > 0 {
		return nil, &charge.ProviderError{
			StatusCode: resp.StatusCode,
			Messages:   doc.ErrorMessages,
			Body:       body,
		}
	}

	return nil, &charge.TransportError{StatusCode: resp.StatusCode, Body: body}
}
