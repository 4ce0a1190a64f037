package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

const (
	sandboxOrdersURL = "https://sandbox.api.pagseguro.com/orders"
	defaultTimeout   = 15 * time.Second
)

type Config struct {
	PagSeguro   *PagSeguro
	HTTPAddr    string
	DatabaseURL string
	LogLevel    slog.Level
}

// PagSeguro holds the provider endpoints and credentials. It satisfies
// charge.Settings.
type PagSeguro struct {
	token     string
	pixURL    string
	boletoURL string
	timeout   time.Duration
}

func NewPagSeguro(token, pixURL, boletoURL string, timeout time.Duration) *PagSeguro {
	return &PagSeguro{token: token, pixURL: pixURL, boletoURL: boletoURL, timeout: timeout}
}

func (p *PagSeguro) Endpoint(kind charge.Kind) string {
	switch kind {
	case charge.KindPix:
		return p.pixURL
	case charge.KindBoleto:
		return p.boletoURL
	default:
		return ""
	}
}

func (p *PagSeguro) Token() string {
	return p.token
}

func (p *PagSeguro) Timeout() time.Duration {
	return p.timeout
}

// WithOverrides returns a copy with token and endpoint replaced when the
// arguments are non-empty. An endpoint override applies to every kind.
func (p *PagSeguro) WithOverrides(token, endpoint string) *PagSeguro {
	c := *p
	if token != "" {
		c.token = token
	}
	if endpoint != "" {
		c.pixURL = endpoint
		c.boletoURL = endpoint
	}
	return &c
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := parseDuration(getEnv("PAGSEGURO_TIMEOUT", ""), defaultTimeout)
	if err != nil {
		return nil, fmt.Errorf("PAGSEGURO_TIMEOUT: %w", err)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return &Config{
		PagSeguro: NewPagSeguro(
			getEnv("PAGSEGURO_TOKEN", ""),
			getEnv("PAGSEGURO_PIX_URL", sandboxOrdersURL),
			getEnv("PAGSEGURO_BOLETO_URL", sandboxOrdersURL),
			timeout,
		),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    level,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", raw)
	}
	return d, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(raw)))
	return level, err
}
