package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAGSEGURO_TOKEN", "")
	t.Setenv("PAGSEGURO_PIX_URL", "")
	t.Setenv("PAGSEGURO_BOLETO_URL", "")
	t.Setenv("PAGSEGURO_TIMEOUT", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "https://sandbox.api.pagseguro.com/orders", cfg.PagSeguro.Endpoint(charge.KindPix))
	assert.Equal(t, "https://sandbox.api.pagseguro.com/orders", cfg.PagSeguro.Endpoint(charge.KindBoleto))
	assert.Equal(t, 15*time.Second, cfg.PagSeguro.Timeout())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PAGSEGURO_TOKEN", "live-token")
	t.Setenv("PAGSEGURO_PIX_URL", "https://api.pagseguro.com/orders")
	t.Setenv("PAGSEGURO_BOLETO_URL", "https://api.pagseguro.com/boleto")
	t.Setenv("PAGSEGURO_TIMEOUT", "3s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/pagseguro")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "live-token", cfg.PagSeguro.Token())
	assert.Equal(t, "https://api.pagseguro.com/orders", cfg.PagSeguro.Endpoint(charge.KindPix))
	assert.Equal(t, "https://api.pagseguro.com/boleto", cfg.PagSeguro.Endpoint(charge.KindBoleto))
	assert.Equal(t, 3*time.Second, cfg.PagSeguro.Timeout())
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("PAGSEGURO_TIMEOUT", "soon")

	_, err := config.Load()

	assert.ErrorContains(t, err, "PAGSEGURO_TIMEOUT")
}

func TestPagSeguro_WithOverrides(t *testing.T) {
	base := config.NewPagSeguro("env-token", "https://pix", "https://boleto", time.Second)

	over := base.WithOverrides("flag-token", "https://mock/orders")

	assert.Equal(t, "flag-token", over.Token())
	assert.Equal(t, "https://mock/orders", over.Endpoint(charge.KindBoleto))
	assert.Equal(t, "env-token", base.Token())
	assert.Equal(t, base, base.WithOverrides("", ""))
	assert.Empty(t, base.Endpoint("recurring"))
}
