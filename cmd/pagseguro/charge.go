package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/config"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/pagseguro"
	"github.com/gest-dev/pagseguro-go/internal/usecase/checkout"
)

type chargeOptions struct {
	file           string
	token          string
	endpoint       string
	idempotencyKey string
	verbose        bool
}

func chargeCmd(kind charge.Kind, short string) *cobra.Command {
	var opts chargeOptions

	cmd := &cobra.Command{
		Use:   string(kind) + " --file charge.yaml",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCharge(cmd.Context(), kind, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML file describing the charge")
	cmd.Flags().StringVar(&opts.token, "token", "", "PagSeguro bearer token (overrides PAGSEGURO_TOKEN)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Orders endpoint (overrides PAGSEGURO_*_URL)")
	cmd.Flags().StringVar(&opts.idempotencyKey, "idempotency-key", "", "x-idempotency-key to send (random UUID when empty)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log the provider exchange to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCharge(ctx context.Context, kind charge.Kind, opts chargeOptions, stdout, stderr io.Writer) error {
	c, err := readCharge(opts.file)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	settings := cfg.PagSeguro.WithOverrides(opts.token, opts.endpoint)

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	key := opts.idempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	uc := checkout.NewUseCase(pagseguro.NewClient(settings.Timeout(), logger), settings)
	order, err := uc.Execute(ctx, checkout.Request{Kind: kind, IdempotencyKey: key, Charge: c})
	if err != nil {
		return describe(err)
	}

	out, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func readCharge(path string) (checkout.Charge, error) {
	var c checkout.Charge
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read charge file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse charge file %s: %w", path, err)
	}
	return c, nil
}

// chargeError renders structured failures as a multi-line message for the
// terminal while keeping the original error reachable.
type chargeError struct {
	msg string
	err error
}

func (e *chargeError) Error() string { return e.msg }
func (e *chargeError) Unwrap() error { return e.err }

func describe(err error) error {
	var vErr *charge.ValidationError
	if errors.As(err, &vErr) {
		msg := "invalid charge:"
		for _, v := range vErr.Violations {
			msg += fmt.Sprintf("\n  %s: %s", v.Field, v.Reason)
		}
		return &chargeError{msg: msg, err: err}
	}

	var pErr *charge.ProviderError
	if errors.As(err, &pErr) {
		msg := fmt.Sprintf("pagseguro rejected the charge (status %d):", pErr.StatusCode)
		for _, m := range pErr.Messages {
			msg += fmt.Sprintf("\n  %s %s", m.Code, m.Description)
			if m.ParameterName != "" {
				msg += " [" + m.ParameterName + "]"
			}
		}
		return &chargeError{msg: msg, err: err}
	}

	return err
}
