package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/usecase/checkout"
	"github.com/gest-dev/pagseguro-go/internal/usecase/generateqr"
	"github.com/gest-dev/pagseguro-go/internal/usecase/idempotency"
)

const maxRequestBytes = 1 << 20

// Charger creates charges; either the checkout use case or its idempotent
// wrapper.
type Charger interface {
	Execute(ctx context.Context, req checkout.Request) (*charge.Order, error)
}

type Handler struct {
	chargeUC     Charger
	generateQRUC *generateqr.UseCase
	logger       *slog.Logger
}

func NewHandler(chargeUC Charger, generateQRUC *generateqr.UseCase, logger *slog.Logger) *Handler {
	return &Handler{
		chargeUC:     chargeUC,
		generateQRUC: generateQRUC,
		logger:       logger,
	}
}

type errorResponse struct {
	Error          string                   `json:"error"`
	Violations     []charge.Violation       `json:"violations,omitempty"`
	ProviderStatus int                      `json:"provider_status,omitempty"`
	Messages       []charge.ProviderMessage `json:"messages,omitempty"`
}

func (h *Handler) HandlePixCharge(w http.ResponseWriter, r *http.Request) {
	h.handleCharge(w, r, charge.KindPix)
}

func (h *Handler) HandleBoletoCharge(w http.ResponseWriter, r *http.Request) {
	h.handleCharge(w, r, charge.KindBoleto)
}

func (h *Handler) handleCharge(w http.ResponseWriter, r *http.Request, kind charge.Kind) {
	idempotencyKey := r.Header.Get("X-Idempotency-Key")
	if idempotencyKey == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "X-Idempotency-Key header required"})
		return
	}
	if _, err := uuid.Parse(idempotencyKey); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "X-Idempotency-Key must be a UUID"})
		return
	}

	var req checkout.Charge
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	order, err := h.chargeUC.Execute(r.Context(), checkout.Request{
		Kind:           kind,
		IdempotencyKey: idempotencyKey,
		Charge:         req,
	})
	if err != nil {
		h.writeChargeError(w, kind, err)
		return
	}

	h.logger.Info("charge created", "kind", kind, "order_id", order.ID, "reference_id", order.ReferenceID)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) writeChargeError(w http.ResponseWriter, kind charge.Kind, err error) {
	var (
		vErr *charge.ValidationError
		pErr *charge.ProviderError
		tErr *charge.TransportError
	)
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      charge.ErrValidation.Error(),
			Violations: vErr.Violations,
		})
	case errors.As(err, &pErr):
		h.logger.Warn("pagseguro rejected charge", "kind", kind, "status", pErr.StatusCode, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:          "pagseguro rejected the charge",
			ProviderStatus: pErr.StatusCode,
			Messages:       pErr.Messages,
		})
	case errors.As(err, &tErr):
		h.logger.Error("pagseguro unreachable", "kind", kind, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:          "pagseguro unavailable",
			ProviderStatus: tErr.StatusCode,
		})
	case errors.Is(err, charge.ErrAlreadySent), errors.Is(err, idempotency.ErrKeyReused):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, idempotency.ErrMissingKey):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("charge failed", "kind", kind, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid size"})
			return
		}
		size = n
	}

	png, err := h.generateQRUC.Execute(generateqr.Request{
		Text: r.URL.Query().Get("text"),
		Size: size,
	})
	switch {
	case errors.Is(err, generateqr.ErrEmptyText), errors.Is(err, generateqr.ErrInvalidSize):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logger.Error("qr generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "qr generation failed"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
