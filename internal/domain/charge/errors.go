package charge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrAlreadySent = errors.New("charge already sent")
)

// Violation is a single failed rule for one field.
type Violation struct {
	Field  string `json:"field"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

// ValidationError carries every rule that failed for a field group.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the violation recorded for field, if any.
func (e *ValidationError) Field(field string) (Violation, bool) {
	for _, v := range e.Violations {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

// TransportError is returned when the request never produced a usable
// provider answer: connection failures, or a non-2xx status whose body is
// not a PagSeguro error document.
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("pagseguro transport: %v", e.Err)
	}
	return fmt.Sprintf("pagseguro transport: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type ProviderMessage struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	ParameterName string `json:"parameter_name,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ProviderError is a structured rejection returned by PagSeguro.
type ProviderError struct {
	StatusCode int
	Messages   []ProviderMessage
	Body       []byte
}

func (e *ProviderError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("pagseguro rejected request: status %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		msg := m.Code + " " + m.Description
		if m.ParameterName != "" {
			msg += " (" + m.ParameterName + ")"
		}
		parts = append(parts, msg)
	}
	return fmt.Sprintf("pagseguro rejected request: status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}
