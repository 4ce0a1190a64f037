package generateqr

import (
	"errors"
	"fmt"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
	"github.com/gest-dev/pagseguro-go/internal/domain/qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

var (
	ErrEmptyText   = errors.New("qr text required")
	ErrInvalidSize = fmt.Errorf("qr size must be between %d and %d", MinSize, MaxSize)
)

type Request struct {
	Text string
	Size int
}

type UseCase struct {
	generator qrcode.Generator
}

func NewUseCase(generator qrcode.Generator) *UseCase {
	return &UseCase{generator: generator}
}

// Execute renders a PIX copy-and-paste code as PNG. A zero size means
// DefaultSize.
func (uc *UseCase) Execute(req Request) ([]byte, error) {
	text := charge.Sanitize(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	size := req.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	return uc.generator.Generate(text, size)
}
