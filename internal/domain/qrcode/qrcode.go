package qrcode

//go:generate mockgen -source=qrcode.go -destination=../../usecase/mocks/mock_qrcode.go -package=mocks

// Generator renders content as a square PNG of size pixels.
type Generator interface {
	Generate(content string, size int) ([]byte, error)
}
