package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"
)

type Generator struct {
	level qr.RecoveryLevel
}

// NewGenerator uses medium error correction, which keeps PIX codes readable
// from phone screens.
func NewGenerator() *Generator {
	return &Generator{level: qr.Medium}
}

func (g *Generator) Generate(content string, size int) ([]byte, error) {
	return qr.Encode(content, g.level, size)
}
