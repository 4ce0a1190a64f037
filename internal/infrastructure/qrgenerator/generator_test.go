package qrgenerator_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gest-dev/pagseguro-go/internal/infrastructure/qrgenerator"
)

const pixText = "00020101021226830014br.gov.bcb.pix2561api.pagseguro.com/pix/v2/cobv/4B3E5D6F52040000530398654041.005802BR5913PagSeguro6009Sao Paulo62070503***6304ABCD"

func TestGenerator_Generate(t *testing.T) {
	g := qrgenerator.NewGenerator()

	out, err := g.Generate(pixText, 256)

	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerator_Generate_Empty(t *testing.T) {
	g := qrgenerator.NewGenerator()

	_, err := g.Generate("", 256)

	assert.Error(t, err)
}
