package generateqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gest-dev/pagseguro-go/internal/usecase/generateqr"
	"github.com/gest-dev/pagseguro-go/internal/usecase/mocks"
)

func TestGenerateQR_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate("000201abc", generateqr.DefaultSize).Return([]byte("png"), nil)

	out, err := generateqr.NewUseCase(gen).Execute(generateqr.Request{Text: " 000201abc\n"})

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), out)
}

func TestGenerateQR_Execute_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  generateqr.Request
		want error
	}{
		{"empty text", generateqr.Request{Text: "  "}, generateqr.ErrEmptyText},
		{"too small", generateqr.Request{Text: "x", Size: 10}, generateqr.ErrInvalidSize},
		{"too large", generateqr.Request{Text: "x", Size: 4096}, generateqr.ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, err := generateqr.NewUseCase(mocks.NewMockGenerator(ctrl)).Execute(tt.req)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
