package generateqr_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/promptpay-qr/internal/domain/promptpay"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr/mocks"
)

const expectedPayload = "00020101021129370016A0000006770101110113006662165398653037645406100.005802TH6304AB91"

func TestGenerateQRUseCase_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockRenderer(ctrl)
	uc := generateqr.NewUseCase(renderer, slog.New(slog.DiscardHandler))

	png := []byte{0x89, 'P', 'N', 'G'}
	renderer.EXPECT().Render(expectedPayload).Return(png, nil)

	resp, err := uc.Execute(generateqr.Request{
		Mobile: "0621653986",
		Amount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.Equal(t, expectedPayload, resp.Content)
	assert.Equal(t, "0066621653986", resp.Identifier)
	assert.Equal(t, "100.00", resp.Amount)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, png, resp.PNG)
}

func TestGenerateQRUseCase_Execute_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockRenderer(ctrl)
	uc := generateqr.NewUseCase(renderer, slog.New(slog.DiscardHandler))

	renderErr := errors.New("content too long")
	renderer.EXPECT().Render(gomock.Any()).Return(nil, renderErr)

	_, err := uc.Execute(generateqr.Request{
		Mobile: "0621653986",
		Amount: decimal.NewFromInt(100),
	})

	require.ErrorIs(t, err, renderErr)
}

func TestGenerateQRUseCase_Execute_InvalidAmountSkipsRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockRenderer(ctrl)
	uc := generateqr.NewUseCase(renderer, slog.New(slog.DiscardHandler))

	resp, err := uc.Execute(generateqr.Request{
		Mobile: "0621653986",
		Amount: decimal.NewFromInt(-100),
	})

	require.ErrorIs(t, err, promptpay.ErrInvalidAmount)
	assert.Nil(t, resp)
}

func TestGenerateQRUseCase_Encode_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := generateqr.NewUseCase(mocks.NewMockRenderer(ctrl), slog.New(slog.DiscardHandler))
	req := generateqr.Request{Mobile: "0812345678", Amount: decimal.RequireFromString("99.5")}

	first, err := uc.Encode(req)
	require.NoError(t, err)
	second, err := uc.Encode(req)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, "99.50", first.Amount)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateQRUseCase_NilRenderer(t *testing.T) {
	uc := generateqr.NewUseCase(nil, slog.New(slog.DiscardHandler))
	req := generateqr.Request{Mobile: "0621653986", Amount: decimal.NewFromInt(100)}

	p, err := uc.Encode(req)
	require.NoError(t, err)
	assert.Equal(t, expectedPayload, p.Content)

	resp, err := uc.Execute(req)
	require.ErrorIs(t, err, generateqr.ErrRendererUnavailable)
	assert.Nil(t, resp)
}
