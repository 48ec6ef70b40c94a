package generateqr

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/promptpay-qr/internal/domain/promptpay"
	"github.com/Xausdorf/promptpay-qr/internal/domain/qrcode"
)

var ErrRendererUnavailable = errors.New("qr renderer unavailable")

type Request struct {
	Mobile string
	Amount decimal.Decimal
}

type Payload struct {
	ID         uuid.UUID
	Identifier string
	Amount     string
	Content    string
}

type Response struct {
	Payload
	PNG []byte
}

type UseCase struct {
	renderer qrcode.Renderer
	logger   *slog.Logger
}

// NewUseCase builds the use case. renderer may be nil for encode-only
// deployments; Execute then fails with ErrRendererUnavailable.
func NewUseCase(renderer qrcode.Renderer, logger *slog.Logger) *UseCase {
	return &UseCase{
		renderer: renderer,
		logger:   logger.With(slog.String("usecase", "generateqr")),
	}
}

// Encode assembles the payload without rendering it.
func (uc *UseCase) Encode(req Request) (*Payload, error) {
	content, err := promptpay.EncodeAmount(req.Mobile, req.Amount)
	if err != nil {
		if errors.Is(err, promptpay.ErrInvalidAmount) {
			uc.logger.Warn("invalid amount", "amount", req.Amount.String(), "error", err)
		} else {
			uc.logger.Error("payload encode failed", "mobile", req.Mobile, "error", err)
		}
		return nil, err
	}

	p := &Payload{
		ID:         uuid.New(),
		Identifier: promptpay.NormalizeMobile(req.Mobile),
		Amount:     promptpay.FormatAmount(req.Amount),
		Content:    content,
	}
	uc.logger.Info("payload generated", "id", p.ID.String(), "payload", p.Content)
	return p, nil
}

func (uc *UseCase) Execute(req Request) (*Response, error) {
	if uc.renderer == nil {
		return nil, ErrRendererUnavailable
	}

	p, err := uc.Encode(req)
	if err != nil {
		return nil, err
	}

	png, err := uc.renderer.Render(p.Content)
	if err != nil {
		uc.logger.Error("qr render failed", "id", p.ID.String(), "error", err)
		return nil, fmt.Errorf("render qr: %w", err)
	}

	return &Response{Payload: *p, PNG: png}, nil
}
