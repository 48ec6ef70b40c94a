package verifypayload

import (
	"log/slog"
	"strings"

	"github.com/Xausdorf/promptpay-qr/internal/domain/promptpay"
)

type UseCase struct {
	logger *slog.Logger
}

func NewUseCase(logger *slog.Logger) *UseCase {
	return &UseCase{logger: logger.With(slog.String("usecase", "verifypayload"))}
}

func (uc *UseCase) Execute(payload string) (*promptpay.Payload, error) {
	p, err := promptpay.Decode(strings.TrimSpace(payload))
	if err != nil {
		uc.logger.Warn("payload rejected", "error", err)
		return nil, err
	}
	return p, nil
}
