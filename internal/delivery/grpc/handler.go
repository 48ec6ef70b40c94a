package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Xausdorf/promptpay-qr/internal/domain/promptpay"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr"
)

type Handler struct {
	generateQRUC *generateqr.UseCase
}

func NewHandler(generateQRUC *generateqr.UseCase) *Handler {
	return &Handler{generateQRUC: generateQRUC}
}

func (h *Handler) Encode(_ context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	fields := req.GetFields()

	mobile := fields["mobile"].GetStringValue()
	if mobile == "" {
		return nil, status.Error(codes.InvalidArgument, "mobile is required")
	}

	amount, err := parseAmount(fields["amount"])
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	p, err := h.generateQRUC.Encode(generateqr.Request{
		Mobile: mobile,
		Amount: amount,
	})
	if errors.Is(err, promptpay.ErrInvalidAmount) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode failed: %v", err)
	}

	return wrapperspb.String(p.Content), nil
}

func parseAmount(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return promptpay.ParseAmount(kind.StringValue)
	case *structpb.Value_NumberValue:
		return promptpay.AmountFromFloat(kind.NumberValue)
	default:
		return decimal.Zero, errors.New("amount must be a string or a number")
	}
}
