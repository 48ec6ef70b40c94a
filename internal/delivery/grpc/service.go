package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProtoFile is relative to the repository's proto/ directory.
const (
	ServiceName      = "promptpay.v1.PayloadEncoder"
	EncodeFullMethod = "/" + ServiceName + "/Encode"
	ProtoFile        = "promptpay/v1/encoder.proto"
)

// PayloadEncoderServer takes a Struct with "mobile" (string) and "amount"
// (string or number) and answers with the payload string.
type PayloadEncoderServer interface {
	Encode(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error)
}

var payloadEncoderServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PayloadEncoderServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Encode",
			Handler:    encodeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

func RegisterPayloadEncoderServer(s grpc.ServiceRegistrar, srv PayloadEncoderServer) {
	s.RegisterService(&payloadEncoderServiceDesc, srv)
}

func encodeHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayloadEncoderServer).Encode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncodeFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayloadEncoderServer).Encode(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
