package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	grpchandler "github.com/Xausdorf/promptpay-qr/internal/delivery/grpc"
	"github.com/Xausdorf/promptpay-qr/internal/infrastructure/config"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// core only encodes; QR rendering stays in the gateway.
	generateQRUC := generateqr.NewUseCase(nil, logger)
	handler := grpchandler.NewHandler(generateQRUC)

	srv := grpc.NewServer()
	grpchandler.RegisterPayloadEncoderServer(srv, handler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if err := srv.Serve(lis); err != nil {
			logger.Error("serve failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	srv.GracefulStop()
}
