package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpdelivery "github.com/Xausdorf/promptpay-qr/internal/delivery/http"
	"github.com/Xausdorf/promptpay-qr/internal/infrastructure/config"
	"github.com/Xausdorf/promptpay-qr/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/verifypayload"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
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

	level, err := qrgenerator.ParseRecoveryLevel(cfg.QRRecovery)
	if err != nil {
		logger.Error("invalid qr recovery level", "error", err)
		os.Exit(1)
	}
	qrGen := qrgenerator.NewGenerator(cfg.QRSize, level)

	generateQRUC := generateqr.NewUseCase(qrGen, logger)
	verifyPayloadUC := verifypayload.NewUseCase(logger)

	handler := httpdelivery.NewHandler(generateQRUC, verifyPayloadUC)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
