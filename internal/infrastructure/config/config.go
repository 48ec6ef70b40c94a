package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultHTTPAddr   = ":8080"
	defaultGRPCAddr   = ":50051"
	defaultQRSize     = 256
	defaultQRRecovery = "medium"
)

type Config struct {
	HTTPAddr   string
	GRPCAddr   string
	QRSize     int
	QRRecovery string
}

type fileConfig struct {
	HTTPAddr   string `toml:"http_addr"`
	GRPCAddr   string `toml:"grpc_addr"`
	QRSize     int    `toml:"qr_size"`
	QRRecovery string `toml:"qr_recovery"`
}

// Load applies, in order: defaults, the TOML file named by CONFIG_FILE (if
// set), then individual environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:   defaultHTTPAddr,
		GRPCAddr:   defaultGRPCAddr,
		QRSize:     defaultQRSize,
		QRRecovery: defaultQRRecovery,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.GRPCAddr = getEnv("GRPC_ADDR", cfg.GRPCAddr)
	cfg.QRRecovery = getEnv("QR_RECOVERY", cfg.QRRecovery)

	if v := os.Getenv("QR_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse QR_SIZE: %w", err)
		}
		cfg.QRSize = size
	}

	if cfg.QRSize <= 0 {
		return nil, fmt.Errorf("qr size must be positive, got %d", cfg.QRSize)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}

	if meta.IsDefined("http_addr") {
		cfg.HTTPAddr = strings.TrimSpace(raw.HTTPAddr)
	}
	if meta.IsDefined("grpc_addr") {
		cfg.GRPCAddr = strings.TrimSpace(raw.GRPCAddr)
	}
	if meta.IsDefined("qr_size") {
		cfg.QRSize = raw.QRSize
	}
	if meta.IsDefined("qr_recovery") {
		cfg.QRRecovery = strings.TrimSpace(raw.QRRecovery)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
