package qrgenerator

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

type Generator struct {
	size  int
	level qr.RecoveryLevel
}

func NewGenerator(size int, level qr.RecoveryLevel) *Generator {
	return &Generator{size: size, level: level}
}

func (g *Generator) Render(payload string) ([]byte, error) {
	return qr.Encode(payload, g.level, g.size)
}

func ParseRecoveryLevel(s string) (qr.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return qr.Low, nil
	case "", "medium":
		return qr.Medium, nil
	case "high":
		return qr.High, nil
	case "highest":
		return qr.Highest, nil
	default:
		return qr.Medium, fmt.Errorf("unknown qr recovery level %q", s)
	}
}
