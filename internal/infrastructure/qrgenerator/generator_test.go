package qrgenerator_test

import (
	"bytes"
	"image/png"
	"testing"

	qr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/promptpay-qr/internal/infrastructure/qrgenerator"
)

const payload = "00020101021129370016A0000006770101110113006662165398653037645406100.005802TH6304AB91"

func TestGenerator_Render(t *testing.T) {
	gen := qrgenerator.NewGenerator(256, qr.Medium)

	data, err := gen.Render(payload)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerator_Render_Deterministic(t *testing.T) {
	gen := qrgenerator.NewGenerator(128, qr.High)

	first, err := gen.Render(payload)
	require.NoError(t, err)
	second, err := gen.Render(payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := map[string]qr.RecoveryLevel{
		"":        qr.Medium,
		"low":     qr.Low,
		"Medium":  qr.Medium,
		" high ":  qr.High,
		"HIGHEST": qr.Highest,
	}
	for in, want := range tests {
		got, err := qrgenerator.ParseRecoveryLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := qrgenerator.ParseRecoveryLevel("extreme")
	require.Error(t, err)
}
