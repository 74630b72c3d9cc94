package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_StorefrontURL(t *testing.T) {
	svc := NewQRCodeService(newTestConfig(256, "M", "https://shop.example.com/"))

	assert.Equal(t, "https://shop.example.com/Livraria", svc.StorefrontURL("Livraria"))
	assert.Equal(t, "https://shop.example.com/Casa%20Verde", svc.StorefrontURL("Casa Verde"))
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil)

	assert.Equal(t, "http://localhost:8080/Livraria", svc.StorefrontURL("Livraria"))
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(newTestConfig(size, "M", "https://shop.example.com"))

		qrBytes, err := svc.GenerateStorefrontQR("Livraria")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateStorefrontQR_EmptyName(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.GenerateStorefrontQR("  ")
	assert.Error(t, err)
}
