package qrcode

import (
	"fmt"
	"strings"

	"atlas/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProfileQR generates a PNG QR code pointing at the public profile page
func (s *qrcodeService) GenerateProfileQR(slug string) ([]byte, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	url := fmt.Sprintf("%s/profiles/%s", s.baseURL, slug)

	qrBytes, err := qrcode.Encode(url, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return qrBytes, nil
}
