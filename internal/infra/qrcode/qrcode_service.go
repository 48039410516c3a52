// Package qrcode renders tracking numbers as scannable QR codes.
package qrcode

import (
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"courier/config"
	"courier/internal/domain/service"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	var level qrcode.RecoveryLevel
	switch levelName {
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
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTrackingQR renders a PNG QR code whose payload is the tracking
// number itself, so any scanner can feed it to the public tracking endpoint.
func (s *qrcodeService) GenerateTrackingQR(trackingNumber string) ([]byte, error) {
	png, err := qrcode.Encode(trackingNumber, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tracking QR code")
	}

	return png, nil
}
