// Package qrcode renders product shelf labels as QR codes.
package qrcode

import (
	"encoding/json"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	labelType   = "product"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a product label.
type LabelData struct {
	ProductID string `json:"product_id"`
	Barcode   string `json:"barcode,omitempty"`
	Type      string `json:"type"`
}

// NewQRCodeServiceFromConfig builds the service from the qrcode section, with 256px and level M as defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductLabel renders the label as a PNG.
func (s *qrcodeService) GenerateProductLabel(label service.ProductLabel) ([]byte, error) {
	jsonData, err := json.Marshal(LabelData{
		ProductID: label.ProductID.String(),
		Barcode:   label.Barcode,
		Type:      labelType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductLabel reads the text of a scanned label.
func (s *qrcodeService) ParseProductLabel(qrData string) (*service.ProductLabel, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label data")
	}

	if data.Type != labelType {
		return nil, errors.Errorf("invalid label type: %s", data.Type)
	}

	productID, err := uuid.Parse(data.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse product ID")
	}

	return &service.ProductLabel{ProductID: productID, Barcode: data.Barcode}, nil
}
