package service

import (
	"github.com/google/uuid"
)

// ProductLabel is the payload encoded in a product QR label.
type ProductLabel struct {
	ProductID uuid.UUID
	Barcode   string
}

// QRCodeService renders and reads product shelf labels.
type QRCodeService interface {
	// GenerateProductLabel returns a PNG QR code for the product.
	GenerateProductLabel(label ProductLabel) ([]byte, error)

	// ParseProductLabel decodes the text content of a scanned label.
	ParseProductLabel(qrData string) (*ProductLabel, error)
}
