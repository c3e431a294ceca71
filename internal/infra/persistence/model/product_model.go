package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Barcode is nullable so hand-made products can omit it.
type ProductModel struct {
	ID                     uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Barcode                *string           `gorm:"type:varchar(64);uniqueIndex"`
	Name                   string            `gorm:"type:varchar(255);not null"`
	Price                  decimal.Decimal   `gorm:"type:numeric(12,2);not null;default:0"`
	Brand                  string            `gorm:"type:varchar(255)"`
	Picture                string            `gorm:"type:text"`
	Category               string            `gorm:"type:varchar(255);index"`
	NutritionalInformation datatypes.JSONMap `gorm:"type:jsonb"`
	AvailableQuantity      int               `gorm:"not null;default:0;index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
