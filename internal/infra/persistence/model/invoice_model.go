package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceModel mirrors the 'invoices' table. order_id is the provider's order id and is unique.
type InvoiceModel struct {
	ID            uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID       string                              `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID        uuid.UUID                           `gorm:"type:uuid;index;not null"`
	Customer      datatypes.JSONType[CustomerRecord]  `gorm:"type:jsonb;not null"`
	Items         datatypes.JSONSlice[LineItemRecord] `gorm:"type:jsonb;not null"`
	TotalAmount   decimal.Decimal                     `gorm:"type:numeric(12,2);not null;index"`
	PaymentStatus string                              `gorm:"type:varchar(20);not null;default:'not completed'"`
	CartID        *uuid.UUID                          `gorm:"type:uuid"`
	CreatedAt     time.Time                           `gorm:"index"`
	CapturedAt    *time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
