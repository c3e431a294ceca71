package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CheckoutIntentModel mirrors the 'checkout_intents' table.
type CheckoutIntentModel struct {
	ID              uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID          uuid.UUID                           `gorm:"type:uuid;index;not null"`
	UserID          uuid.UUID                           `gorm:"type:uuid;not null"`
	Customer        datatypes.JSONType[CustomerRecord]  `gorm:"type:jsonb;not null"`
	Items           datatypes.JSONSlice[LineItemRecord] `gorm:"type:jsonb;not null"`
	Total           decimal.Decimal                     `gorm:"type:numeric(12,2);not null"`
	ProviderOrderID *string                             `gorm:"type:varchar(64);uniqueIndex"`
	State           string                              `gorm:"type:varchar(32);index:idx_checkout_intents_state_updated;not null"`
	LastError       string                              `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time `gorm:"index:idx_checkout_intents_state_updated"`
}

// TableName explicitly sets the table name for GORM.
func (CheckoutIntentModel) TableName() string {
	return "checkout_intents"
}
