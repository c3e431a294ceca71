package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel mirrors the 'carts' table. The unique user_id keeps one cart per user.
type CartModel struct {
	ID        uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                           `gorm:"type:uuid;uniqueIndex;not null"`
	Items     datatypes.JSONSlice[LineItemRecord] `gorm:"type:jsonb;not null"`
	Version   int                                 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
