package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportModel mirrors the 'reports' table. Data holds the typed aggregation as JSON.
type ReportModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type        string         `gorm:"type:varchar(20);index;not null"`
	Data        datatypes.JSON `gorm:"type:jsonb;not null"`
	GeneratedBy uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
