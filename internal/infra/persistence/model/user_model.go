package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	PhoneNumber  string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255)"`
	ZipCode      string    `gorm:"type:varchar(20)"`
	City         string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []RoleModel `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' reference table.
type RoleModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(32);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
