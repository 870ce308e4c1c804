package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The ID comes from the identity service.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Devices []DeviceUserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
