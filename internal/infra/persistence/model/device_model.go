package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Telemetry columns are overwritten by every upload.
type DeviceModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SerialNumber        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Model               string     `gorm:"type:varchar(20);not null;default:'standard'"`
	ManufacturedAt      *time.Time `gorm:"type:date"`
	BatteryPercentage   float64    `gorm:"type:numeric(5,2);not null;default:0"`
	ReservoirPercentage float64    `gorm:"type:numeric(6,2);not null;default:0"`
	ReservoirChangedAt  *time.Time
	PatchChangedAt      *time.Time
	ReportedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time `gorm:"index"`

	Users []DeviceUserModel `gorm:"foreignKey:DeviceID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceUserModel is the 'device_users' join table. The composite primary
// key gives the user and device sets their set semantics.
type DeviceUserModel struct {
	DeviceID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceUserModel) TableName() string {
	return "device_users"
}
