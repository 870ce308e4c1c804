package model

import (
	"time"

	"github.com/google/uuid"
)

// GlucoseReadingModel mirrors the 'glucose_readings' table.
// (user_id, device_id, date, reading_time) is unique so re-uploads are skipped.
type GlucoseReadingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_glucose_readings_sample,priority:1"`
	DeviceID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_glucose_readings_sample,priority:2"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uq_glucose_readings_sample,priority:3"`
	ReadingTime string    `gorm:"type:varchar(8);not null;uniqueIndex:uq_glucose_readings_sample,priority:4"`
	Value       float64   `gorm:"type:numeric(7,2);not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GlucoseReadingModel) TableName() string {
	return "glucose_readings"
}

// BolusReadingModel mirrors the 'bolus_readings' table. Wizard columns are
// NULL when the dose was entered without the wizard.
type BolusReadingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bolus_readings_sample,priority:1"`
	DeviceID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bolus_readings_sample,priority:2"`
	Date               time.Time `gorm:"type:date;not null;uniqueIndex:uq_bolus_readings_sample,priority:3"`
	Time               string    `gorm:"type:varchar(8);not null;uniqueIndex:uq_bolus_readings_sample,priority:4"`
	Dose               float64   `gorm:"type:numeric(7,2);not null"`
	Type               string    `gorm:"type:varchar(20);not null"`
	HasWizard          bool      `gorm:"not null;default:false"`
	FromWizard         *bool
	CarbIntake         *float64 `gorm:"type:numeric(7,2)"`
	InsulinCarbRatio   *float64 `gorm:"type:numeric(7,2)"`
	InsulinSensitivity *float64 `gorm:"type:numeric(7,2)"`
	LowerBGTarget      *float64 `gorm:"column:lower_bg_target;type:numeric(7,2)"`
	HigherBGTarget     *float64 `gorm:"column:higher_bg_target;type:numeric(7,2)"`
	ActiveInsulin      *float64 `gorm:"type:numeric(7,2)"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BolusReadingModel) TableName() string {
	return "bolus_readings"
}

// BasalReadingModel mirrors the 'basal_readings' table. Uniqueness uses the start time.
type BasalReadingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_basal_readings_sample,priority:1"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_basal_readings_sample,priority:2"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_basal_readings_sample,priority:3"`
	StartTime string    `gorm:"type:varchar(8);not null;uniqueIndex:uq_basal_readings_sample,priority:4"`
	EndTime   string    `gorm:"type:varchar(8);not null"`
	Flow      float64   `gorm:"type:numeric(7,3);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BasalReadingModel) TableName() string {
	return "basal_readings"
}

// All lists every model managed by the postgres store, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&DeviceModel{},
		&DeviceUserModel{},
		&GlucoseReadingModel{},
		&BolusReadingModel{},
		&BasalReadingModel{},
	}
}
