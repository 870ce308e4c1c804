package entity

import (
	"time"

	"github.com/google/uuid"
)

// Series names a reading collection.
type Series string

const (
	SeriesGlucose Series = "glucose"
	SeriesBolus   Series = "bolus"
	SeriesBasal   Series = "basal"
)

// String returns the string representation of the Series.
func (s Series) String() string {
	return string(s)
}

// GlucoseType tags the context of a blood glucose measurement.
type GlucoseType string

const (
	GlucoseTypeFasting    GlucoseType = "fasting"
	GlucoseTypeNonFasting GlucoseType = "non_fasting"
	GlucoseTypeRandom     GlucoseType = "random"
)

// glucoseTypeCodes maps the firmware codes to glucose types.
var glucoseTypeCodes = map[string]GlucoseType{
	"0": GlucoseTypeFasting,
	"1": GlucoseTypeNonFasting,
	"2": GlucoseTypeRandom,
}

// ParseGlucoseType accepts either a firmware code ("0", "1", "2") or a type name.
func ParseGlucoseType(s string) (GlucoseType, bool) {
	if t, ok := glucoseTypeCodes[s]; ok {
		return t, true
	}
	t := GlucoseType(s)

	return t, t.IsValid()
}

// IsValid checks if the GlucoseType is a valid value.
func (t GlucoseType) IsValid() bool {
	switch t {
	case GlucoseTypeFasting, GlucoseTypeNonFasting, GlucoseTypeRandom:
		return true
	default:
		return false
	}
}

// BolusType tags how a bolus dose was decided.
type BolusType string

const (
	BolusTypeManual     BolusType = "manual"
	BolusTypeWizard     BolusType = "wizard"
	BolusTypeCorrection BolusType = "correction"
)

// bolusTypeCodes maps the firmware codes to bolus types.
var bolusTypeCodes = map[string]BolusType{
	"0": BolusTypeManual,
	"1": BolusTypeWizard,
	"2": BolusTypeCorrection,
}

// ParseBolusType accepts either a firmware code ("0", "1", "2") or a type name.
func ParseBolusType(s string) (BolusType, bool) {
	if t, ok := bolusTypeCodes[s]; ok {
		return t, true
	}
	t := BolusType(s)

	return t, t.IsValid()
}

// IsValid checks if the BolusType is a valid value.
func (t BolusType) IsValid() bool {
	switch t {
	case BolusTypeManual, BolusTypeWizard, BolusTypeCorrection:
		return true
	default:
		return false
	}
}

// ReadingKey is the natural key of a reading. It is unique per series.
type ReadingKey struct {
	UserID   uuid.UUID
	DeviceID uuid.UUID
	Date     time.Time // Calendar date, midnight UTC.
	Time     string    // Time of day; basal readings use their start time.
}

// Reading is implemented by every time-series record.
type Reading interface {
	Key() ReadingKey
	// Amount is the value summed and averaged by reports.
	Amount() float64
}

// GlucoseReading is a single blood glucose sample.
type GlucoseReading struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	DeviceID    uuid.UUID   `json:"device_id"`
	Date        time.Time   `json:"date"`
	ReadingTime string      `json:"reading_time"`
	Value       float64     `json:"value"` // mg/dL
	Type        GlucoseType `json:"type"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (r *GlucoseReading) Key() ReadingKey {
	return ReadingKey{UserID: r.UserID, DeviceID: r.DeviceID, Date: r.Date, Time: r.ReadingTime}
}

func (r *GlucoseReading) Amount() float64 { return r.Value }

// BolusWizard holds the bolus calculator inputs when the wizard was used.
type BolusWizard struct {
	FromWizard         bool    `json:"from_wizard"`
	CarbIntake         float64 `json:"carb_intake"` // grams
	InsulinCarbRatio   float64 `json:"insulin_carb_ratio"`
	InsulinSensitivity float64 `json:"insulin_sensitivity"`
	LowerBGTarget      float64 `json:"lower_bg_target"`
	HigherBGTarget     float64 `json:"higher_bg_target"`
	ActiveInsulin      float64 `json:"active_insulin"`
}

// BolusReading is a discrete insulin dose.
type BolusReading struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	DeviceID  uuid.UUID    `json:"device_id"`
	Date      time.Time    `json:"date"`
	Time      string       `json:"time"`
	Dose      float64      `json:"dose"` // units
	Type      BolusType    `json:"type"`
	Wizard    *BolusWizard `json:"wizard,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (r *BolusReading) Key() ReadingKey {
	return ReadingKey{UserID: r.UserID, DeviceID: r.DeviceID, Date: r.Date, Time: r.Time}
}

func (r *BolusReading) Amount() float64 { return r.Dose }

// CarbIntake returns the recorded carbs, or 0 when none were recorded.
func (r *BolusReading) CarbIntake() float64 {
	if r.Wizard == nil {
		return 0
	}

	return r.Wizard.CarbIntake
}

// BasalReading is a period of continuous background insulin delivery.
type BasalReading struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Flow      float64   `json:"flow"` // units per hour
	CreatedAt time.Time `json:"created_at"`
}

func (r *BasalReading) Key() ReadingKey {
	return ReadingKey{UserID: r.UserID, DeviceID: r.DeviceID, Date: r.Date, Time: r.StartTime}
}

func (r *BasalReading) Amount() float64 { return r.Flow }
