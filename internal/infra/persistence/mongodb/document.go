package mongodb

import (
	"time"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// UUIDs are stored in their canonical string form.

type telemetryDocument struct {
	BatteryPercentage   float64   `bson:"battery_percentage"`
	ReservoirPercentage float64   `bson:"reservoir_percentage"`
	ReservoirChangedAt  time.Time `bson:"reservoir_changed_at"`
	PatchChangedAt      time.Time `bson:"patch_changed_at"`
	ReportedAt          time.Time `bson:"reported_at"`
}

type deviceDocument struct {
	ID             string            `bson:"_id"`
	SerialNumber   string            `bson:"serial_number"`
	Model          string            `bson:"model"`
	ManufacturedAt *time.Time        `bson:"manufactured_at,omitempty"`
	Telemetry      telemetryDocument `bson:"telemetry"`
	UserIDs        []string          `bson:"user_ids"`
	CreatedAt      time.Time         `bson:"created_at"`
	UpdatedAt      time.Time         `bson:"updated_at"`
}

type userDocument struct {
	ID        string    `bson:"_id"`
	FirstName string    `bson:"first_name"`
	LastName  string    `bson:"last_name"`
	Email     string    `bson:"email"`
	DeviceIDs []string  `bson:"device_ids"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type glucoseDocument struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	DeviceID    string    `bson:"device_id"`
	Date        time.Time `bson:"date"`
	ReadingTime string    `bson:"reading_time"`
	Value       float64   `bson:"value"`
	Type        string    `bson:"type"`
	CreatedAt   time.Time `bson:"created_at"`
}

type wizardDocument struct {
	FromWizard         bool    `bson:"from_wizard"`
	CarbIntake         float64 `bson:"carb_intake"`
	InsulinCarbRatio   float64 `bson:"insulin_carb_ratio"`
	InsulinSensitivity float64 `bson:"insulin_sensitivity"`
	LowerBGTarget      float64 `bson:"lower_bg_target"`
	HigherBGTarget     float64 `bson:"higher_bg_target"`
	ActiveInsulin      float64 `bson:"active_insulin"`
}

type bolusDocument struct {
	ID        string          `bson:"_id"`
	UserID    string          `bson:"user_id"`
	DeviceID  string          `bson:"device_id"`
	Date      time.Time       `bson:"date"`
	Time      string          `bson:"time"`
	Dose      float64         `bson:"dose"`
	Type      string          `bson:"type"`
	Wizard    *wizardDocument `bson:"wizard,omitempty"`
	CreatedAt time.Time       `bson:"created_at"`
}

type basalDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	DeviceID  string    `bson:"device_id"`
	Date      time.Time `bson:"date"`
	StartTime string    `bson:"start_time"`
	EndTime   string    `bson:"end_time"`
	Flow      float64   `bson:"flow"`
	CreatedAt time.Time `bson:"created_at"`
}

// --- Mapper Functions ---

func toDeviceDomain(doc *deviceDocument) *entity.Device {
	return &entity.Device{
		ID:             parseUUID(doc.ID),
		SerialNumber:   doc.SerialNumber,
		Model:          entity.DeviceModel(doc.Model),
		ManufacturedAt: doc.ManufacturedAt,
		Telemetry: entity.DeviceTelemetry{
			BatteryPercentage:   doc.Telemetry.BatteryPercentage,
			ReservoirPercentage: doc.Telemetry.ReservoirPercentage,
			ReservoirChangedAt:  doc.Telemetry.ReservoirChangedAt,
			PatchChangedAt:      doc.Telemetry.PatchChangedAt,
			ReportedAt:          doc.Telemetry.ReportedAt,
		},
		UserIDs:   parseUUIDs(doc.UserIDs),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.Device) *deviceDocument {
	return &deviceDocument{
		ID:             device.ID.String(),
		SerialNumber:   device.SerialNumber,
		Model:          device.Model.String(),
		ManufacturedAt: device.ManufacturedAt,
		Telemetry:      fromTelemetryDomain(device.Telemetry),
		UserIDs:        formatUUIDs(device.UserIDs),
		CreatedAt:      device.CreatedAt,
		UpdatedAt:      device.UpdatedAt,
	}
}

func fromTelemetryDomain(t entity.DeviceTelemetry) telemetryDocument {
	return telemetryDocument{
		BatteryPercentage:   t.BatteryPercentage,
		ReservoirPercentage: t.ReservoirPercentage,
		ReservoirChangedAt:  t.ReservoirChangedAt,
		PatchChangedAt:      t.PatchChangedAt,
		ReportedAt:          t.ReportedAt,
	}
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:        parseUUID(doc.ID),
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Email:     doc.Email,
		DeviceIDs: parseUUIDs(doc.DeviceIDs),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toGlucoseDomain(doc *glucoseDocument) *entity.GlucoseReading {
	return &entity.GlucoseReading{
		ID:          parseUUID(doc.ID),
		UserID:      parseUUID(doc.UserID),
		DeviceID:    parseUUID(doc.DeviceID),
		Date:        doc.Date.UTC(),
		ReadingTime: doc.ReadingTime,
		Value:       doc.Value,
		Type:        entity.GlucoseType(doc.Type),
		CreatedAt:   doc.CreatedAt,
	}
}

func fromGlucoseDomain(r *entity.GlucoseReading) *glucoseDocument {
	return &glucoseDocument{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		DeviceID:    r.DeviceID.String(),
		Date:        r.Date,
		ReadingTime: r.ReadingTime,
		Value:       r.Value,
		Type:        string(r.Type),
		CreatedAt:   r.CreatedAt,
	}
}

func toBolusDomain(doc *bolusDocument) *entity.BolusReading {
	reading := &entity.BolusReading{
		ID:        parseUUID(doc.ID),
		UserID:    parseUUID(doc.UserID),
		DeviceID:  parseUUID(doc.DeviceID),
		Date:      doc.Date.UTC(),
		Time:      doc.Time,
		Dose:      doc.Dose,
		Type:      entity.BolusType(doc.Type),
		CreatedAt: doc.CreatedAt,
	}
	if w := doc.Wizard; w != nil {
		reading.Wizard = &entity.BolusWizard{
			FromWizard:         w.FromWizard,
			CarbIntake:         w.CarbIntake,
			InsulinCarbRatio:   w.InsulinCarbRatio,
			InsulinSensitivity: w.InsulinSensitivity,
			LowerBGTarget:      w.LowerBGTarget,
			HigherBGTarget:     w.HigherBGTarget,
			ActiveInsulin:      w.ActiveInsulin,
		}
	}

	return reading
}

func fromBolusDomain(r *entity.BolusReading) *bolusDocument {
	doc := &bolusDocument{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		DeviceID:  r.DeviceID.String(),
		Date:      r.Date,
		Time:      r.Time,
		Dose:      r.Dose,
		Type:      string(r.Type),
		CreatedAt: r.CreatedAt,
	}
	if w := r.Wizard; w != nil {
		doc.Wizard = &wizardDocument{
			FromWizard:         w.FromWizard,
			CarbIntake:         w.CarbIntake,
			InsulinCarbRatio:   w.InsulinCarbRatio,
			InsulinSensitivity: w.InsulinSensitivity,
			LowerBGTarget:      w.LowerBGTarget,
			HigherBGTarget:     w.HigherBGTarget,
			ActiveInsulin:      w.ActiveInsulin,
		}
	}

	return doc
}

func toBasalDomain(doc *basalDocument) *entity.BasalReading {
	return &entity.BasalReading{
		ID:        parseUUID(doc.ID),
		UserID:    parseUUID(doc.UserID),
		DeviceID:  parseUUID(doc.DeviceID),
		Date:      doc.Date.UTC(),
		StartTime: doc.StartTime,
		EndTime:   doc.EndTime,
		Flow:      doc.Flow,
		CreatedAt: doc.CreatedAt,
	}
}

func fromBasalDomain(r *entity.BasalReading) *basalDocument {
	return &basalDocument{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		DeviceID:  r.DeviceID.String(),
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Flow:      r.Flow,
		CreatedAt: r.CreatedAt,
	}
}

// parseUUID returns uuid.Nil for malformed ids instead of failing the whole read.
func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func parseUUIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		ids = append(ids, parseUUID(v))
	}

	return ids
}

func formatUUIDs(ids []uuid.UUID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	return values
}
