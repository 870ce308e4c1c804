// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the hardware variant of an insulin pump.
type DeviceModel string

const (
	// DeviceModelStandard is the default pump model.
	DeviceModelStandard DeviceModel = "standard"
	// DeviceModelPro is the pump model with the bolus wizard.
	DeviceModelPro DeviceModel = "pro"
)

// String returns the string representation of the DeviceModel.
func (m DeviceModel) String() string {
	return string(m)
}

// IsValid checks if the DeviceModel is a valid value.
func (m DeviceModel) IsValid() bool {
	switch m {
	case DeviceModelStandard, DeviceModelPro:
		return true
	default:
		return false
	}
}

// DeviceTelemetry is the device state reported with every upload.
// It is replaced as a whole by the latest upload (last write wins).
type DeviceTelemetry struct {
	BatteryPercentage   float64   `json:"battery_percentage"`   // Remaining battery, 0-100.
	ReservoirPercentage float64   `json:"reservoir_percentage"` // Remaining insulin in the reservoir, 0-100.
	ReservoirChangedAt  time.Time `json:"reservoir_changed_at"` // Last reservoir replacement.
	PatchChangedAt      time.Time `json:"patch_changed_at"`     // Last patch replacement.
	ReportedAt          time.Time `json:"reported_at"`          // Device clock at upload time.
}

// Device represents an insulin pump, identified by its serial number.
type Device struct {
	ID             uuid.UUID       `json:"id"`                        // The Global Unique Identifier (GUID) for the device.
	SerialNumber   string          `json:"serial_number"`             // Serial number printed on the pump. Unique.
	Model          DeviceModel     `json:"model"`                     // Hardware variant.
	ManufacturedAt *time.Time      `json:"manufactured_at,omitempty"` // Manufacture date, if known.
	Telemetry      DeviceTelemetry `json:"telemetry"`                 // Latest reported state.
	UserIDs        []uuid.UUID     `json:"user_ids"`                  // Users that have uploaded from this device.
	CreatedAt      time.Time       `json:"created_at"`                // Timestamp of when this device was registered.
	UpdatedAt      time.Time       `json:"updated_at"`                // Timestamp of the last modification.
}

// HasUser reports whether userID is associated with the device.
func (d *Device) HasUser(userID uuid.UUID) bool {
	return slices.Contains(d.UserIDs, userID)
}

// AddUser associates userID with the device. It returns false if the
// association already existed.
func (d *Device) AddUser(userID uuid.UUID) bool {
	if d.HasUser(userID) {
		return false
	}
	d.UserIDs = append(d.UserIDs, userID)

	return true
}

// ApplyTelemetry overwrites the device state with the latest upload and
// links the uploading user.
func (d *Device) ApplyTelemetry(userID uuid.UUID, telemetry DeviceTelemetry, now time.Time) {
	d.Telemetry = telemetry
	d.AddUser(userID)
	d.UpdatedAt = now
}
