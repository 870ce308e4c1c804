// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Upload payload ---
//
// Field names follow the pump firmware, so they are not idiomatic JSON.

// UploadPayload is one batch uploaded by a pump.
type UploadPayload struct {
	Device  *DevicePayload      `json:"device" validate:"required"`
	Glucose []GlucoseDayPayload `json:"Glucose" validate:"dive"`
	Insulin []InsulinDayPayload `json:"Insulin" validate:"dive"`
}

// DevicePayload is the device state reported with an upload.
// Every field is required; pointers let 0 through as a real value.
type DevicePayload struct {
	SerialNumber       string   `json:"deviceId" validate:"required"`
	BatteryPercentage  *float64 `json:"batteryPercentage" validate:"required,gte=0,lte=100"`
	PatchChangedAt     *string  `json:"dateAndTimeOfPachChange" validate:"required"`
	ReservoirChangedAt *string  `json:"dateAndTimeOfReservoirChange" validate:"required"`
	ReportedAt         *string  `json:"date" validate:"required"`
	TotalReservoir     *float64 `json:"totalReservoir" validate:"required,gte=0,lte=100"`
}

// GlucoseDayPayload groups the glucose samples of one day.
type GlucoseDayPayload struct {
	Date    string                 `json:"date" validate:"required"`
	Samples []GlucoseSamplePayload `json:"BgValue" validate:"dive"`
}

// GlucoseSamplePayload is one glucose sample.
type GlucoseSamplePayload struct {
	ReadingTime string   `json:"readingTime" validate:"required"`
	Value       *float64 `json:"glucoseReading" validate:"required,gte=0"`
	Type        string   `json:"type" validate:"required"`
}

// InsulinDayPayload groups the insulin deliveries of one day.
type InsulinDayPayload struct {
	Date  string             `json:"date" validate:"required"`
	Bolus []BolusDosePayload `json:"Bolus" validate:"dive"`
	Basal []BasalRatePayload `json:"Basal" validate:"dive"`
}

// BolusDosePayload is one bolus dose. Wizard fields are present only when the
// bolus calculator was used.
type BolusDosePayload struct {
	Time               string   `json:"time" validate:"required"`
	Unit               *float64 `json:"unit" validate:"required,gte=0"`
	Type               string   `json:"type" validate:"required"`
	FromWizard         *bool    `json:"isFrom"`
	CarbIntake         *float64 `json:"carbIntake" validate:"omitempty,gte=0"`
	InsulinRatio       *float64 `json:"insulinRatio" validate:"omitempty,gte=0"`
	InsulinSensitivity *float64 `json:"insulinSensitivity" validate:"omitempty,gte=0"`
	LowerBGRange       *float64 `json:"lowerBgRange" validate:"omitempty,gte=0"`
	HigherBGRange      *float64 `json:"higherBgRange" validate:"omitempty,gte=0"`
	ActiveInsulin      *float64 `json:"activeInsulin" validate:"omitempty,gte=0"`
}

// BasalRatePayload is one basal delivery period.
type BasalRatePayload struct {
	StartTime string   `json:"startTime" validate:"required"`
	EndTime   string   `json:"endTime" validate:"required"`
	Flow      *float64 `json:"flow" validate:"required,gte=0"`
}

// --- Output DTOs ---

// SeriesCounts reports what happened to the samples of one series.
type SeriesCounts struct {
	Submitted int `json:"submitted"`
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"` // Duplicates of samples already stored.
}

// IngestionResult is returned after a committed upload.
type IngestionResult struct {
	Device  *entity.Device `json:"device"`
	Glucose SeriesCounts   `json:"glucose"`
	Bolus   SeriesCounts   `json:"bolus"`
	Basal   SeriesCounts   `json:"basal"`
}

// IngestionUsecase defines the interface for device uploads.
type IngestionUsecase interface {
	// Ingest validates the payload and stores it atomically: device telemetry,
	// the user/device link and all readings commit together or not at all.
	Ingest(ctx context.Context, userID uuid.UUID, payload *UploadPayload) (*IngestionResult, error)
}
