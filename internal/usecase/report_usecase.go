package usecase

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportUsecase defines the dashboard aggregations over a user's readings.
// Absent data yields zeros, never an error.
type ReportUsecase interface {
	// Summary returns glucose and insulin totals and averages in the window.
	// The insulin average is the mean of the basal and bolus averages.
	Summary(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.Summary, error)

	// Monthly returns one average per calendar month for the last monthsBack
	// months, current month included, oldest first. Empty months average 0.
	Monthly(ctx context.Context, userID uuid.UUID, monthsBack int) (*entity.MonthlyReport, error)

	// TodayIntake sums glucose, insulin and carbs of the current calendar day.
	TodayIntake(ctx context.Context, userID uuid.UUID) (*entity.DailyIntake, error)

	// ReadingsSeries returns the raw per-row values in the window for charting.
	ReadingsSeries(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.ReadingsSeries, error)

	// DeviceStatus returns the telemetry of the user's most recently updated device.
	DeviceStatus(ctx context.Context, userID uuid.UUID) (*entity.DeviceStatus, error)

	// History returns the full reading rows in the window.
	History(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.History, error)
}
