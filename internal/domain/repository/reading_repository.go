package repository

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// ReadingRepository is the time-series store of one reading kind.
// Readings are append-only and unique by their entity.ReadingKey.
type ReadingRepository[T entity.Reading] interface {
	// Insert stores the readings and returns how many were new. A reading whose
	// key already exists is skipped without error.
	Insert(ctx context.Context, readings []T) (int, error)

	// Stats aggregates the readings of a user inside the window.
	Stats(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (entity.SeriesStats, error)

	// MonthlyAverages averages the readings of a user per calendar month.
	// Only months with data are returned, in ascending order.
	MonthlyAverages(ctx context.Context, userID uuid.UUID, window entity.DateWindow) ([]entity.MonthlyAverage, error)

	// Find lists the readings of a user inside the window, ordered by date then time.
	Find(ctx context.Context, userID uuid.UUID, window entity.DateWindow) ([]T, error)
}

// GlucoseRepository stores blood glucose samples.
type GlucoseRepository interface {
	ReadingRepository[*entity.GlucoseReading]
}

// BolusRepository stores bolus doses.
type BolusRepository interface {
	ReadingRepository[*entity.BolusReading]

	// SumCarbIntake sums the wizard carb intake inside the window. Doses without
	// wizard data count as 0.
	SumCarbIntake(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (float64, error)
}

// BasalRepository stores basal delivery periods.
type BasalRepository interface {
	ReadingRepository[*entity.BasalReading]
}
