package postgres

import (
	"context"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bolusRepository struct {
	*readingRepository[*entity.BolusReading, model.BolusReadingModel]
}

// NewBolusRepository is the constructor for the bolus reading repository.
func NewBolusRepository(db *gorm.DB) repository.BolusRepository {
	return &bolusRepository{
		readingRepository: &readingRepository[*entity.BolusReading, model.BolusReadingModel]{
			db: db,
			table: readingTable[*entity.BolusReading, model.BolusReadingModel]{
				name:        entity.SeriesBolus.String(),
				valueColumn: "dose",
				timeColumn:  "time",
				toDomain:    toBolusDomain,
				fromDomain:  fromBolusDomain,
			},
		},
	}
}

// SumCarbIntake sums wizard carbs; NULL carb columns count as 0.
func (repo *bolusRepository) SumCarbIntake(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (float64, error) {
	var sum float64

	if err := repo.reader(ctx).
		Model(&model.BolusReadingModel{}).
		Scopes(userWindow(userID, window)).
		Select("COALESCE(SUM(carb_intake), 0)").
		Scan(&sum).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum carb intake")
	}

	return sum, nil
}

func toBolusDomain(data *model.BolusReadingModel) *entity.BolusReading {
	reading := &entity.BolusReading{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Date:      data.Date.UTC(),
		Time:      data.Time,
		Dose:      data.Dose,
		Type:      entity.BolusType(data.Type),
		CreatedAt: data.CreatedAt,
	}

	if data.HasWizard {
		reading.Wizard = &entity.BolusWizard{
			FromWizard:         derefBool(data.FromWizard),
			CarbIntake:         derefFloat(data.CarbIntake),
			InsulinCarbRatio:   derefFloat(data.InsulinCarbRatio),
			InsulinSensitivity: derefFloat(data.InsulinSensitivity),
			LowerBGTarget:      derefFloat(data.LowerBGTarget),
			HigherBGTarget:     derefFloat(data.HigherBGTarget),
			ActiveInsulin:      derefFloat(data.ActiveInsulin),
		}
	}

	return reading
}

func fromBolusDomain(data *entity.BolusReading) *model.BolusReadingModel {
	m := &model.BolusReadingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Date:      data.Date,
		Time:      data.Time,
		Dose:      data.Dose,
		Type:      string(data.Type),
		CreatedAt: data.CreatedAt,
	}

	if w := data.Wizard; w != nil {
		m.HasWizard = true
		m.FromWizard = &w.FromWizard
		m.CarbIntake = &w.CarbIntake
		m.InsulinCarbRatio = &w.InsulinCarbRatio
		m.InsulinSensitivity = &w.InsulinSensitivity
		m.LowerBGTarget = &w.LowerBGTarget
		m.HigherBGTarget = &w.HigherBGTarget
		m.ActiveInsulin = &w.ActiveInsulin
	}

	return m
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}
