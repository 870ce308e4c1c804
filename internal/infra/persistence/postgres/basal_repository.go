package postgres

import (
	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type basalRepository struct {
	*readingRepository[*entity.BasalReading, model.BasalReadingModel]
}

// NewBasalRepository is the constructor for the basal reading repository.
func NewBasalRepository(db *gorm.DB) repository.BasalRepository {
	return &basalRepository{
		readingRepository: &readingRepository[*entity.BasalReading, model.BasalReadingModel]{
			db: db,
			table: readingTable[*entity.BasalReading, model.BasalReadingModel]{
				name:        entity.SeriesBasal.String(),
				valueColumn: "flow",
				timeColumn:  "start_time",
				toDomain:    toBasalDomain,
				fromDomain:  fromBasalDomain,
			},
		},
	}
}

func toBasalDomain(data *model.BasalReadingModel) *entity.BasalReading {
	return &entity.BasalReading{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Date:      data.Date.UTC(),
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Flow:      data.Flow,
		CreatedAt: data.CreatedAt,
	}
}

func fromBasalDomain(data *entity.BasalReading) *model.BasalReadingModel {
	return &model.BasalReadingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Date:      data.Date,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Flow:      data.Flow,
		CreatedAt: data.CreatedAt,
	}
}
