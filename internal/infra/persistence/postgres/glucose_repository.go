package postgres

import (
	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type glucoseRepository struct {
	*readingRepository[*entity.GlucoseReading, model.GlucoseReadingModel]
}

// NewGlucoseRepository is the constructor for the glucose reading repository.
func NewGlucoseRepository(db *gorm.DB) repository.GlucoseRepository {
	return &glucoseRepository{
		readingRepository: &readingRepository[*entity.GlucoseReading, model.GlucoseReadingModel]{
			db: db,
			table: readingTable[*entity.GlucoseReading, model.GlucoseReadingModel]{
				name:        entity.SeriesGlucose.String(),
				valueColumn: "value",
				timeColumn:  "reading_time",
				toDomain:    toGlucoseDomain,
				fromDomain:  fromGlucoseDomain,
			},
		},
	}
}

func toGlucoseDomain(data *model.GlucoseReadingModel) *entity.GlucoseReading {
	return &entity.GlucoseReading{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceID:    data.DeviceID,
		Date:        data.Date.UTC(),
		ReadingTime: data.ReadingTime,
		Value:       data.Value,
		Type:        entity.GlucoseType(data.Type),
		CreatedAt:   data.CreatedAt,
	}
}

func fromGlucoseDomain(data *entity.GlucoseReading) *model.GlucoseReadingModel {
	return &model.GlucoseReadingModel{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceID:    data.DeviceID,
		Date:        data.Date,
		ReadingTime: data.ReadingTime,
		Value:       data.Value,
		Type:        string(data.Type),
		CreatedAt:   data.CreatedAt,
	}
}
