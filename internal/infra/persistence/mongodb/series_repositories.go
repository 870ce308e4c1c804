package mongodb

import (
	"context"

	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type glucoseRepository struct {
	*readingRepository[*entity.GlucoseReading, glucoseDocument]
}

// NewGlucoseRepository is the constructor for the glucose repository outside a transaction.
func NewGlucoseRepository(db *mongo.Database) repository.GlucoseRepository {
	return newGlucoseRepository(db, nil)
}

func newGlucoseRepository(db *mongo.Database, sess *mongo.Session) *glucoseRepository {
	return &glucoseRepository{
		readingRepository: &readingRepository[*entity.GlucoseReading, glucoseDocument]{
			coll:   db.Collection(glucoseCollection),
			sess:   sess,
			series: readingCollection[*entity.GlucoseReading, glucoseDocument]{
				name:       entity.SeriesGlucose.String(),
				valueField: "value",
				timeField:  "reading_time",
				toDomain:   toGlucoseDomain,
				fromDomain: fromGlucoseDomain,
			},
		},
	}
}

type bolusRepository struct {
	*readingRepository[*entity.BolusReading, bolusDocument]
}

// NewBolusRepository is the constructor for the bolus repository outside a transaction.
func NewBolusRepository(db *mongo.Database) repository.BolusRepository {
	return newBolusRepository(db, nil)
}

func newBolusRepository(db *mongo.Database, sess *mongo.Session) *bolusRepository {
	return &bolusRepository{
		readingRepository: &readingRepository[*entity.BolusReading, bolusDocument]{
			coll:   db.Collection(bolusCollection),
			sess:   sess,
			series: readingCollection[*entity.BolusReading, bolusDocument]{
				name:       entity.SeriesBolus.String(),
				valueField: "dose",
				timeField:  "time",
				toDomain:   toBolusDomain,
				fromDomain: fromBolusDomain,
			},
		},
	}
}

// SumCarbIntake sums wizard.carb_intake; $sum ignores documents without a wizard.
func (repo *bolusRepository) SumCarbIntake(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (float64, error) {
	pipeline := []bson.M{
		{"$match": matchUserWindow(userID, window)},
		{"$group": bson.M{
			"_id": nil,
			"sum": bson.M{"$sum": "$wizard.carb_intake"},
		}},
	}

	var results []statsResult
	if err := repo.aggregate(ctx, pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Sum, nil
}

type basalRepository struct {
	*readingRepository[*entity.BasalReading, basalDocument]
}

// NewBasalRepository is the constructor for the basal repository outside a transaction.
func NewBasalRepository(db *mongo.Database) repository.BasalRepository {
	return newBasalRepository(db, nil)
}

func newBasalRepository(db *mongo.Database, sess *mongo.Session) *basalRepository {
	return &basalRepository{
		readingRepository: &readingRepository[*entity.BasalReading, basalDocument]{
			coll:   db.Collection(basalCollection),
			sess:   sess,
			series: readingCollection[*entity.BasalReading, basalDocument]{
				name:       entity.SeriesBasal.String(),
				valueField: "flow",
				timeField:  "start_time",
				toDomain:   toBasalDomain,
				fromDomain: fromBasalDomain,
			},
		},
	}
}
