package mongodb

import (
	"context"
	"time"

	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// readingCollection describes how one reading kind maps onto its collection.
type readingCollection[T entity.Reading, D any] struct {
	name       string
	valueField string
	timeField  string
	toDomain   func(*D) T
	fromDomain func(T) *D
}

// readingRepository is the shared MongoDB implementation of repository.ReadingRepository.
type readingRepository[T entity.Reading, D any] struct {
	coll   *mongo.Collection
	sess   *mongo.Session
	series readingCollection[T, D]
}

type statsResult struct {
	Count int64   `bson:"count"`
	Sum   float64 `bson:"sum"`
}

type monthResult struct {
	Year    int     `bson:"year"`
	Month   int     `bson:"month"`
	Average float64 `bson:"average"`
}

// Insert upserts each reading on its natural key with $setOnInsert. Existing
// samples are left untouched, so only UpsertedCount rows are new. A duplicate
// key write error would abort the surrounding transaction, which plain
// inserts cannot avoid.
func (repo *readingRepository[T, D]) Insert(ctx context.Context, readings []T) (int, error) {
	if len(readings) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(readings))
	for _, r := range readings {
		key := r.Key()
		filter := bson.D{
			{Key: "user_id", Value: key.UserID.String()},
			{Key: "device_id", Value: key.DeviceID.String()},
			{Key: "date", Value: key.Date},
			{Key: repo.series.timeField, Value: key.Time},
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$setOnInsert": repo.series.fromDomain(r)}).
			SetUpsert(true))
	}

	result, err := repo.coll.BulkWrite(bind(ctx, repo.sess), models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to insert "+repo.series.name+" readings")
	}

	return int(result.UpsertedCount), nil
}

// Stats runs a $match/$group pipeline.
func (repo *readingRepository[T, D]) Stats(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (entity.SeriesStats, error) {
	pipeline := []bson.M{
		{"$match": matchUserWindow(userID, window)},
		{"$group": bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"sum":   bson.M{"$sum": "$" + repo.series.valueField},
		}},
	}

	var results []statsResult
	if err := repo.aggregate(ctx, pipeline, &results); err != nil {
		return entity.SeriesStats{}, err
	}
	if len(results) == 0 {
		return entity.SeriesStats{}, nil
	}

	return entity.NewSeriesStats(results[0].Count, results[0].Sum), nil
}

// MonthlyAverages groups by $year/$month of the stored date.
func (repo *readingRepository[T, D]) MonthlyAverages(
	ctx context.Context,
	userID uuid.UUID,
	window entity.DateWindow,
) ([]entity.MonthlyAverage, error) {
	pipeline := []bson.M{
		{"$match": matchUserWindow(userID, window)},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$date"},
				"month": bson.M{"$month": "$date"},
			},
			"average": bson.M{"$avg": "$" + repo.series.valueField},
		}},
		{"$project": bson.M{
			"_id":     0,
			"year":    "$_id.year",
			"month":   "$_id.month",
			"average": 1,
		}},
		{"$sort": bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}},
	}

	var results []monthResult
	if err := repo.aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	averages := make([]entity.MonthlyAverage, 0, len(results))
	for _, r := range results {
		averages = append(averages, entity.MonthlyAverage{
			YearMonth: calendar.YearMonth{Year: r.Year, Month: time.Month(r.Month)},
			Average:   r.Average,
		})
	}

	return averages, nil
}

// Find lists the documents ordered by date then time of day.
func (repo *readingRepository[T, D]) Find(ctx context.Context, userID uuid.UUID, window entity.DateWindow) ([]T, error) {
	ctx = bind(ctx, repo.sess)

	cursor, err := repo.coll.Find(ctx,
		matchUserWindow(userID, window),
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: repo.series.timeField, Value: 1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.series.name+" readings")
	}
	defer cursor.Close(ctx)

	var docs []*D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode "+repo.series.name+" readings")
	}

	readings := make([]T, 0, len(docs))
	for _, doc := range docs {
		readings = append(readings, repo.series.toDomain(doc))
	}

	return readings, nil
}

func (repo *readingRepository[T, D]) aggregate(ctx context.Context, pipeline []bson.M, results any) error {
	ctx = bind(ctx, repo.sess)

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to aggregate "+repo.series.name+" readings")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to decode "+repo.series.name+" aggregation")
	}

	return nil
}

// matchUserWindow builds the $match filter for one user and an inclusive date window.
func matchUserWindow(userID uuid.UUID, window entity.DateWindow) bson.M {
	filter := bson.M{"user_id": userID.String()}

	dateRange := bson.M{}
	if window.Start != nil {
		dateRange["$gte"] = calendar.DateOnly(*window.Start)
	}
	if window.End != nil {
		dateRange["$lte"] = calendar.DateOnly(*window.End)
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	return filter
}
