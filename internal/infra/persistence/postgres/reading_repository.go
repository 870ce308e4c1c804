package postgres

import (
	"context"
	"time"

	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const insertBatchSize = 500

// readingTable describes how one reading kind maps onto its table.
type readingTable[T entity.Reading, M any] struct {
	name        string // Used in error details.
	valueColumn string
	timeColumn  string
	toDomain    func(*M) T
	fromDomain  func(T) *M
}

// readingRepository is the shared GORM implementation of repository.ReadingRepository.
type readingRepository[T entity.Reading, M any] struct {
	db    *gorm.DB
	table readingTable[T, M]
}

type statsRow struct {
	Count int64
	Sum   float64
}

type monthRow struct {
	Year    int
	Month   int
	Average float64
}

// Insert relies on the unique sample index: ON CONFLICT DO NOTHING skips
// duplicates and RowsAffected counts only the new rows.
func (repo *readingRepository[T, M]) Insert(ctx context.Context, readings []T) (int, error) {
	if len(readings) == 0 {
		return 0, nil
	}

	models := make([]*M, 0, len(readings))
	for _, r := range readings {
		models = append(models, repo.table.fromDomain(r))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(models, insertBatchSize)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert "+repo.table.name+" readings")
	}

	return int(result.RowsAffected), nil
}

// Stats aggregates count and sum in the database.
func (repo *readingRepository[T, M]) Stats(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (entity.SeriesStats, error) {
	var row statsRow

	if err := repo.reader(ctx).
		Model(new(M)).
		Scopes(userWindow(userID, window)).
		Select("COUNT(*) AS count, COALESCE(SUM(" + repo.table.valueColumn + "), 0) AS sum").
		Scan(&row).Error; err != nil {
		return entity.SeriesStats{}, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate "+repo.table.name+" readings")
	}

	return entity.NewSeriesStats(row.Count, row.Sum), nil
}

// MonthlyAverages groups by calendar month of the reading date.
func (repo *readingRepository[T, M]) MonthlyAverages(
	ctx context.Context,
	userID uuid.UUID,
	window entity.DateWindow,
) ([]entity.MonthlyAverage, error) {
	var rows []monthRow

	if err := repo.reader(ctx).
		Model(new(M)).
		Scopes(userWindow(userID, window)).
		Select("CAST(EXTRACT(YEAR FROM date) AS INTEGER) AS year, " +
			"CAST(EXTRACT(MONTH FROM date) AS INTEGER) AS month, " +
			"AVG(" + repo.table.valueColumn + ") AS average").
		Group("1, 2").
		Order("1, 2").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to group "+repo.table.name+" readings by month")
	}

	averages := make([]entity.MonthlyAverage, 0, len(rows))
	for _, row := range rows {
		averages = append(averages, entity.MonthlyAverage{
			YearMonth: calendar.YearMonth{Year: row.Year, Month: time.Month(row.Month)},
			Average:   row.Average,
		})
	}

	return averages, nil
}

// Find lists the rows ordered by date then time of day.
func (repo *readingRepository[T, M]) Find(ctx context.Context, userID uuid.UUID, window entity.DateWindow) ([]T, error) {
	var models []*M

	if err := repo.reader(ctx).
		Scopes(userWindow(userID, window)).
		Order("date ASC, " + repo.table.timeColumn + " ASC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.table.name+" readings")
	}

	readings := make([]T, 0, len(models))
	for _, m := range models {
		readings = append(readings, repo.table.toDomain(m))
	}

	return readings, nil
}

// reader routes report queries to a replica when replicas are configured.
func (repo *readingRepository[T, M]) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// userWindow restricts a query to one user and an inclusive date window.
func userWindow(userID uuid.UUID, window entity.DateWindow) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if window.Start != nil {
			db = db.Where("date >= ?", calendar.DateOnly(*window.Start))
		}
		if window.End != nil {
			db = db.Where("date <= ?", calendar.DateOnly(*window.End))
		}

		return db
	}
}
