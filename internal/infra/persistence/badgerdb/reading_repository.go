package badgerdb

import (
	"context"
	"time"

	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// readingRepository is the shared BadgerDB implementation of repository.ReadingRepository.
type readingRepository[T entity.Reading] struct {
	run    runner
	series entity.Series
	newT   func() T
}

// Insert writes every reading whose key is not taken yet. The transaction
// sees its own pending writes, so duplicates inside one batch are skipped too.
func (repo *readingRepository[T]) Insert(ctx context.Context, readings []T) (int, error) {
	if len(readings) == 0 {
		return 0, nil
	}

	inserted := 0
	err := repo.run.update(ctx, func(txn *badger.Txn) error {
		inserted = 0
		for _, r := range readings {
			key := readingKey(repo.series, r.Key())

			taken, err := exists(txn, key)
			if err != nil {
				return err
			}
			if taken {
				continue
			}

			if err := setRecord(txn, key, r); err != nil {
				return err
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, storageError(err, "failed to insert "+repo.series.String()+" readings")
	}

	return inserted, nil
}

// Stats sums Amount over the window.
func (repo *readingRepository[T]) Stats(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (entity.SeriesStats, error) {
	var count int64
	var sum float64

	err := repo.scan(ctx, userID, window, func(_ time.Time, r T) {
		count++
		sum += r.Amount()
	})
	if err != nil {
		return entity.SeriesStats{}, err
	}

	return entity.NewSeriesStats(count, sum), nil
}

// MonthlyAverages relies on the key order: months come out ascending.
func (repo *readingRepository[T]) MonthlyAverages(
	ctx context.Context,
	userID uuid.UUID,
	window entity.DateWindow,
) ([]entity.MonthlyAverage, error) {
	type bucket struct {
		month calendar.YearMonth
		count int
		sum   float64
	}
	var buckets []*bucket

	err := repo.scan(ctx, userID, window, func(date time.Time, r T) {
		month := calendar.MonthOf(date)
		if len(buckets) == 0 || buckets[len(buckets)-1].month != month {
			buckets = append(buckets, &bucket{month: month})
		}
		last := buckets[len(buckets)-1]
		last.count++
		last.sum += r.Amount()
	})
	if err != nil {
		return nil, err
	}

	averages := make([]entity.MonthlyAverage, 0, len(buckets))
	for _, b := range buckets {
		averages = append(averages, entity.MonthlyAverage{
			YearMonth: b.month,
			Average:   b.sum / float64(b.count),
		})
	}

	return averages, nil
}

// Find returns the readings in key order, which is date then time of day.
func (repo *readingRepository[T]) Find(ctx context.Context, userID uuid.UUID, window entity.DateWindow) ([]T, error) {
	readings := []T{}
	err := repo.scan(ctx, userID, window, func(_ time.Time, r T) {
		readings = append(readings, r)
	})
	if err != nil {
		return nil, err
	}

	return readings, nil
}

// scan visits the readings of a user inside the window in key order.
func (repo *readingRepository[T]) scan(
	ctx context.Context,
	userID uuid.UUID,
	window entity.DateWindow,
	visit func(date time.Time, r T),
) error {
	err := repo.run.view(ctx, func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := readingUserPrefix(repo.series, userID)
		seek := prefix
		if window.Start != nil {
			seek = append(append([]byte{}, prefix...), calendar.DateOnly(*window.Start).Format(calendar.DateLayout)...)
		}

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			date, ok := readingDate(prefix, item.Key())
			if !ok {
				continue
			}
			if window.End != nil && date.After(calendar.DateOnly(*window.End)) {
				break
			}

			r := repo.newT()
			if err := decodeItem(item, r); err != nil {
				return err
			}
			visit(date, r)
		}

		return nil
	})

	return storageError(err, "failed to scan "+repo.series.String()+" readings")
}

type glucoseRepository struct {
	*readingRepository[*entity.GlucoseReading]
}

// NewGlucoseRepository is the constructor for the glucose repository outside a transaction.
func NewGlucoseRepository(db *badger.DB) repository.GlucoseRepository {
	return newGlucoseRepository(runner{db: db})
}

func newGlucoseRepository(run runner) *glucoseRepository {
	return &glucoseRepository{&readingRepository[*entity.GlucoseReading]{
		run:    run,
		series: entity.SeriesGlucose,
		newT:   func() *entity.GlucoseReading { return &entity.GlucoseReading{} },
	}}
}

type bolusRepository struct {
	*readingRepository[*entity.BolusReading]
}

// NewBolusRepository is the constructor for the bolus repository outside a transaction.
func NewBolusRepository(db *badger.DB) repository.BolusRepository {
	return newBolusRepository(runner{db: db})
}

func newBolusRepository(run runner) *bolusRepository {
	return &bolusRepository{&readingRepository[*entity.BolusReading]{
		run:    run,
		series: entity.SeriesBolus,
		newT:   func() *entity.BolusReading { return &entity.BolusReading{} },
	}}
}

// SumCarbIntake sums the wizard carbs; doses without wizard data add 0.
func (repo *bolusRepository) SumCarbIntake(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (float64, error) {
	var sum float64
	err := repo.scan(ctx, userID, window, func(_ time.Time, r *entity.BolusReading) {
		sum += r.CarbIntake()
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

type basalRepository struct {
	*readingRepository[*entity.BasalReading]
}

// NewBasalRepository is the constructor for the basal repository outside a transaction.
func NewBasalRepository(db *badger.DB) repository.BasalRepository {
	return newBasalRepository(runner{db: db})
}

func newBasalRepository(run runner) *basalRepository {
	return &basalRepository{&readingRepository[*entity.BasalReading]{
		run:    run,
		series: entity.SeriesBasal,
		newT:   func() *entity.BasalReading { return &entity.BasalReading{} },
	}}
}
