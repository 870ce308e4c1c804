package badgerdb

import (
	"context"
	"testing"
	"time"

	"insulink/config"
	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := Open(&config.BadgerConfig{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func glucose(userID, deviceID uuid.UUID, date time.Time, at string, value float64) *entity.GlucoseReading {
	return &entity.GlucoseReading{
		ID:          uuid.New(),
		UserID:      userID,
		DeviceID:    deviceID,
		Date:        date,
		ReadingTime: at,
		Value:       value,
		Type:        entity.GlucoseTypeRandom,
	}
}

func TestReadingRepository_InsertSkipsDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewGlucoseRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	batch := []*entity.GlucoseReading{
		glucose(userID, deviceID, day(2024, time.March, 1), "08:00", 100),
		glucose(userID, deviceID, day(2024, time.March, 1), "12:00", 140),
		glucose(userID, deviceID, day(2024, time.March, 1), "12:00", 999),
	}

	inserted, err := repo.Insert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.Insert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	stats, err := repo.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, entity.SeriesStats{Count: 2, Sum: 240, Avg: 120}, stats)
}

func TestReadingRepository_WindowIsInclusive(t *testing.T) {
	db := openTestDB(t)
	repo := NewGlucoseRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	_, err := repo.Insert(ctx, []*entity.GlucoseReading{
		glucose(userID, deviceID, day(2024, time.March, 1), "08:00", 90),
		glucose(userID, deviceID, day(2024, time.March, 2), "08:00", 110),
		glucose(userID, deviceID, day(2024, time.March, 3), "23:59", 130),
		glucose(userID, deviceID, day(2024, time.March, 4), "00:01", 500),
	})
	require.NoError(t, err)

	start, end := day(2024, time.March, 2), day(2024, time.March, 3)
	stats, err := repo.Stats(ctx, userID, entity.DateWindow{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)
	assert.InDelta(t, 240, stats.Sum, 1e-9)

	stats, err = repo.Stats(ctx, userID, entity.DateWindow{End: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)

	stats, err = repo.Stats(ctx, uuid.New(), entity.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, entity.SeriesStats{}, stats)
}

func TestReadingRepository_FindOrdersByDateThenTime(t *testing.T) {
	db := openTestDB(t)
	repo := NewGlucoseRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	_, err := repo.Insert(ctx, []*entity.GlucoseReading{
		glucose(userID, deviceID, day(2024, time.March, 2), "07:00", 3),
		glucose(userID, deviceID, day(2024, time.March, 1), "21:00", 2),
		glucose(userID, deviceID, day(2024, time.March, 1), "06:30", 1),
	})
	require.NoError(t, err)

	readings, err := repo.Find(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, readings, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{readings[0].Value, readings[1].Value, readings[2].Value})
	assert.Equal(t, day(2024, time.March, 1), readings[0].Date)
}

func TestReadingRepository_MonthlyAverages(t *testing.T) {
	db := openTestDB(t)
	repo := NewBasalRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	basal := func(date time.Time, start string, flow float64) *entity.BasalReading {
		return &entity.BasalReading{ID: uuid.New(), UserID: userID, DeviceID: deviceID, Date: date, StartTime: start, EndTime: "23:59", Flow: flow}
	}
	_, err := repo.Insert(ctx, []*entity.BasalReading{
		basal(day(2023, time.December, 30), "00:00", 1),
		basal(day(2023, time.December, 31), "00:00", 3),
		basal(day(2024, time.February, 1), "00:00", 0.5),
	})
	require.NoError(t, err)

	averages, err := repo.MonthlyAverages(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, averages, 2)
	assert.Equal(t, "2023-12", averages[0].String())
	assert.InDelta(t, 2, averages[0].Average, 1e-9)
	assert.Equal(t, "2024-02", averages[1].String())
	assert.InDelta(t, 0.5, averages[1].Average, 1e-9)
}

func TestBolusRepository_SumCarbIntake(t *testing.T) {
	db := openTestDB(t)
	repo := NewBolusRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	_, err := repo.Insert(ctx, []*entity.BolusReading{
		{ID: uuid.New(), UserID: userID, DeviceID: deviceID, Date: day(2024, time.May, 5), Time: "08:00", Dose: 4, Type: entity.BolusTypeWizard,
			Wizard: &entity.BolusWizard{FromWizard: true, CarbIntake: 45}},
		{ID: uuid.New(), UserID: userID, DeviceID: deviceID, Date: day(2024, time.May, 5), Time: "13:00", Dose: 2, Type: entity.BolusTypeManual},
	})
	require.NoError(t, err)

	carbs, err := repo.SumCarbIntake(ctx, userID, entity.DayWindow(day(2024, time.May, 5)))
	require.NoError(t, err)
	assert.InDelta(t, 45, carbs, 1e-9)

	found, err := repo.Find(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.NotNil(t, found[0].Wizard)
	assert.Nil(t, found[1].Wizard)
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	device := &entity.Device{SerialNumber: "SN-001", Model: entity.DeviceModelPro}
	require.NoError(t, repo.CreateDevice(ctx, device))
	assert.NotEqual(t, uuid.Nil, device.ID)

	err := repo.CreateDevice(ctx, &entity.Device{SerialNumber: "SN-001", Model: entity.DeviceModelStandard})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)

	found, err := repo.FindDeviceBySerial(ctx, "SN-001")
	require.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)

	_, err = repo.FindDeviceBySerial(ctx, "SN-404")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	telemetry := entity.DeviceTelemetry{BatteryPercentage: 80, ReservoirPercentage: 150, ReportedAt: day(2024, time.June, 1)}
	updated, err := repo.ApplyTelemetry(ctx, device.ID, userID, telemetry)
	require.NoError(t, err)
	assert.Equal(t, telemetry, updated.Telemetry)
	assert.Equal(t, []uuid.UUID{userID}, updated.UserIDs)

	telemetry.BatteryPercentage = 0
	updated, err = repo.ApplyTelemetry(ctx, device.ID, userID, telemetry)
	require.NoError(t, err)
	assert.Zero(t, updated.Telemetry.BatteryPercentage)
	assert.Len(t, updated.UserIDs, 1)

	devices, err := repo.FindDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "SN-001", devices[0].SerialNumber)

	_, err = repo.ApplyTelemetry(ctx, uuid.New(), userID, telemetry)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestUserRepository_AddDeviceIsSet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com"}
	deviceID := uuid.New()

	err := repo.AddDevice(ctx, user.ID, deviceID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, repo.SaveProfile(ctx, user))
	require.NoError(t, repo.AddDevice(ctx, user.ID, deviceID))
	require.NoError(t, repo.AddDevice(ctx, user.ID, deviceID))

	user.LastName = "Lovelace"
	require.NoError(t, repo.SaveProfile(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{deviceID}, stored.DeviceIDs)
	assert.Equal(t, "Lovelace", stored.LastName)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewGlucoseRepository().Insert(ctx, []*entity.GlucoseReading{
			glucose(userID, deviceID, day(2024, time.March, 1), "08:00", 100),
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	stats, err := NewGlucoseRepository(db).Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
}

func TestTransactionManager_AbortsOnCancelledContext(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx, cancel := context.WithCancel(context.Background())
	userID, deviceID := uuid.New(), uuid.New()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.NewGlucoseRepository().Insert(ctx, []*entity.GlucoseReading{
			glucose(userID, deviceID, day(2024, time.March, 1), "08:00", 100),
		})
		cancel()

		return err
	})
	require.ErrorIs(t, err, context.Canceled)

	stats, err := NewGlucoseRepository(db).Stats(context.Background(), userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
}
