package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"insulink/config"
	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/metrics"
	"insulink/internal/infra/persistence/badgerdb"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(policy string) *config.Config {
	return &config.Config{
		Ingestion: &config.IngestionConfig{
			UnregisteredDevice: policy,
			Timeout:            5 * time.Second,
		},
		Report: &config.ReportConfig{
			Timezone:  "UTC",
			MaxMonths: 24,
		},
	}
}

// testStore is an in-memory badger store with every repository.
type testStore struct {
	txManager repository.TransactionManager
	devices   repository.DeviceRepository
	users     repository.UserRepository
	glucose   repository.GlucoseRepository
	bolus     repository.BolusRepository
	basal     repository.BasalRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := badgerdb.Open(nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &testStore{
		txManager: badgerdb.NewTransactionManager(db),
		devices:   badgerdb.NewDeviceRepository(db),
		users:     badgerdb.NewUserRepository(db),
		glucose:   badgerdb.NewGlucoseRepository(db),
		bolus:     badgerdb.NewBolusRepository(db),
		basal:     badgerdb.NewBasalRepository(db),
	}
}

// seed stores a user profile and a registered pump.
func (s *testStore) seed(t *testing.T, serial string) (uuid.UUID, *entity.Device) {
	t.Helper()
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, s.users.SaveProfile(ctx, &entity.User{ID: userID, FirstName: "Ada", Email: "ada@example.com"}))

	device := &entity.Device{ID: uuid.New(), SerialNumber: serial, Model: entity.DeviceModelPro}
	require.NoError(t, s.devices.CreateDevice(ctx, device))

	return userID, device
}

func newTestIngestionService(store *testStore, cfg *config.Config) *ingestionService {
	srv := NewIngestionService(IngestionServiceParams{
		TxManager: store.txManager,
		Recorder:  metrics.NewRecorder(),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return srv.(*ingestionService)
}

func newTestReportService(store *testStore, now time.Time) *reportService {
	srv := NewReportService(ReportServiceParams{
		DeviceRepo:  store.devices,
		GlucoseRepo: store.glucose,
		BolusRepo:   store.bolus,
		BasalRepo:   store.basal,
		Recorder:    metrics.NewRecorder(),
		Config:      newTestConfig(config.UnregisteredDeviceReject),
		Logger:      newDiscardLogger(),
	}).(*reportService)
	srv.now = func() time.Time { return now }

	return srv
}

func floatPtr(v float64) *float64 { return &v }

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func devicePayload(serial string) *usecase.DevicePayload {
	return &usecase.DevicePayload{
		SerialNumber:       serial,
		BatteryPercentage:  floatPtr(85),
		PatchChangedAt:     stringPtr("2024-05-01T08:00:00Z"),
		ReservoirChangedAt: stringPtr("2024-04-30 20:15"),
		ReportedAt:         stringPtr("2024-05-02T10:00:00Z"),
		TotalReservoir:     floatPtr(60),
	}
}

// samplePayload uploads one day: glucose 100 and 140, bolus 4 (45 g carbs)
// and 2, basal 0.8 and 1.2.
func samplePayload(serial, date string) *usecase.UploadPayload {
	return &usecase.UploadPayload{
		Device: devicePayload(serial),
		Glucose: []usecase.GlucoseDayPayload{{
			Date: date,
			Samples: []usecase.GlucoseSamplePayload{
				{ReadingTime: "0800", Value: floatPtr(100), Type: "0"},
				{ReadingTime: "12:30", Value: floatPtr(140), Type: "1"},
			},
		}},
		Insulin: []usecase.InsulinDayPayload{{
			Date: date,
			Bolus: []usecase.BolusDosePayload{
				{Time: "0805", Unit: floatPtr(4), Type: "1", FromWizard: boolPtr(true), CarbIntake: floatPtr(45), InsulinRatio: floatPtr(10)},
				{Time: "1235", Unit: floatPtr(2), Type: "0"},
			},
			Basal: []usecase.BasalRatePayload{
				{StartTime: "0000", EndTime: "0600", Flow: floatPtr(0.8)},
				{StartTime: "0600", EndTime: "1200", Flow: floatPtr(1.2)},
			},
		}},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// failingTxManager runs the real transaction but makes basal inserts fail,
// after the glucose and bolus rows were written.
type failingTxManager struct {
	inner repository.TransactionManager
	err   error
}

func (m failingTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.inner.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(failingFactory{RepositoryFactory: factory, err: m.err})
	})
}

type failingFactory struct {
	repository.RepositoryFactory
	err error
}

func (f failingFactory) NewBasalRepository() repository.BasalRepository {
	return failingBasalRepository{BasalRepository: f.RepositoryFactory.NewBasalRepository(), err: f.err}
}

type failingBasalRepository struct {
	repository.BasalRepository
	err error
}

func (r failingBasalRepository) Insert(context.Context, []*entity.BasalReading) (int, error) {
	return 0, r.err
}
