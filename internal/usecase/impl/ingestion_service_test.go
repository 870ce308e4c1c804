package impl

import (
	"context"
	"testing"

	"insulink/config"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionService_Ingest_StoresUpload(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, device := store.seed(t, "SN-100")

	result, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.NoError(t, err)

	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Inserted: 2}, result.Glucose)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Inserted: 2}, result.Bolus)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Inserted: 2}, result.Basal)

	require.NotNil(t, result.Device)
	assert.Equal(t, device.ID, result.Device.ID)
	assert.InDelta(t, 85, result.Device.Telemetry.BatteryPercentage, 0.0001)
	assert.InDelta(t, 60, result.Device.Telemetry.ReservoirPercentage, 0.0001)
	assert.True(t, result.Device.HasUser(userID))

	user, err := store.users.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.HasDevice(device.ID))

	glucose, err := store.glucose.Find(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, glucose, 2)
	assert.Equal(t, device.ID, glucose[0].DeviceID)
	assert.Equal(t, "08:00", glucose[0].ReadingTime)
	assert.Equal(t, entity.GlucoseTypeFasting, glucose[0].Type)
	assert.Equal(t, day(2024, 5, 1), glucose[0].Date)

	bolus, err := store.bolus.Find(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, bolus, 2)
	require.NotNil(t, bolus[0].Wizard)
	assert.InDelta(t, 45, bolus[0].Wizard.CarbIntake, 0.0001)
	assert.Nil(t, bolus[1].Wizard)
}

func TestIngestionService_Ingest_ReuploadSkipsDuplicates(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, _ := store.seed(t, "SN-100")

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.NoError(t, err)

	result, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Glucose)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Bolus)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Basal)

	stats, err := store.glucose.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)

	user, err := store.users.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, user.DeviceIDs, 1)
}

func TestIngestionService_Ingest_ClockSpellingsShareKey(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, _ := store.seed(t, "SN-100")

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.NoError(t, err)

	payload := samplePayload("SN-100", "2024-05-01")
	payload.Glucose[0].Samples[0].ReadingTime = "08:00:00"
	payload.Glucose[0].Samples[1].ReadingTime = "12:30:00"
	payload.Insulin[0].Bolus[0].Time = "08:05:00"
	payload.Insulin[0].Bolus[1].Time = "12:35:00"
	payload.Insulin[0].Basal[0].StartTime = "00:00:00"
	payload.Insulin[0].Basal[0].EndTime = "06:00:00"
	payload.Insulin[0].Basal[1].StartTime = "06:00:00"
	payload.Insulin[0].Basal[1].EndTime = "12:00:00"

	result, err := srv.Ingest(ctx, userID, payload)
	require.NoError(t, err)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Glucose)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Bolus)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 2, Skipped: 2}, result.Basal)

	glucose, err := store.glucose.Find(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, glucose, 2)
	assert.Equal(t, "08:00", glucose[0].ReadingTime)
}

func TestIngestionService_Ingest_DuplicateInsideOneUpload(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	userID, _ := store.seed(t, "SN-100")

	payload := samplePayload("SN-100", "2024-05-01")
	payload.Glucose[0].Samples = append(payload.Glucose[0].Samples, usecase.GlucoseSamplePayload{
		ReadingTime: "08:00", Value: floatPtr(101), Type: "0",
	})

	result, err := srv.Ingest(context.Background(), userID, payload)
	require.NoError(t, err)
	assert.Equal(t, usecase.SeriesCounts{Submitted: 3, Inserted: 2, Skipped: 1}, result.Glucose)
}

func TestIngestionService_Ingest_FailureRollsBackEverything(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	srv.txManager = failingTxManager{inner: store.txManager, err: errors.New("disk full")}
	ctx := context.Background()
	userID, device := store.seed(t, "SN-100")

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())

	glucose, err := store.glucose.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, glucose.Count)

	bolus, err := store.bolus.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, bolus.Count)

	stored, err := store.devices.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Telemetry.BatteryPercentage)
	assert.False(t, stored.HasUser(userID))

	user, err := store.users.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, user.DeviceIDs)
}

func TestIngestionService_Ingest_UnregisteredDeviceRejected(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, _ := store.seed(t, "SN-100")

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-999", "2024-05-01"))
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotRegistered)

	stats, err := store.glucose.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
}

func TestIngestionService_Ingest_UnregisteredDeviceRegistered(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceRegister))
	ctx := context.Background()
	userID, _ := store.seed(t, "SN-100")

	result, err := srv.Ingest(ctx, userID, samplePayload("SN-NEW", "2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, "SN-NEW", result.Device.SerialNumber)
	assert.Equal(t, entity.DeviceModelStandard, result.Device.Model)
	assert.Nil(t, result.Device.ManufacturedAt)

	found, err := store.devices.FindDeviceBySerial(ctx, "SN-NEW")
	require.NoError(t, err)
	assert.Equal(t, result.Device.ID, found.ID)
}

func TestIngestionService_Ingest_UnknownUser(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	_, device := store.seed(t, "SN-100")
	stranger := uuid.New()

	_, err := srv.Ingest(ctx, stranger, samplePayload("SN-100", "2024-05-01"))
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	stored, err := store.devices.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasUser(stranger))
}

func TestIngestionService_Ingest_ZeroBatteryIsValid(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	userID, _ := store.seed(t, "SN-100")

	payload := samplePayload("SN-100", "2024-05-01")
	payload.Device.BatteryPercentage = floatPtr(0)

	result, err := srv.Ingest(context.Background(), userID, payload)
	require.NoError(t, err)
	assert.Zero(t, result.Device.Telemetry.BatteryPercentage)
}

func TestIngestionService_Ingest_ValidationAggregatesFailures(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, _ := store.seed(t, "SN-100")

	payload := samplePayload("SN-100", "2024-05-01")
	payload.Device.BatteryPercentage = nil
	payload.Device.ReportedAt = stringPtr("yesterday")
	payload.Glucose[0].Samples[1].Type = "7"
	payload.Insulin[0].Basal[0].EndTime = "2561"

	_, err := srv.Ingest(ctx, userID, payload)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations()))
	for _, v := range validationErr.Violations() {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{
		"device.batteryPercentage",
		"device.date",
		"Glucose[0].BgValue[1].type",
		"Insulin[0].Basal[0].endTime",
	}, fields)

	stats, err := store.glucose.Stats(ctx, userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
}

func TestIngestionService_Ingest_MissingDevice(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))

	payload := samplePayload("SN-100", "2024-05-01")
	payload.Device = nil

	_, err := srv.Ingest(context.Background(), uuid.New(), payload)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Ingest(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIngestionService_Ingest_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	userID, _ := store.seed(t, "SN-100")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())

	stats, err := store.glucose.Stats(context.Background(), userID, entity.DateWindow{})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
}

func TestIngestionService_Ingest_TelemetryLastWriteWins(t *testing.T) {
	store := newTestStore(t)
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()
	userID, device := store.seed(t, "SN-100")

	_, err := srv.Ingest(ctx, userID, samplePayload("SN-100", "2024-05-01"))
	require.NoError(t, err)

	later := samplePayload("SN-100", "2024-05-02")
	later.Device.BatteryPercentage = floatPtr(40)
	later.Device.TotalReservoir = floatPtr(15)
	_, err = srv.Ingest(ctx, userID, later)
	require.NoError(t, err)

	stored, err := store.devices.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40, stored.Telemetry.BatteryPercentage, 0.0001)
	assert.InDelta(t, 15, stored.Telemetry.ReservoirPercentage, 0.0001)
	assert.Len(t, stored.UserIDs, 1)
}
