package impl

import (
	"context"
	"testing"

	"insulink/config"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/domain/service"
	mockRepo "insulink/internal/mocks/repository"
	mockSvc "insulink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ingestionServiceFixtures struct {
	service     *ingestionService
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	deviceRepo  *mockRepo.MockDeviceRepository
	userRepo    *mockRepo.MockUserRepository
	recorder    *mockSvc.MockUsageRecorder
}

func createTestIngestionService(t *testing.T) ingestionServiceFixtures {
	fx := ingestionServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		recorder:    mockSvc.NewMockUsageRecorder(t),
	}

	fx.service = NewIngestionService(IngestionServiceParams{
		TxManager: fx.txManager,
		Recorder:  fx.recorder,
		Config:    newTestConfig(config.UnregisteredDeviceReject),
		Logger:    newDiscardLogger(),
	}).(*ingestionService)

	return fx
}

func (fx ingestionServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo)
}

func TestIngestionService_Ingest_InvalidPayloadSkipsStore(t *testing.T) {
	fx := createTestIngestionService(t)

	payload := samplePayload("SN-1", "not a date")
	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeRejected, mock.Anything).Return()

	_, err := fx.service.Ingest(context.Background(), uuid.New(), payload)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []domainerrors.FieldViolation{
		{Field: "Glucose[0].date", Reason: "is not a valid date"},
		{Field: "Insulin[0].date", Reason: "is not a valid date"},
	}, validationErr.Violations())
}

func TestIngestionService_Ingest_DeviceLookupFails(t *testing.T) {
	fx := createTestIngestionService(t)
	fx.expectTransaction()

	fx.deviceRepo.EXPECT().
		FindDeviceBySerial(mock.Anything, "SN-1").
		Return(nil, errors.New("connection refused"))
	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeFailed, mock.Anything).Return()

	_, err := fx.service.Ingest(context.Background(), uuid.New(), samplePayload("SN-1", "2024-05-01"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestIngestionService_Ingest_UnregisteredDeviceRecordedAsRejected(t *testing.T) {
	fx := createTestIngestionService(t)
	fx.expectTransaction()

	fx.deviceRepo.EXPECT().
		FindDeviceBySerial(mock.Anything, "SN-1").
		Return(nil, repository.ErrDeviceNotFound)
	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeRejected, mock.Anything).Return()

	_, err := fx.service.Ingest(context.Background(), uuid.New(), samplePayload("SN-1", "2024-05-01"))
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotRegistered)
}

func TestIngestionService_Ingest_RegistrationRace(t *testing.T) {
	fx := createTestIngestionService(t)
	fx.service.registerDevice = true
	fx.expectTransaction()

	fx.deviceRepo.EXPECT().
		FindDeviceBySerial(mock.Anything, "SN-1").
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)
	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeRejected, mock.Anything).Return()

	_, err := fx.service.Ingest(context.Background(), uuid.New(), samplePayload("SN-1", "2024-05-01"))
	require.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyExists)
}

func TestIngestionService_Ingest_LinkUserFails(t *testing.T) {
	fx := createTestIngestionService(t)
	fx.expectTransaction()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), SerialNumber: "SN-1"}

	fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "SN-1").Return(device, nil)
	fx.deviceRepo.EXPECT().
		ApplyTelemetry(mock.Anything, device.ID, userID, mock.AnythingOfType("entity.DeviceTelemetry")).
		Return(device, nil)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().AddDevice(mock.Anything, userID, device.ID).Return(repository.ErrUserNotFound)
	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeRejected, mock.Anything).Return()

	_, err := fx.service.Ingest(context.Background(), userID, samplePayload("SN-1", "2024-05-01"))
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIngestionService_Ingest_RecordsSeries(t *testing.T) {
	fx := createTestIngestionService(t)
	fx.expectTransaction()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), SerialNumber: "SN-1"}

	glucoseRepo := mockRepo.NewMockGlucoseRepository(t)
	bolusRepo := mockRepo.NewMockBolusRepository(t)
	basalRepo := mockRepo.NewMockBasalRepository(t)

	fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "SN-1").Return(device, nil)
	fx.deviceRepo.EXPECT().ApplyTelemetry(mock.Anything, device.ID, userID, mock.Anything).Return(device, nil)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().AddDevice(mock.Anything, userID, device.ID).Return(nil)
	fx.repoFactory.EXPECT().NewGlucoseRepository().Return(glucoseRepo)
	fx.repoFactory.EXPECT().NewBolusRepository().Return(bolusRepo)
	fx.repoFactory.EXPECT().NewBasalRepository().Return(basalRepo)

	glucoseRepo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(rows []*entity.GlucoseReading) bool {
			return len(rows) == 2 && rows[0].DeviceID == device.ID && rows[1].UserID == userID
		})).
		Return(1, nil)
	bolusRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(2, nil)
	basalRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(0, nil)

	fx.recorder.EXPECT().RecordUpload(service.UploadOutcomeSuccess, mock.Anything).Return()
	fx.recorder.EXPECT().RecordReadings(entity.SeriesGlucose, 1, 1).Return()
	fx.recorder.EXPECT().RecordReadings(entity.SeriesBolus, 2, 0).Return()
	fx.recorder.EXPECT().RecordReadings(entity.SeriesBasal, 0, 2).Return()

	result, err := fx.service.Ingest(context.Background(), userID, samplePayload("SN-1", "2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Glucose.Skipped)
	assert.Equal(t, 2, result.Basal.Skipped)
}
