package impl

import (
	"context"
	"testing"
	"time"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	mockRepo "insulink/internal/mocks/repository"
	mockSvc "insulink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service     *reportService
	deviceRepo  *mockRepo.MockDeviceRepository
	glucoseRepo *mockRepo.MockGlucoseRepository
	bolusRepo   *mockRepo.MockBolusRepository
	basalRepo   *mockRepo.MockBasalRepository
	recorder    *mockSvc.MockUsageRecorder
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fx := reportServiceFixtures{
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		glucoseRepo: mockRepo.NewMockGlucoseRepository(t),
		bolusRepo:   mockRepo.NewMockBolusRepository(t),
		basalRepo:   mockRepo.NewMockBasalRepository(t),
		recorder:    mockSvc.NewMockUsageRecorder(t),
	}

	fx.service = NewReportService(ReportServiceParams{
		DeviceRepo:  fx.deviceRepo,
		GlucoseRepo: fx.glucoseRepo,
		BolusRepo:   fx.bolusRepo,
		BasalRepo:   fx.basalRepo,
		Recorder:    fx.recorder,
		Config:      newTestConfig(""),
		Logger:      newDiscardLogger(),
	}).(*reportService)
	fx.service.now = func() time.Time { return time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC) }

	return fx
}

func TestReportService_Summary_StoreFailure(t *testing.T) {
	fx := createTestReportService(t)
	userID := uuid.New()

	fx.glucoseRepo.EXPECT().
		Stats(mock.Anything, userID, mock.Anything).
		Return(entity.SeriesStats{}, errors.New("connection reset"))
	fx.recorder.EXPECT().RecordReport(reportSummary, mock.Anything).Return()

	_, err := fx.service.Summary(context.Background(), userID, entity.DateWindow{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestReportService_Summary_InvalidWindowSkipsStore(t *testing.T) {
	fx := createTestReportService(t)
	start := day(2024, time.May, 10)
	end := day(2024, time.May, 1)

	fx.recorder.EXPECT().RecordReport(reportSummary, mock.Anything).Return()

	_, err := fx.service.Summary(context.Background(), uuid.New(), entity.DateWindow{Start: &start, End: &end})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Monthly_QueriesWholeMonths(t *testing.T) {
	fx := createTestReportService(t)
	userID := uuid.New()

	inWindow := mock.MatchedBy(func(window entity.DateWindow) bool {
		return window.Start != nil && window.Start.Equal(day(2024, time.March, 1)) &&
			window.End != nil && window.End.Equal(day(2024, time.May, 15))
	})
	fx.glucoseRepo.EXPECT().MonthlyAverages(mock.Anything, userID, inWindow).Return(nil, nil)
	fx.bolusRepo.EXPECT().MonthlyAverages(mock.Anything, userID, inWindow).Return(nil, nil)
	fx.basalRepo.EXPECT().MonthlyAverages(mock.Anything, userID, inWindow).Return(nil, nil)
	fx.recorder.EXPECT().RecordReport(reportMonthly, mock.Anything).Return()

	report, err := fx.service.Monthly(context.Background(), userID, 3)
	require.NoError(t, err)
	require.Len(t, report.Glucose, 3)
	for _, month := range report.Glucose {
		assert.Zero(t, month.Average)
	}
}

func TestReportService_TodayIntake_CarbFailure(t *testing.T) {
	fx := createTestReportService(t)
	userID := uuid.New()

	fx.glucoseRepo.EXPECT().Stats(mock.Anything, userID, mock.Anything).Return(entity.SeriesStats{}, nil)
	fx.bolusRepo.EXPECT().Stats(mock.Anything, userID, mock.Anything).Return(entity.SeriesStats{}, nil)
	fx.basalRepo.EXPECT().Stats(mock.Anything, userID, mock.Anything).Return(entity.SeriesStats{}, nil)
	fx.bolusRepo.EXPECT().
		SumCarbIntake(mock.Anything, userID, mock.Anything).
		Return(0, context.DeadlineExceeded)
	fx.recorder.EXPECT().RecordReport(reportToday, mock.Anything).Return()

	_, err := fx.service.TodayIntake(context.Background(), userID)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReportService_DeviceStatus_PicksLatestDevice(t *testing.T) {
	fx := createTestReportService(t)
	userID := uuid.New()
	older := &entity.Device{
		ID:           uuid.New(),
		SerialNumber: "SN-OLD",
		Telemetry:    entity.DeviceTelemetry{BatteryPercentage: 10},
		UpdatedAt:    time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &entity.Device{
		ID:           uuid.New(),
		SerialNumber: "SN-NEW",
		Telemetry:    entity.DeviceTelemetry{BatteryPercentage: 90},
		UpdatedAt:    time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(mock.Anything, userID).Return([]*entity.Device{older, newer}, nil)
	fx.recorder.EXPECT().RecordReport(reportDeviceStatus, mock.Anything).Return()

	status, err := fx.service.DeviceStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "SN-NEW", status.SerialNumber)
	assert.InDelta(t, 90, status.BatteryPercentage, 1e-9)
	assert.Nil(t, status.ReportedAt)
}

func TestReportService_History_BasalFailure(t *testing.T) {
	fx := createTestReportService(t)
	userID := uuid.New()

	fx.glucoseRepo.EXPECT().Find(mock.Anything, userID, mock.Anything).Return(nil, nil)
	fx.bolusRepo.EXPECT().Find(mock.Anything, userID, mock.Anything).Return(nil, nil)
	fx.basalRepo.EXPECT().Find(mock.Anything, userID, mock.Anything).Return(nil, errors.New("boom"))
	fx.recorder.EXPECT().RecordReport(reportHistory, mock.Anything).Return()

	_, err := fx.service.History(context.Background(), userID, entity.DateWindow{})
	require.Error(t, err)
}
