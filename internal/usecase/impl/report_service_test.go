package impl

import (
	"context"
	"testing"
	"time"

	"insulink/config"
	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadDays stores samplePayload for every date.
func uploadDays(t *testing.T, store *testStore, userID uuid.UUID, serial string, dates ...string) {
	t.Helper()

	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	for _, date := range dates {
		_, err := srv.Ingest(context.Background(), userID, samplePayload(serial, date))
		require.NoError(t, err)
	}
}

func TestReportService_Summary(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01")
	srv := newTestReportService(store, time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	summary, err := srv.Summary(context.Background(), userID, entity.DateWindow{})
	require.NoError(t, err)

	assert.InDelta(t, 240, summary.GlucoseSum, 0.0001)
	assert.InDelta(t, 120, summary.GlucoseAvg, 0.0001)
	// bolus 4 + 2, basal 0.8 + 1.2
	assert.InDelta(t, 8, summary.InsulinSum, 0.0001)
	// (avg basal 1 + avg bolus 3) / 2
	assert.InDelta(t, 2, summary.InsulinAvg, 0.0001)
}

func TestReportService_Summary_NoData(t *testing.T) {
	store := newTestStore(t)
	srv := newTestReportService(store, time.Now())

	summary, err := srv.Summary(context.Background(), uuid.New(), entity.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, &entity.Summary{}, summary)
}

func TestReportService_Summary_WindowBoundsInclusive(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01", "2024-05-03", "2024-05-05")
	srv := newTestReportService(store, time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	start, end := day(2024, 5, 1), day(2024, 5, 3)
	summary, err := srv.Summary(ctx, userID, entity.DateWindow{Start: &start, End: &end})
	require.NoError(t, err)
	assert.InDelta(t, 480, summary.GlucoseSum, 0.0001)

	summary, err = srv.Summary(ctx, userID, entity.DateWindow{Start: &end, End: &end})
	require.NoError(t, err)
	assert.InDelta(t, 240, summary.GlucoseSum, 0.0001)

	summary, err = srv.Summary(ctx, userID, entity.DateWindow{Start: &end})
	require.NoError(t, err)
	assert.InDelta(t, 480, summary.GlucoseSum, 0.0001)

	summary, err = srv.Summary(ctx, userID, entity.DateWindow{End: &start})
	require.NoError(t, err)
	assert.InDelta(t, 240, summary.GlucoseSum, 0.0001)
}

func TestReportService_Summary_InvertedWindow(t *testing.T) {
	store := newTestStore(t)
	srv := newTestReportService(store, time.Now())
	start, end := day(2024, 5, 3), day(2024, 5, 1)

	_, err := srv.Summary(context.Background(), uuid.New(), entity.DateWindow{Start: &start, End: &end})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Monthly_FillsEmptyMonths(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01", "2024-02-10")
	srv := newTestReportService(store, time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC))

	report, err := srv.Monthly(context.Background(), userID, 3)
	require.NoError(t, err)

	require.Len(t, report.Glucose, 3)
	require.Len(t, report.Bolus, 3)
	require.Len(t, report.Basal, 3)

	assert.Equal(t, calendar.YearMonth{Year: 2024, Month: time.March}, report.Glucose[0].YearMonth)
	assert.Equal(t, calendar.YearMonth{Year: 2024, Month: time.April}, report.Glucose[1].YearMonth)
	assert.Equal(t, calendar.YearMonth{Year: 2024, Month: time.May}, report.Glucose[2].YearMonth)

	assert.Zero(t, report.Glucose[0].Average)
	assert.Zero(t, report.Glucose[1].Average)
	assert.InDelta(t, 120, report.Glucose[2].Average, 0.0001)
	assert.InDelta(t, 3, report.Bolus[2].Average, 0.0001)
	assert.InDelta(t, 1, report.Basal[2].Average, 0.0001)
}

func TestReportService_Monthly_CrossesYear(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2023-12-24")
	srv := newTestReportService(store, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))

	report, err := srv.Monthly(context.Background(), userID, 3)
	require.NoError(t, err)

	months := make([]string, 0, len(report.Glucose))
	for _, m := range report.Glucose {
		months = append(months, m.String())
	}
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01"}, months)
	assert.InDelta(t, 120, report.Glucose[1].Average, 0.0001)
}

func TestReportService_Monthly_OutOfRange(t *testing.T) {
	store := newTestStore(t)
	srv := newTestReportService(store, time.Now())

	for _, months := range []int{0, -1, 25} {
		_, err := srv.Monthly(context.Background(), uuid.New(), months)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "months=%d", months)
	}
}

func TestReportService_TodayIntake(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))
	ctx := context.Background()

	payload := &usecase.UploadPayload{
		Device: devicePayload("SN-1"),
		Glucose: []usecase.GlucoseDayPayload{
			{Date: "2024-05-01", Samples: []usecase.GlucoseSamplePayload{{ReadingTime: "23:59", Value: floatPtr(180), Type: "2"}}},
			{Date: "2024-05-02", Samples: []usecase.GlucoseSamplePayload{
				{ReadingTime: "00:01", Value: floatPtr(95), Type: "0"},
				{ReadingTime: "23:59", Value: floatPtr(110), Type: "2"},
			}},
		},
		Insulin: []usecase.InsulinDayPayload{
			{
				Date:  "2024-05-01",
				Bolus: []usecase.BolusDosePayload{{Time: "23:59", Unit: floatPtr(5), Type: "1", CarbIntake: floatPtr(60)}},
			},
			{
				Date:  "2024-05-02",
				Bolus: []usecase.BolusDosePayload{
					{Time: "00:01", Unit: floatPtr(1.5), Type: "1", CarbIntake: floatPtr(20)},
					{Time: "07:00", Unit: floatPtr(1), Type: "0"},
					{Time: "23:59", Unit: floatPtr(2), Type: "1", CarbIntake: floatPtr(15)},
				},
				Basal: []usecase.BasalRatePayload{{StartTime: "00:00", EndTime: "06:00", Flow: floatPtr(0.5)}},
			},
		},
	}
	_, err := srv.Ingest(ctx, userID, payload)
	require.NoError(t, err)

	reports := newTestReportService(store, time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC))
	intake, err := reports.TodayIntake(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, day(2024, 5, 2), intake.Date)
	// 00:01 and 23:59 both belong to the day; 23:59 the day before does not.
	assert.InDelta(t, 205, intake.Glucose, 0.0001)
	assert.InDelta(t, 5, intake.Insulin, 0.0001)
	// The dose without wizard data adds no carbs.
	assert.InDelta(t, 35, intake.Carb, 0.0001)
}

func TestReportService_TodayIntake_UsesReportTimezone(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-02")

	// 20:00 UTC on May 1st is already May 2nd at UTC+8.
	reports := newTestReportService(store, time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC))
	reports.location = time.FixedZone("UTC+8", 8*60*60)

	intake, err := reports.TodayIntake(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 5, 2), intake.Date)
	assert.InDelta(t, 240, intake.Glucose, 0.0001)
	assert.InDelta(t, 45, intake.Carb, 0.0001)
}

func TestReportService_TodayIntake_NoData(t *testing.T) {
	store := newTestStore(t)
	reports := newTestReportService(store, time.Now())

	intake, err := reports.TodayIntake(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, intake.Glucose)
	assert.Zero(t, intake.Insulin)
	assert.Zero(t, intake.Carb)
}

func TestReportService_ReadingsSeries(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01")
	reports := newTestReportService(store, time.Now())

	series, err := reports.ReadingsSeries(context.Background(), userID, entity.DateWindow{})
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 140}, series.Glucose)
	require.Len(t, series.Insulin, 2)
	assert.InDelta(t, 4.8, series.Insulin[0], 0.0001)
	assert.InDelta(t, 3.2, series.Insulin[1], 0.0001)
	assert.Equal(t, []float64{45, 0}, series.Carb)
}

func TestReportService_ReadingsSeries_UnequalLengths(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	srv := newTestIngestionService(store, newTestConfig(config.UnregisteredDeviceReject))

	payload := samplePayload("SN-1", "2024-05-01")
	payload.Insulin[0].Basal = append(payload.Insulin[0].Basal, usecase.BasalRatePayload{
		StartTime: "1200", EndTime: "1800", Flow: floatPtr(0.6),
	})
	_, err := srv.Ingest(context.Background(), userID, payload)
	require.NoError(t, err)

	series, err := newTestReportService(store, time.Now()).ReadingsSeries(context.Background(), userID, entity.DateWindow{})
	require.NoError(t, err)

	require.Len(t, series.Insulin, 3)
	assert.InDelta(t, 0.6, series.Insulin[2], 0.0001)
	assert.Len(t, series.Carb, 2)
}

func TestReportService_ReadingsSeries_Empty(t *testing.T) {
	store := newTestStore(t)

	series, err := newTestReportService(store, time.Now()).ReadingsSeries(context.Background(), uuid.New(), entity.DateWindow{})
	require.NoError(t, err)
	assert.NotNil(t, series.Glucose)
	assert.Empty(t, series.Glucose)
	assert.Empty(t, series.Insulin)
	assert.Empty(t, series.Carb)
}

func TestReportService_DeviceStatus(t *testing.T) {
	store := newTestStore(t)
	userID, device := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01")
	reports := newTestReportService(store, time.Now())

	status, err := reports.DeviceStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, device.ID.String(), status.DeviceID)
	assert.Equal(t, "SN-1", status.SerialNumber)
	assert.InDelta(t, 85, status.BatteryPercentage, 0.0001)
	assert.InDelta(t, 60, status.ReservoirPercentage, 0.0001)
	require.NotNil(t, status.ReportedAt)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), *status.ReportedAt)
}

func TestReportService_DeviceStatus_NoDevice(t *testing.T) {
	store := newTestStore(t)

	status, err := newTestReportService(store, time.Now()).DeviceStatus(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &entity.DeviceStatus{}, status)
}

func TestReportService_History(t *testing.T) {
	store := newTestStore(t)
	userID, _ := store.seed(t, "SN-1")
	uploadDays(t, store, userID, "SN-1", "2024-05-01", "2024-05-02")
	reports := newTestReportService(store, time.Now())

	only := day(2024, 5, 2)
	history, err := reports.History(context.Background(), userID, entity.DateWindow{Start: &only, End: &only})
	require.NoError(t, err)

	require.Len(t, history.Glucose, 2)
	assert.Len(t, history.Bolus, 2)
	assert.Len(t, history.Basal, 2)
	assert.Equal(t, only, history.Glucose[0].Date)
}
