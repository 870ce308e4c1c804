package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"insulink/config"
	deliverycontext "insulink/internal/delivery/context"
	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/domain/service"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Report names used for metrics.
const (
	reportSummary        = "summary"
	reportMonthly        = "monthly"
	reportToday          = "today"
	reportReadingsSeries = "readings_series"
	reportDeviceStatus   = "device_status"
	reportHistory        = "history"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	deviceRepo  repository.DeviceRepository
	glucoseRepo repository.GlucoseRepository
	bolusRepo   repository.BolusRepository
	basalRepo   repository.BasalRepository
	recorder    service.UsageRecorder
	location    *time.Location
	maxMonths   int
	logger      *slog.Logger
	now         func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	GlucoseRepo repository.GlucoseRepository
	BolusRepo   repository.BolusRepository
	BasalRepo   repository.BasalRepository
	Recorder    service.UsageRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	srv := &reportService{
		deviceRepo:  params.DeviceRepo,
		glucoseRepo: params.GlucoseRepo,
		bolusRepo:   params.BolusRepo,
		basalRepo:   params.BasalRepo,
		recorder:    params.Recorder,
		location:    time.UTC,
		logger:      params.Logger,
		now:         time.Now,
	}

	if cfg := params.Config.Report; cfg != nil {
		srv.location = cfg.Location()
		srv.maxMonths = cfg.MaxMonths
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// record reports the query outcome and passes err through.
func (srv *reportService) record(name string, err error) error {
	srv.recorder.RecordReport(name, err)

	return err
}

func (srv *reportService) today() time.Time {
	return calendar.Today(srv.now(), srv.location)
}

// Summary returns glucose and insulin totals and averages in the window.
func (srv *reportService) Summary(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.Summary, error) {
	if err := windowError(window); err != nil {
		return nil, srv.record(reportSummary, err)
	}

	glucose, err := srv.glucoseRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportSummary, storeError(err, "failed to aggregate glucose"))
	}
	bolus, err := srv.bolusRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportSummary, storeError(err, "failed to aggregate bolus"))
	}
	basal, err := srv.basalRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportSummary, storeError(err, "failed to aggregate basal"))
	}

	// Mean of the two series means, not the mean over all insulin rows.
	summary := &entity.Summary{
		GlucoseAvg: glucose.Avg,
		GlucoseSum: glucose.Sum,
		InsulinAvg: (basal.Avg + bolus.Avg) / 2,
		InsulinSum: basal.Sum + bolus.Sum,
	}

	return summary, srv.record(reportSummary, nil)
}

// Monthly returns dense month series ending with the current month.
func (srv *reportService) Monthly(ctx context.Context, userID uuid.UUID, monthsBack int) (*entity.MonthlyReport, error) {
	if monthsBack < 1 || (srv.maxMonths > 0 && monthsBack > srv.maxMonths) {
		reason := "must be at least 1"
		if srv.maxMonths > 0 {
			reason = "must be between 1 and " + strconv.Itoa(srv.maxMonths)
		}
		err := domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "months", Reason: reason})

		return nil, srv.record(reportMonthly, err)
	}

	today := srv.today()
	first := calendar.MonthOf(today).FirstDay().AddDate(0, -(monthsBack - 1), 0)
	window := entity.DateWindow{Start: &first, End: &today}
	buckets := calendar.MonthBuckets(first, today)

	glucose, err := srv.glucoseRepo.MonthlyAverages(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportMonthly, storeError(err, "failed to aggregate monthly glucose"))
	}
	bolus, err := srv.bolusRepo.MonthlyAverages(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportMonthly, storeError(err, "failed to aggregate monthly bolus"))
	}
	basal, err := srv.basalRepo.MonthlyAverages(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportMonthly, storeError(err, "failed to aggregate monthly basal"))
	}

	report := &entity.MonthlyReport{
		Glucose: fillMonths(buckets, glucose),
		Bolus:   fillMonths(buckets, bolus),
		Basal:   fillMonths(buckets, basal),
	}

	return report, srv.record(reportMonthly, nil)
}

// fillMonths lays the sparse averages over the dense buckets. Months without
// data average 0.
func fillMonths(buckets []calendar.YearMonth, averages []entity.MonthlyAverage) []entity.MonthlyAverage {
	byMonth := make(map[calendar.YearMonth]float64, len(averages))
	for _, avg := range averages {
		byMonth[avg.YearMonth] = avg.Average
	}

	filled := make([]entity.MonthlyAverage, 0, len(buckets))
	for _, month := range buckets {
		filled = append(filled, entity.MonthlyAverage{YearMonth: month, Average: byMonth[month]})
	}

	return filled
}

// TodayIntake sums the readings of the current calendar day.
func (srv *reportService) TodayIntake(ctx context.Context, userID uuid.UUID) (*entity.DailyIntake, error) {
	today := srv.today()
	window := entity.DayWindow(today)

	glucose, err := srv.glucoseRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportToday, storeError(err, "failed to sum glucose"))
	}
	bolus, err := srv.bolusRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportToday, storeError(err, "failed to sum bolus"))
	}
	basal, err := srv.basalRepo.Stats(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportToday, storeError(err, "failed to sum basal"))
	}
	carb, err := srv.bolusRepo.SumCarbIntake(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportToday, storeError(err, "failed to sum carbs"))
	}

	intake := &entity.DailyIntake{
		Date:    today,
		Glucose: glucose.Sum,
		Insulin: bolus.Sum + basal.Sum,
		Carb:    carb,
	}

	return intake, srv.record(reportToday, nil)
}

// ReadingsSeries returns per-row values for charting. Insulin pairs basal and
// bolus rows by position; a missing counterpart counts as 0.
func (srv *reportService) ReadingsSeries(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.ReadingsSeries, error) {
	if err := windowError(window); err != nil {
		return nil, srv.record(reportReadingsSeries, err)
	}

	glucose, err := srv.glucoseRepo.Find(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportReadingsSeries, storeError(err, "failed to list glucose"))
	}
	bolus, err := srv.bolusRepo.Find(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportReadingsSeries, storeError(err, "failed to list bolus"))
	}
	basal, err := srv.basalRepo.Find(ctx, userID, window)
	if err != nil {
		return nil, srv.record(reportReadingsSeries, storeError(err, "failed to list basal"))
	}

	if len(basal) != len(bolus) {
		srv.log(ctx).Warn("Basal and bolus row counts differ, pairing by position",
			slog.String("user_id", userID.String()),
			slog.Int("basal", len(basal)),
			slog.Int("bolus", len(bolus)),
		)
	}

	series := &entity.ReadingsSeries{
		Glucose: make([]float64, 0, len(glucose)),
		Insulin: make([]float64, 0, len(basal)),
		Carb:    make([]float64, 0, len(bolus)),
	}
	for _, r := range glucose {
		series.Glucose = append(series.Glucose, r.Value)
	}
	for i, r := range basal {
		insulin := r.Flow
		if i < len(bolus) {
			insulin += bolus[i].Dose
		}
		series.Insulin = append(series.Insulin, insulin)
	}
	for _, r := range bolus {
		series.Carb = append(series.Carb, r.CarbIntake())
	}

	return series, srv.record(reportReadingsSeries, nil)
}

// DeviceStatus returns the telemetry of the most recently updated device.
// A user without devices gets a zero status.
func (srv *reportService) DeviceStatus(ctx context.Context, userID uuid.UUID) (*entity.DeviceStatus, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, srv.record(reportDeviceStatus, storeError(err, "failed to find user devices"))
	}

	status := &entity.DeviceStatus{}
	if len(devices) == 0 {
		return status, srv.record(reportDeviceStatus, nil)
	}

	latest := devices[0]
	for _, device := range devices[1:] {
		if device.UpdatedAt.After(latest.UpdatedAt) {
			latest = device
		}
	}

	telemetry := latest.Telemetry
	status.DeviceID = latest.ID.String()
	status.SerialNumber = latest.SerialNumber
	status.BatteryPercentage = telemetry.BatteryPercentage
	status.ReservoirPercentage = telemetry.ReservoirPercentage
	status.ReservoirChangedAt = optionalTime(telemetry.ReservoirChangedAt)
	status.PatchChangedAt = optionalTime(telemetry.PatchChangedAt)
	status.ReportedAt = optionalTime(telemetry.ReportedAt)

	return status, srv.record(reportDeviceStatus, nil)
}

// History returns the full reading rows in the window.
func (srv *reportService) History(ctx context.Context, userID uuid.UUID, window entity.DateWindow) (*entity.History, error) {
	if err := windowError(window); err != nil {
		return nil, srv.record(reportHistory, err)
	}

	history := &entity.History{}
	var err error
	if history.Glucose, err = srv.glucoseRepo.Find(ctx, userID, window); err != nil {
		return nil, srv.record(reportHistory, storeError(err, "failed to list glucose"))
	}
	if history.Bolus, err = srv.bolusRepo.Find(ctx, userID, window); err != nil {
		return nil, srv.record(reportHistory, storeError(err, "failed to list bolus"))
	}
	if history.Basal, err = srv.basalRepo.Find(ctx, userID, window); err != nil {
		return nil, srv.record(reportHistory, storeError(err, "failed to list basal"))
	}

	return history, srv.record(reportHistory, nil)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
