package entity

import (
	"time"

	"insulink/internal/domain/calendar"
)

// DateWindow bounds a report by calendar date. A nil bound is open.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// DayWindow returns the window covering exactly one calendar date.
func DayWindow(date time.Time) DateWindow {
	day := calendar.DateOnly(date)

	return DateWindow{Start: &day, End: &day}
}

// IsValid reports whether the window is not inverted.
func (w DateWindow) IsValid() bool {
	return w.Start == nil || w.End == nil || !w.Start.After(*w.End)
}

// Contains reports whether date lies inside the window, bounds included.
func (w DateWindow) Contains(date time.Time) bool {
	if w.Start != nil && date.Before(*w.Start) {
		return false
	}
	if w.End != nil && date.After(*w.End) {
		return false
	}

	return true
}

// SeriesStats aggregates one series over a window. Empty series yield zeros.
type SeriesStats struct {
	Count int64   `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
}

// NewSeriesStats derives the average from count and sum.
func NewSeriesStats(count int64, sum float64) SeriesStats {
	stats := SeriesStats{Count: count, Sum: sum}
	if count > 0 {
		stats.Avg = sum / float64(count)
	}

	return stats
}

// MonthlyAverage is one month bucket of a charted series.
type MonthlyAverage struct {
	calendar.YearMonth
	Average float64 `json:"average"`
}

// Summary is the headline dashboard report.
type Summary struct {
	GlucoseAvg float64 `json:"glucose_avg"`
	GlucoseSum float64 `json:"glucose_sum"`
	InsulinAvg float64 `json:"insulin_avg"`
	InsulinSum float64 `json:"insulin_sum"`
}

// MonthlyReport holds dense, ascending month series for charting.
type MonthlyReport struct {
	Glucose []MonthlyAverage `json:"glucose"`
	Bolus   []MonthlyAverage `json:"bolus"`
	Basal   []MonthlyAverage `json:"basal"`
}

// DailyIntake sums the readings of a single calendar day.
type DailyIntake struct {
	Date    time.Time `json:"date"`
	Glucose float64   `json:"glucose"`
	Insulin float64   `json:"insulin"`
	Carb    float64   `json:"carb"`
}

// ReadingsSeries is the raw per-row chart data.
type ReadingsSeries struct {
	Glucose []float64 `json:"glucose"`
	Insulin []float64 `json:"insulin"`
	Carb    []float64 `json:"carb"`
}

// DeviceStatus is the latest telemetry of the user's most recently updated device.
type DeviceStatus struct {
	DeviceID            string     `json:"device_id,omitempty"`
	SerialNumber        string     `json:"serial_number,omitempty"`
	BatteryPercentage   float64    `json:"battery_percentage"`
	ReservoirPercentage float64    `json:"reservoir_percentage"`
	ReservoirChangedAt  *time.Time `json:"reservoir_changed_at,omitempty"`
	PatchChangedAt      *time.Time `json:"patch_changed_at,omitempty"`
	ReportedAt          *time.Time `json:"reported_at,omitempty"`
}

// History holds the full reading rows of a window.
type History struct {
	Glucose []*GlucoseReading `json:"glucose"`
	Bolus   []*BolusReading   `json:"bolus"`
	Basal   []*BasalReading   `json:"basal"`
}
