package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseGlucoseType(t *testing.T) {
	tests := []struct {
		in   string
		want GlucoseType
		ok   bool
	}{
		{"0", GlucoseTypeFasting, true},
		{"1", GlucoseTypeNonFasting, true},
		{"2", GlucoseTypeRandom, true},
		{"random", GlucoseTypeRandom, true},
		{"3", GlucoseType("3"), false},
		{"", GlucoseType(""), false},
	}

	for _, tt := range tests {
		got, ok := ParseGlucoseType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseBolusType(t *testing.T) {
	got, ok := ParseBolusType("1")
	assert.True(t, ok)
	assert.Equal(t, BolusTypeWizard, got)

	got, ok = ParseBolusType("correction")
	assert.True(t, ok)
	assert.Equal(t, BolusTypeCorrection, got)

	_, ok = ParseBolusType("extended")
	assert.False(t, ok)
}

func TestBolusReading_CarbIntake(t *testing.T) {
	withoutWizard := &BolusReading{Dose: 2}
	assert.Zero(t, withoutWizard.CarbIntake())

	withWizard := &BolusReading{Dose: 2, Wizard: &BolusWizard{FromWizard: true, CarbIntake: 45}}
	assert.InDelta(t, 45, withWizard.CarbIntake(), 0.0001)
}

func TestReading_Key(t *testing.T) {
	userID, deviceID := uuid.New(), uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	basal := &BasalReading{UserID: userID, DeviceID: deviceID, Date: date, StartTime: "06:00", EndTime: "08:00", Flow: 0.8}
	assert.Equal(t, ReadingKey{UserID: userID, DeviceID: deviceID, Date: date, Time: "06:00"}, basal.Key())
	assert.InDelta(t, 0.8, basal.Amount(), 0.0001)
}

func TestDateWindow(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	start, end := day(5), day(10)

	closed := DateWindow{Start: &start, End: &end}
	assert.True(t, closed.IsValid())
	assert.True(t, closed.Contains(day(5)))
	assert.True(t, closed.Contains(day(10)))
	assert.False(t, closed.Contains(day(11)))

	open := DateWindow{}
	assert.True(t, open.Contains(day(1)))

	inverted := DateWindow{Start: &end, End: &start}
	assert.False(t, inverted.IsValid())

	single := DayWindow(time.Date(2024, 1, 7, 18, 30, 0, 0, time.UTC))
	assert.True(t, single.Contains(day(7)))
	assert.False(t, single.Contains(day(8)))
}

func TestNewSeriesStats(t *testing.T) {
	assert.Equal(t, SeriesStats{}, NewSeriesStats(0, 0))
	assert.Equal(t, SeriesStats{Count: 2, Sum: 240, Avg: 120}, NewSeriesStats(2, 240))
}
