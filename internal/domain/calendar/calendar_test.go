package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ym(t *testing.T, s string) YearMonth {
	t.Helper()

	v, err := ParseYearMonth(s)
	require.NoError(t, err)

	return v
}

func TestMonthBuckets_CrossesYearBoundary(t *testing.T) {
	start := ym(t, "2023-11").FirstDay()
	end := ym(t, "2024-02").FirstDay()

	buckets := MonthBuckets(start, end)

	require.Len(t, buckets, 4)
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, []string{
		buckets[0].String(), buckets[1].String(), buckets[2].String(), buckets[3].String(),
	})
}

func TestMonthBuckets_SameMonth(t *testing.T) {
	start := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 28, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, []YearMonth{{Year: 2024, Month: time.March}}, MonthBuckets(start, end))
}

func TestMonthBuckets_EndsMidMonthInclusive(t *testing.T) {
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	buckets := MonthBuckets(start, end)

	require.Len(t, buckets, 3)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, buckets[1])
}

func TestMonthBuckets_StartAfterEnd(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)

	buckets := MonthBuckets(start, end)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestMonthBuckets_Recallable(t *testing.T) {
	start := ym(t, "2022-12").FirstDay()
	end := ym(t, "2023-01").FirstDay()

	assert.Equal(t, MonthBuckets(start, end), MonthBuckets(start, end))
}

func TestParseYearMonth_Invalid(t *testing.T) {
	_, err := ParseYearMonth("2024-13")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	late := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, time.June, 10, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, DateOnly(late), DateOnly(early))
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), DateOnly(late))
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, time.June, 10, 21, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), Today(now, loc))
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), Today(now, nil))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{in: "2024-02-29T18:30:00Z", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{in: "2024-02-29 07:15", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDate("yesterday")
	assert.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "15:30", want: "15:30"},
		{in: "1530", want: "15:30"},
		{in: "905", want: "09:05"},
		{in: "9:05", want: "09:05"},
		{in: "15:30:10", want: "15:30:10"},
		{in: "08:00:00", want: "08:00"},
		{in: "8:00:0", want: "08:00"},
		{in: "23:59:00", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
