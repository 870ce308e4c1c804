// Package calendar contains the pure date helpers shared by ingestion and
// reporting: calendar-day normalisation, clock strings and month buckets.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"insulink/internal/errors"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// timestampLayouts are tried in order when parsing device timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// YearMonth identifies one calendar month bucket.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the bucket t falls into, in t's own location.
func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "2006-01".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, errors.Wrapf(err, "invalid year-month %q", s)
	}

	return MonthOf(t), nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Before reports whether ym is an earlier month than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}

	return ym.Month < other.Month
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}

	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// FirstDay returns midnight UTC of the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthBuckets lists every calendar month from start to end, both inclusive,
// in ascending order. It returns an empty slice when start is after end.
func MonthBuckets(start, end time.Time) []YearMonth {
	first, last := MonthOf(start), MonthOf(end)
	if last.Before(first) {
		return []YearMonth{}
	}

	buckets := make([]YearMonth, 0, (last.Year-first.Year)*12+int(last.Month-first.Month)+1)
	for ym := first; !last.Before(ym); ym = ym.Next() {
		buckets = append(buckets, ym)
	}

	return buckets
}

// DateOnly strips the time of day, keeping t's calendar date as midnight UTC.
// Readings are stored under this value so date equality means same day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc as midnight UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return DateOnly(now.In(loc))
}

// ParseTimestamp parses the timestamp formats emitted by pump firmware.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid timestamp %q", s)
}

// ParseDate parses a date or timestamp and keeps only its calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q", s)
	}

	return DateOnly(t), nil
}

// NormalizeClock canonicalises a time of day. Seconds are kept only when
// non-zero, so "08:00", "0800" and "08:00:00" all become "08:00" while
// "15:30:10" stays as is. Firmware sends "1530", "9:05" or "15:30:10".
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty time of day")
	}

	var parts []string
	if strings.Contains(s, ":") {
		parts = strings.Split(s, ":")
	} else {
		if len(s) < 3 || len(s) > 4 {
			return "", errors.Errorf("invalid time of day %q", s)
		}
		parts = []string{s[:len(s)-2], s[len(s)-2:]}
	}

	if len(parts) < 2 || len(parts) > 3 {
		return "", errors.Errorf("invalid time of day %q", s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > limits[i] || len(part) > 2 {
			return "", errors.Errorf("invalid time of day %q", s)
		}
		values[i] = v
	}

	if len(values) == 3 && values[2] != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", values[0], values[1], values[2]), nil
	}

	return fmt.Sprintf("%02d:%02d", values[0], values[1]), nil
}
