package utils

import (
	"os"
	"time"
)

// MonthKey is a calendar-month bucket in "YYYY-MM" form, derived from an
// event timestamp in the configured report timezone.
type MonthKey string

const monthKeyLayout = "2006-01"

// Report timezone; all month bucketing happens here so a payment recorded
// late on the last day of a month lands in the month the admin expects.
var reportLoc = func() *time.Location {
	if tz := os.Getenv("REPORT_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}()

func ReportLocation() *time.Location {
	return reportLoc
}

func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.In(reportLoc).Format(monthKeyLayout))
}

// MonthKeyOfUnix buckets an epoch value in seconds.
func MonthKeyOfUnix(sec int64) MonthKey {
	return MonthKeyOf(time.Unix(sec, 0))
}

func CurrentMonthKey() MonthKey {
	return MonthKeyOf(time.Now())
}

// FormatDateUnix renders an epoch-seconds value as "YYYY-MM-DD" in the
// report timezone, the form the report shapes carry dates in.
func FormatDateUnix(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).In(reportLoc).Format("2006-01-02")
}

// ParseDateUnix parses a "YYYY-MM-DD" date in the report timezone to
// epoch seconds at midnight.
func ParseDateUnix(s string) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", s, reportLoc)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.ParseInLocation(monthKeyLayout, s, reportLoc)
	if err != nil {
		return "", ErrInvalidMonth
	}
	return MonthKey(t.Format(monthKeyLayout)), nil
}

func (m MonthKey) String() string { return string(m) }

// Bounds returns the half-open unix-seconds interval [start, end)
// covering the month in the report timezone.
func (m MonthKey) Bounds() (int64, int64) {
	t, err := time.ParseInLocation(monthKeyLayout, string(m), reportLoc)
	if err != nil {
		return 0, 0
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, reportLoc)
	end := start.AddDate(0, 1, 0)
	return start.Unix(), end.Unix()
}

// Prev returns the preceding calendar month.
func (m MonthKey) Prev() MonthKey {
	t, err := time.ParseInLocation(monthKeyLayout, string(m), reportLoc)
	if err != nil {
		return m
	}
	return MonthKey(t.AddDate(0, -1, 0).Format(monthKeyLayout))
}

// LastMonthKeys returns the trailing n months ending at (and including)
// the current month, most recent first.
func LastMonthKeys(n int) []MonthKey {
	keys := make([]MonthKey, 0, n)
	m := CurrentMonthKey()
	for i := 0; i < n; i++ {
		keys = append(keys, m)
		m = m.Prev()
	}
	return keys
}
