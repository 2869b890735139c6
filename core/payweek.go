package core

import "time"

// NormalizeDate drops the time-of-day component, leaving midnight UTC of
// the same calendar day.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DerivePayWeek fixes the Sunday..Saturday pay week around a reference
// date. Start is the most recent Sunday at or before ref (midnight UTC),
// end is the following Saturday at 23:59:59.999.
func DerivePayWeek(ref time.Time) (start, end time.Time) {
	day := NormalizeDate(ref)
	start = day.AddDate(0, 0, -int(day.Weekday()))
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}
