package forecast

import "time"

// US federal holidays used as per-holiday regressors in the seasonal model.
var usHolidayNames = []string{
	"new_years_day",
	"mlk_day",
	"washingtons_birthday",
	"memorial_day",
	"independence_day",
	"labor_day",
	"columbus_day",
	"veterans_day",
	"thanksgiving",
	"christmas",
}

// usHoliday returns the holiday name for a date, or "" when it is not one.
func usHoliday(d time.Time) string {
	y := d.Year()
	switch {
	case d.Month() == time.January && d.Day() == 1:
		return "new_years_day"
	case sameDay(d, nthWeekday(y, time.January, time.Monday, 3)):
		return "mlk_day"
	case sameDay(d, nthWeekday(y, time.February, time.Monday, 3)):
		return "washingtons_birthday"
	case sameDay(d, lastWeekday(y, time.May, time.Monday)):
		return "memorial_day"
	case d.Month() == time.July && d.Day() == 4:
		return "independence_day"
	case sameDay(d, nthWeekday(y, time.September, time.Monday, 1)):
		return "labor_day"
	case sameDay(d, nthWeekday(y, time.October, time.Monday, 2)):
		return "columbus_day"
	case d.Month() == time.November && d.Day() == 11:
		return "veterans_day"
	case sameDay(d, nthWeekday(y, time.November, time.Thursday, 4)):
		return "thanksgiving"
	case d.Month() == time.December && d.Day() == 25:
		return "christmas"
	}
	return ""
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// nthWeekday returns the n-th weekday of a month, e.g. the 3rd Monday of
// January.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the final weekday of a month, e.g. the last Monday of
// May.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}
