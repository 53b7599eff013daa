package forecast

import "time"

// MonthEndFactor is the month-end smoothing stage: a pure multiplier applied
// to raw forecasts before rounding. The underlying seasonal model
// systematically under-predicts near month boundaries; days inside the last
// five calendar days of a month get a graded boost of
// 1 + 0.05*(4 - days_from_month_end), so the very last day is lifted by 20%
// and anything outside the window passes through at 1.0.
func MonthEndFactor(d time.Time) float64 {
	dim := daysInMonth(d)
	dom := d.Day()
	if dom <= dim-5 {
		return 1.0
	}
	daysFromEnd := dim - dom
	return 1.0 + 0.05*float64(4-daysFromEnd)
}

func daysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}
