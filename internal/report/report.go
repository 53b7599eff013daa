package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
)

// WeekdayAverage is the mean traffic profile for one day of the week.
type WeekdayAverage struct {
	Day          string          `json:"day"`
	Visitors     float64         `json:"avg_visitors"`
	AdultTickets float64         `json:"avg_adult_tickets"`
	ChildTickets float64         `json:"avg_child_tickets"`
	Revenue      decimal.Decimal `json:"avg_revenue"`
}

// Historical summarizes the loaded frame for the operator: range overview,
// the busiest and quietest days, and per-weekday averages.
type Historical struct {
	Rows          int             `json:"rows"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalVisitors int             `json:"total_visitors"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`

	BusiestDay  *dataset.Record `json:"busiest_day,omitempty"`
	QuietestDay *dataset.Record `json:"quietest_day,omitempty"`

	WeekdayAverages []WeekdayAverage `json:"weekday_averages"`
}

const dateLayout = "2006-01-02"

// BuildHistorical computes the historical report from an enriched frame.
func BuildHistorical(records []dataset.Record) Historical {
	out := Historical{Rows: len(records), TotalRevenue: decimal.Zero}
	if len(records) == 0 {
		return out
	}

	out.StartDate = records[0].Date.Format(dateLayout)
	out.EndDate = records[len(records)-1].Date.Format(dateLayout)

	busiest, quietest := 0, 0
	for i, r := range records {
		out.TotalVisitors += r.TotalVisitors
		out.TotalRevenue = out.TotalRevenue.Add(r.TotalRevenue)
		if r.TotalVisitors > records[busiest].TotalVisitors {
			busiest = i
		}
		if r.TotalVisitors < records[quietest].TotalVisitors {
			quietest = i
		}
	}
	out.BusiestDay = &records[busiest]
	out.QuietestDay = &records[quietest]
	out.WeekdayAverages = weekdayAverages(records)
	return out
}

func weekdayAverages(records []dataset.Record) []WeekdayAverage {
	type bucket struct {
		n        int
		visitors int
		adult    int
		child    int
		revenue  decimal.Decimal
	}
	buckets := make([]bucket, 7)
	for i := range buckets {
		buckets[i].revenue = decimal.Zero
	}
	for _, r := range records {
		b := &buckets[r.DayOfWeek]
		b.n++
		b.visitors += r.TotalVisitors
		b.adult += r.AdultTickets
		b.child += r.ChildTickets
		b.revenue = b.revenue.Add(r.TotalRevenue)
	}

	// Monday first, matching the frame's day-of-week convention.
	out := make([]WeekdayAverage, 0, 7)
	for i := 0; i < 7; i++ {
		name := time.Weekday((i + 1) % 7).String()
		avg := WeekdayAverage{Day: name, Revenue: decimal.Zero}
		if b := buckets[i]; b.n > 0 {
			avg.Visitors = float64(b.visitors) / float64(b.n)
			avg.AdultTickets = float64(b.adult) / float64(b.n)
			avg.ChildTickets = float64(b.child) / float64(b.n)
			avg.Revenue = b.revenue.Div(decimal.NewFromInt(int64(b.n)))
		}
		out = append(out, avg)
	}
	return out
}

// Forecast summarizes a generated horizon: totals and daily averages.
type Forecast struct {
	Days             int             `json:"days"`
	TotalVisitors    int             `json:"total_visitors"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AvgDailyVisitors float64         `json:"avg_daily_visitors"`
	AvgDailyRevenue  decimal.Decimal `json:"avg_daily_revenue"`
}

// BuildForecast computes the horizon summary report.
func BuildForecast(preds []forecast.Prediction) Forecast {
	out := Forecast{Days: len(preds), TotalRevenue: decimal.Zero, AvgDailyRevenue: decimal.Zero}
	if len(preds) == 0 {
		return out
	}
	for _, p := range preds {
		out.TotalVisitors += p.TotalVisitors
		out.TotalRevenue = out.TotalRevenue.Add(p.TotalRevenue)
	}
	n := decimal.NewFromInt(int64(len(preds)))
	out.AvgDailyVisitors = float64(out.TotalVisitors) / float64(len(preds))
	out.AvgDailyRevenue = out.TotalRevenue.Div(n)
	return out
}
