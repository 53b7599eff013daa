package forecast

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
)

// Prediction mirrors the historical record's ticket/revenue/calendar fields
// for one forecast day, after smoothing and reconciliation.
type Prediction struct {
	Date time.Time `json:"date"`

	TotalVisitors int `json:"total_visitors"`
	AdultTickets  int `json:"adult_tickets"`
	ChildTickets  int `json:"child_tickets"`

	AdultPrice   decimal.Decimal `json:"adult_price"`
	ChildPrice   decimal.Decimal `json:"child_price"`
	AdultRevenue decimal.Decimal `json:"adult_revenue"`
	ChildRevenue decimal.Decimal `json:"child_revenue"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	DayOfWeek int    `json:"dayofweek"`
	IsWeekend bool   `json:"is_weekend"`
	DayName   string `json:"day_name"`
	MonthName string `json:"month_name"`
}

// Predict generates the forecast frame for the next days calendar days after
// the last historical date. The three count series are forecast
// independently, smoothed, rounded and clamped, then reconciled so that
// adult + child always equals total, with total as the anchor.
func (m *ModelSet) Predict(days int) ([]Prediction, error) {
	if days <= 0 {
		return nil, &InvalidHorizonError{Days: days}
	}

	preds := make([]Prediction, days)
	for i := 0; i < days; i++ {
		date := m.lastDate.AddDate(0, 0, i+1)
		factor := MonthEndFactor(date)

		total := clampCount(m.totalVisitors.predict(date) * factor)
		adult := clampCount(m.adultTickets.predict(date) * factor)
		child := clampCount(m.childTickets.predict(date) * factor)

		if adult+child != total {
			// Continue the trend model's index sequence past the end of
			// history; the share is clipped to a valid percentage.
			pct := m.adultShare.at(float64(m.historyLen + i + 1))
			pct = math.Max(0, math.Min(100, pct))
			adult = int(math.Round(float64(total) * pct / 100))
			child = total - adult
		}

		p := Prediction{
			Date:          date,
			TotalVisitors: total,
			AdultTickets:  adult,
			ChildTickets:  child,
			AdultPrice:    m.lastAdultPrice,
			ChildPrice:    m.lastChildPrice,
		}
		p.AdultRevenue = decimal.NewFromInt(int64(adult)).Mul(m.lastAdultPrice)
		p.ChildRevenue = decimal.NewFromInt(int64(child)).Mul(m.lastChildPrice)
		p.TotalRevenue = p.AdultRevenue.Add(p.ChildRevenue)

		p.Year = date.Year()
		p.Month = int(date.Month())
		p.Day = date.Day()
		p.DayOfWeek = dataset.MondayIndexed(date.Weekday())
		p.IsWeekend = p.DayOfWeek >= 5
		p.DayName = date.Weekday().String()
		p.MonthName = date.Month().String()

		preds[i] = p
	}

	return preds, nil
}

func clampCount(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	return n
}
