package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MonthlySummary is one (year, month) group of the prediction frame with
// ticket and revenue columns summed.
type MonthlySummary struct {
	Label string `json:"month_year"`
	Year  int    `json:"year"`
	Month int    `json:"month"`

	TotalVisitors int `json:"total_visitors"`
	AdultTickets  int `json:"adult_tickets"`
	ChildTickets  int `json:"child_tickets"`

	AdultRevenue decimal.Decimal `json:"adult_revenue"`
	ChildRevenue decimal.Decimal `json:"child_revenue"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SummarizeMonthly groups prediction rows by (year, month) in chronological
// order, labelling each group "{month name} {year}".
func SummarizeMonthly(preds []Prediction) []MonthlySummary {
	var out []MonthlySummary
	for _, p := range preds {
		if len(out) == 0 || out[len(out)-1].Year != p.Year || out[len(out)-1].Month != p.Month {
			out = append(out, MonthlySummary{
				Label:        fmt.Sprintf("%s %d", p.MonthName, p.Year),
				Year:         p.Year,
				Month:        p.Month,
				AdultRevenue: decimal.Zero,
				ChildRevenue: decimal.Zero,
				TotalRevenue: decimal.Zero,
			})
		}
		g := &out[len(out)-1]
		g.TotalVisitors += p.TotalVisitors
		g.AdultTickets += p.AdultTickets
		g.ChildTickets += p.ChildTickets
		g.AdultRevenue = g.AdultRevenue.Add(p.AdultRevenue)
		g.ChildRevenue = g.ChildRevenue.Add(p.ChildRevenue)
		g.TotalRevenue = g.TotalRevenue.Add(p.TotalRevenue)
	}
	return out
}
