package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
	"github.com/lokchandra12/ZooPrediction/internal/ingest"
)

func frame(t *testing.T) []dataset.Record {
	t.Helper()
	// 2024-01-15 Monday, 16 Tuesday, 22 Monday.
	rows := []ingest.CleanRow{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), AdultTickets: 100, ChildTickets: 40, AdultPrice: decimal.NewFromInt(25), ChildPrice: decimal.NewFromInt(15)},
		{Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), AdultTickets: 80, ChildTickets: 30, AdultPrice: decimal.NewFromInt(25), ChildPrice: decimal.NewFromInt(15)},
		{Date: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), AdultTickets: 200, ChildTickets: 60, AdultPrice: decimal.NewFromInt(25), ChildPrice: decimal.NewFromInt(15)},
	}
	return dataset.Enrich(rows, dataset.DefaultPrices())
}

func TestBuildHistorical(t *testing.T) {
	rep := BuildHistorical(frame(t))

	if rep.Rows != 3 {
		t.Fatalf("rows=%d want=3", rep.Rows)
	}
	if rep.StartDate != "2024-01-15" || rep.EndDate != "2024-01-22" {
		t.Fatalf("range=%s..%s", rep.StartDate, rep.EndDate)
	}
	if rep.TotalVisitors != 510 {
		t.Fatalf("total visitors=%d want=510", rep.TotalVisitors)
	}
	// (100*25+40*15) + (80*25+30*15) + (200*25+60*15)
	if !rep.TotalRevenue.Equal(decimal.NewFromInt(11450)) {
		t.Fatalf("total revenue=%s want=11450", rep.TotalRevenue)
	}
	if rep.BusiestDay == nil || rep.BusiestDay.TotalVisitors != 260 {
		t.Fatalf("busiest=%+v", rep.BusiestDay)
	}
	if rep.QuietestDay == nil || rep.QuietestDay.TotalVisitors != 110 {
		t.Fatalf("quietest=%+v", rep.QuietestDay)
	}

	if len(rep.WeekdayAverages) != 7 {
		t.Fatalf("weekday averages=%d want=7", len(rep.WeekdayAverages))
	}
	mon := rep.WeekdayAverages[0]
	if mon.Day != "Monday" {
		t.Fatalf("first weekday=%s want=Monday", mon.Day)
	}
	// Two Mondays: (140 + 260) / 2.
	if mon.Visitors != 200 {
		t.Fatalf("monday avg visitors=%v want=200", mon.Visitors)
	}
	sun := rep.WeekdayAverages[6]
	if sun.Day != "Sunday" || sun.Visitors != 0 {
		t.Fatalf("sunday=%+v want empty bucket", sun)
	}
}

func TestBuildHistorical_Empty(t *testing.T) {
	rep := BuildHistorical(nil)
	if rep.Rows != 0 || rep.BusiestDay != nil || rep.QuietestDay != nil {
		t.Fatalf("report=%+v", rep)
	}
}

func TestBuildForecast(t *testing.T) {
	preds := []forecast.Prediction{
		{TotalVisitors: 100, TotalRevenue: decimal.NewFromInt(3000)},
		{TotalVisitors: 200, TotalRevenue: decimal.NewFromInt(5000)},
	}
	rep := BuildForecast(preds)
	if rep.Days != 2 || rep.TotalVisitors != 300 {
		t.Fatalf("report=%+v", rep)
	}
	if !rep.TotalRevenue.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("total revenue=%s want=8000", rep.TotalRevenue)
	}
	if rep.AvgDailyVisitors != 150 {
		t.Fatalf("avg visitors=%v want=150", rep.AvgDailyVisitors)
	}
	if !rep.AvgDailyRevenue.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("avg revenue=%s want=4000", rep.AvgDailyRevenue)
	}
}

func TestBuildForecast_Empty(t *testing.T) {
	rep := BuildForecast(nil)
	if rep.Days != 0 || rep.TotalVisitors != 0 {
		t.Fatalf("report=%+v", rep)
	}
}
