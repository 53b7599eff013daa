package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/ingest"
)

// historyRecords builds an enriched frame with a weekly attendance pattern.
func historyRecords(t *testing.T, n int) []dataset.Record {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]ingest.CleanRow, n)
	for i := range rows {
		d := start.AddDate(0, 0, i)
		adult, child := 100.0, 40.0
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			adult, child = 160.0, 80.0
		}
		rows[i] = ingest.CleanRow{
			Date:         d,
			AdultTickets: adult,
			ChildTickets: child,
			AdultPrice:   decimal.NewFromInt(25),
			ChildPrice:   decimal.NewFromInt(15),
		}
	}
	return dataset.Enrich(rows, dataset.DefaultPrices())
}

func TestFit_TooFewRecords(t *testing.T) {
	_, err := Fit(historyRecords(t, 1), DefaultConfig())
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err=%v want=*InsufficientDataError", err)
	}
}

func TestFit_CarriesForwardState(t *testing.T) {
	records := historyRecords(t, 90)
	m, err := Fit(records, DefaultConfig())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	last := records[len(records)-1]
	if !m.LastDate().Equal(last.Date) {
		t.Fatalf("last date=%v want=%v", m.LastDate(), last.Date)
	}
	if m.HistoryLen() != 90 {
		t.Fatalf("history len=%d want=90", m.HistoryLen())
	}
	if m.YearlySeasonality() {
		t.Fatalf("yearly enabled for 90 observations")
	}
}

func TestPredict_InvalidHorizon(t *testing.T) {
	m, err := Fit(historyRecords(t, 60), DefaultConfig())
	if err != nil {
		t.Fatalf("fit err=%v", err)
	}
	for _, days := range []int{0, -5} {
		_, err := m.Predict(days)
		var invalid *InvalidHorizonError
		if !errors.As(err, &invalid) {
			t.Fatalf("Predict(%d) err=%v want=*InvalidHorizonError", days, err)
		}
		if invalid.Days != days {
			t.Fatalf("days=%d want=%d", invalid.Days, days)
		}
	}
}

func TestPredict_FrameInvariants(t *testing.T) {
	records := historyRecords(t, 120)
	m, err := Fit(records, DefaultConfig())
	if err != nil {
		t.Fatalf("fit err=%v", err)
	}
	preds, err := m.Predict(90)
	if err != nil {
		t.Fatalf("predict err=%v", err)
	}
	if len(preds) != 90 {
		t.Fatalf("len=%d want=90", len(preds))
	}

	last := records[len(records)-1]
	for i, p := range preds {
		wantDate := last.Date.AddDate(0, 0, i+1)
		if !p.Date.Equal(wantDate) {
			t.Fatalf("day %d date=%v want=%v", i, p.Date, wantDate)
		}
		if p.TotalVisitors < 0 || p.AdultTickets < 0 || p.ChildTickets < 0 {
			t.Fatalf("day %d has negative counts: %+v", i, p)
		}
		if p.AdultTickets+p.ChildTickets != p.TotalVisitors {
			t.Fatalf("day %d not reconciled: adult=%d child=%d total=%d",
				i, p.AdultTickets, p.ChildTickets, p.TotalVisitors)
		}
		if !p.AdultPrice.Equal(last.AdultPrice) || !p.ChildPrice.Equal(last.ChildPrice) {
			t.Fatalf("day %d prices not carried forward: %s/%s", i, p.AdultPrice, p.ChildPrice)
		}
		wantAdultRev := decimal.NewFromInt(int64(p.AdultTickets)).Mul(p.AdultPrice)
		if !p.AdultRevenue.Equal(wantAdultRev) {
			t.Fatalf("day %d adult revenue=%s want=%s", i, p.AdultRevenue, wantAdultRev)
		}
		if !p.TotalRevenue.Equal(p.AdultRevenue.Add(p.ChildRevenue)) {
			t.Fatalf("day %d total revenue=%s", i, p.TotalRevenue)
		}
		if p.DayOfWeek != dataset.MondayIndexed(p.Date.Weekday()) {
			t.Fatalf("day %d dayofweek=%d", i, p.DayOfWeek)
		}
		if p.IsWeekend != (p.DayOfWeek >= 5) {
			t.Fatalf("day %d weekend flag=%v dayofweek=%d", i, p.IsWeekend, p.DayOfWeek)
		}
	}
}

func TestPredict_WeekendsBusier(t *testing.T) {
	m, err := Fit(historyRecords(t, 120), DefaultConfig())
	if err != nil {
		t.Fatalf("fit err=%v", err)
	}
	preds, err := m.Predict(14)
	if err != nil {
		t.Fatalf("predict err=%v", err)
	}
	var weekendSum, weekdaySum, weekendN, weekdayN int
	for _, p := range preds {
		if p.IsWeekend {
			weekendSum += p.TotalVisitors
			weekendN++
		} else {
			weekdaySum += p.TotalVisitors
			weekdayN++
		}
	}
	if weekendN == 0 || weekdayN == 0 {
		t.Fatalf("horizon missing weekend or weekday days")
	}
	if weekendSum/weekendN <= weekdaySum/weekdayN {
		t.Fatalf("weekend avg=%d should exceed weekday avg=%d", weekendSum/weekendN, weekdaySum/weekdayN)
	}
}
