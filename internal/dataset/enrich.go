package dataset

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/ingest"
)

// Enrich builds the canonical historical frame from validated rows: counts
// rounded, frame sorted ascending by date, every derived metric computed.
func Enrich(rows []ingest.CleanRow, def Defaults) []Record {
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{
			Date:              row.Date,
			AdultTickets:      int(math.Round(row.AdultTickets)),
			ChildTickets:      int(math.Round(row.ChildTickets)),
			ForeignerTickets:  int(math.Round(row.ForeignerTickets)),
			CameraTickets:     int(math.Round(row.CameraTickets)),
			HendCameraTickets: int(math.Round(row.HendCameraTickets)),
			AdultPrice:        row.AdultPrice,
			ChildPrice:        row.ChildPrice,
			ForeignerPrice:    def.Foreigner,
			CameraPrice:       def.Camera,
			HendCameraPrice:   def.HendCamera,
			ReportedTotal:     row.ReportedTotal,
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return Derive(records)
}

// Derive recomputes every derived column from the raw ticket/price fields.
// It is pure and idempotent: Derive(Derive(x)) == Derive(x).
func Derive(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	for i := range out {
		r := &out[i]

		r.AdultRevenue = decimal.NewFromInt(int64(r.AdultTickets)).Mul(r.AdultPrice)
		r.ChildRevenue = decimal.NewFromInt(int64(r.ChildTickets)).Mul(r.ChildPrice)
		r.ForeignerRevenue = decimal.NewFromInt(int64(r.ForeignerTickets)).Mul(r.ForeignerPrice)
		r.CameraRevenue = decimal.NewFromInt(int64(r.CameraTickets)).Mul(r.CameraPrice)
		r.HendCameraRevenue = decimal.NewFromInt(int64(r.HendCameraTickets)).Mul(r.HendCameraPrice)

		// Camera add-ons are not persons.
		r.TotalVisitors = r.AdultTickets + r.ChildTickets + r.ForeignerTickets

		if r.ReportedTotal != nil {
			r.TotalRevenue = *r.ReportedTotal
		} else {
			r.TotalRevenue = r.AdultRevenue.
				Add(r.ChildRevenue).
				Add(r.ForeignerRevenue).
				Add(r.CameraRevenue).
				Add(r.HendCameraRevenue)
		}

		fillCalendar(r, r.Date)

		if r.TotalVisitors > 0 {
			r.AdultPercentage = float64(r.AdultTickets) / float64(r.TotalVisitors) * 100
			r.ChildPercentage = float64(r.ChildTickets) / float64(r.TotalVisitors) * 100
		} else {
			r.AdultPercentage = 0
			r.ChildPercentage = 0
		}
	}

	for i := range out {
		out[i].MA7Visitors = trailingMeanVisitors(out, i, 7)
		out[i].MA30Visitors = trailingMeanVisitors(out, i, 30)
		out[i].MA7Revenue = trailingMeanRevenue(out, i, 7)
		out[i].MA30Revenue = trailingMeanRevenue(out, i, 30)
	}

	return out
}

func fillCalendar(r *Record, d time.Time) {
	r.Year = d.Year()
	r.Month = int(d.Month())
	r.Day = d.Day()
	r.DayOfWeek = MondayIndexed(d.Weekday())
	r.IsWeekend = r.DayOfWeek >= 5
	r.DayName = d.Weekday().String()
	r.MonthName = d.Month().String()
}

// MondayIndexed maps time.Weekday (Sunday=0) to the Monday=0 convention of
// the canonical frame.
func MondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// trailingMeanVisitors is the inclusive trailing mean over up to window rows,
// with a minimum window of one observed point.
func trailingMeanVisitors(records []Record, i, window int) float64 {
	start := i - window + 1
	if start < 0 {
		start = 0
	}
	sum := 0
	for j := start; j <= i; j++ {
		sum += records[j].TotalVisitors
	}
	return float64(sum) / float64(i-start+1)
}

func trailingMeanRevenue(records []Record, i, window int) decimal.Decimal {
	start := i - window + 1
	if start < 0 {
		start = 0
	}
	sum := decimal.Zero
	for j := start; j <= i; j++ {
		sum = sum.Add(records[j].TotalRevenue)
	}
	return sum.Div(decimal.NewFromInt(int64(i - start + 1)))
}
