package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is a normalized source row. Numeric cells stay as raw strings until the
// validator coerces them; Date is nil when no format could resolve it.
type Row struct {
	Date *time.Time

	AdultTickets      string
	ChildTickets      string
	ForeignerTickets  string
	CameraTickets     string
	HendCameraTickets string

	AdultPrice string
	ChildPrice string

	ReportedTotal string
}

// Frame is the Schema Normalizer output: canonical fields with a usable date
// column, ready for validation.
type Frame struct {
	Profile    Profile
	Columns    []string
	Rows       []Row
	ZeroFilled []string
	DateSource string
}

// Options carries the default unit prices assigned when the source has no
// price columns.
type Options struct {
	DefaultAdultPrice decimal.Decimal
	DefaultChildPrice decimal.Decimal
}

func DefaultOptions() Options {
	return Options{
		DefaultAdultPrice: decimal.NewFromFloat(25.00),
		DefaultChildPrice: decimal.NewFromFloat(15.00),
	}
}

// Ledger "booking date" formats, tried in order; the first layout that parses
// at least one value is adopted for the whole column.
var bookingDateLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
}

// Best-effort layouts for the generic profile and as the ledger fallback.
var looseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"2006.01.02",
}

// Normalize applies a column mapping to a raw table, resolving the date
// column and filling defaults for absent categories and prices.
func Normalize(t *Table, m *Mapping, opts Options) *Frame {
	frame := &Frame{
		Profile:    m.Profile,
		Columns:    append([]string(nil), t.Columns...),
		ZeroFilled: append([]string(nil), m.ZeroFilled...),
	}

	dates, source := resolveDates(t, m)
	frame.DateSource = source

	idx := func(name string) int {
		if name == "" {
			return -1
		}
		return t.columnIndex(name)
	}
	adultIdx := idx(m.AdultTickets)
	childIdx := idx(m.ChildTickets)
	foreignerIdx := idx(m.ForeignerTickets)
	cameraIdx := idx(m.CameraTickets)
	hendIdx := idx(m.HendCameraTickets)
	adultPriceIdx := idx(m.AdultPrice)
	childPriceIdx := idx(m.ChildPrice)
	totalIdx := idx(m.ReportedTotal)

	defaultAdult := opts.DefaultAdultPrice.String()
	defaultChild := opts.DefaultChildPrice.String()

	frame.Rows = make([]Row, len(t.Rows))
	for i, src := range t.Rows {
		row := Row{
			Date:         dates[i],
			AdultTickets: t.cell(src, adultIdx),
			ChildTickets: t.cell(src, childIdx),
		}

		row.ForeignerTickets = optionalCell(t, src, foreignerIdx)
		row.CameraTickets = optionalCell(t, src, cameraIdx)
		row.HendCameraTickets = optionalCell(t, src, hendIdx)

		if adultPriceIdx >= 0 {
			row.AdultPrice = t.cell(src, adultPriceIdx)
		} else {
			row.AdultPrice = defaultAdult
		}
		if childPriceIdx >= 0 {
			row.ChildPrice = t.cell(src, childPriceIdx)
		} else {
			row.ChildPrice = defaultChild
		}

		if totalIdx >= 0 {
			row.ReportedTotal = t.cell(src, totalIdx)
		}

		frame.Rows[i] = row
	}

	return frame
}

func optionalCell(t *Table, src []string, idx int) string {
	if idx < 0 {
		return "0"
	}
	v := t.cell(src, idx)
	if v == "" {
		return "0"
	}
	return v
}

// resolveDates produces one calendar date per row (nil when unresolvable) and
// names the source column used.
func resolveDates(t *Table, m *Mapping) ([]*time.Time, string) {
	if m.Profile == ProfileLedger {
		if m.Timestamp != "" {
			if dates, ok := datesFromEpoch(t, m.Timestamp); ok {
				return dates, m.Timestamp
			}
			// No usable numeric timestamps; fall back to the text column.
		}
		return datesFromText(t, m.BookingDate, bookingDateLayouts), m.BookingDate
	}
	return datesFromText(t, m.Date, nil), m.Date
}

// datesFromEpoch converts a numeric epoch column. Current-era second
// timestamps have ten digits starting with "17"; anything else is treated as
// milliseconds. The bool result is false when the column holds no numbers at
// all.
func datesFromEpoch(t *Table, column string) ([]*time.Time, bool) {
	idx := t.columnIndex(column)
	dates := make([]*time.Time, len(t.Rows))

	var sample float64
	found := false
	for _, src := range t.Rows {
		v, err := strconv.ParseFloat(t.cell(src, idx), 64)
		if err == nil {
			sample = v
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	seconds := strings.HasPrefix(strconv.FormatInt(int64(sample), 10), "17")
	for i, src := range t.Rows {
		v, err := strconv.ParseFloat(t.cell(src, idx), 64)
		if err != nil {
			continue
		}
		var ts time.Time
		if seconds {
			ts = time.Unix(int64(v), 0).UTC()
		} else {
			ts = time.UnixMilli(int64(v)).UTC()
		}
		d := toCalendarDate(ts)
		dates[i] = &d
	}
	return dates, true
}

// datesFromText tries strict layouts column-wise: the first layout with at
// least one parsed value is adopted and the rest of the column parses against
// it alone. If no strict layout (or none was given) hits, each cell gets a
// best-effort pass over the loose layout list.
func datesFromText(t *Table, column string, strict []string) []*time.Time {
	dates := make([]*time.Time, len(t.Rows))
	idx := t.columnIndex(column)
	if idx < 0 {
		return dates
	}

	for _, layout := range strict {
		hits := 0
		for i, src := range t.Rows {
			if d, ok := parseWith(t.cell(src, idx), layout); ok {
				dates[i] = &d
				hits++
			}
		}
		if hits > 0 {
			return dates
		}
		for i := range dates {
			dates[i] = nil
		}
	}

	for i, src := range t.Rows {
		cell := t.cell(src, idx)
		for _, layout := range looseDateLayouts {
			if d, ok := parseWith(cell, layout); ok {
				dates[i] = &d
				break
			}
		}
	}
	return dates
}

func parseWith(value, layout string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return toCalendarDate(ts), true
}

func toCalendarDate(ts time.Time) time.Time {
	y, mo, d := ts.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
