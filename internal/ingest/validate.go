package ingest

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CleanRow is a validated row: resolved date, coerced numerics, decimal
// prices. Ticket counts stay float64 here; rounding happens at enrichment.
type CleanRow struct {
	Date time.Time

	AdultTickets      float64
	ChildTickets      float64
	ForeignerTickets  float64
	CameraTickets     float64
	HendCameraTickets float64

	AdultPrice decimal.Decimal
	ChildPrice decimal.Decimal

	ReportedTotal *decimal.Decimal
}

// Result carries the surviving rows plus everything that was recovered
// locally: the dropped-date count and rounding warnings are reported, never
// swallowed.
type Result struct {
	Rows         []CleanRow
	DroppedDates int
	Warnings     []string
}

// Validate enforces the structural and numeric invariants of the canonical
// schema on a normalized frame.
func Validate(f *Frame) (*Result, error) {
	if len(f.Columns) < 2 || len(f.Rows) == 0 {
		return nil, &EmptyDataError{Columns: len(f.Columns), Rows: len(f.Rows)}
	}

	valid := 0
	for _, row := range f.Rows {
		if row.Date != nil {
			valid++
		}
	}
	if valid == 0 {
		return nil, &AllDatesInvalidError{Rows: len(f.Rows)}
	}

	res := &Result{
		Rows:         make([]CleanRow, 0, valid),
		DroppedDates: len(f.Rows) - valid,
	}

	nonInteger := map[string]bool{}
	for _, row := range f.Rows {
		if row.Date == nil {
			continue
		}

		clean := CleanRow{Date: *row.Date}

		var err error
		if clean.AdultTickets, err = coreNumber(row.AdultTickets, FieldAdultTickets); err != nil {
			return nil, err
		}
		if clean.ChildTickets, err = coreNumber(row.ChildTickets, FieldChildTickets); err != nil {
			return nil, err
		}

		clean.ForeignerTickets = tolerantNumber(row.ForeignerTickets)
		clean.CameraTickets = tolerantNumber(row.CameraTickets)
		clean.HendCameraTickets = tolerantNumber(row.HendCameraTickets)

		if clean.AdultPrice, err = corePrice(row.AdultPrice, FieldAdultPrice); err != nil {
			return nil, err
		}
		if clean.ChildPrice, err = corePrice(row.ChildPrice, FieldChildPrice); err != nil {
			return nil, err
		}

		if row.ReportedTotal != "" {
			if total, derr := decimal.NewFromString(row.ReportedTotal); derr == nil {
				clean.ReportedTotal = &total
			}
		}

		if err := checkNegative(clean); err != nil {
			return nil, err
		}

		for col, v := range map[string]float64{
			FieldAdultTickets:      clean.AdultTickets,
			FieldChildTickets:      clean.ChildTickets,
			FieldForeignerTickets:  clean.ForeignerTickets,
			FieldCameraTickets:     clean.CameraTickets,
			FieldHendCameraTickets: clean.HendCameraTickets,
		} {
			if v != math.Trunc(v) {
				nonInteger[col] = true
			}
		}

		res.Rows = append(res.Rows, clean)
	}

	for _, col := range []string{FieldAdultTickets, FieldChildTickets, FieldForeignerTickets, FieldCameraTickets, FieldHendCameraTickets} {
		if nonInteger[col] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("column %q has non-integer ticket counts; values will be rounded", col))
		}
	}
	if res.DroppedDates > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("dropped %d of %d rows with unparseable dates", res.DroppedDates, len(f.Rows)))
	}

	return res, nil
}

func coreNumber(value, column string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &NonNumericColumnError{Column: column}
	}
	return v, nil
}

func corePrice(value, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &NonNumericColumnError{Column: column}
	}
	return d, nil
}

// tolerantNumber coerces optional category cells; anything unparseable
// becomes 0, mirroring the forgiving handling of add-on columns.
func tolerantNumber(value string) float64 {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return v
}

func checkNegative(row CleanRow) error {
	counts := []struct {
		col string
		v   float64
	}{
		{FieldAdultTickets, row.AdultTickets},
		{FieldChildTickets, row.ChildTickets},
		{FieldForeignerTickets, row.ForeignerTickets},
		{FieldCameraTickets, row.CameraTickets},
		{FieldHendCameraTickets, row.HendCameraTickets},
	}
	for _, c := range counts {
		if c.v < 0 {
			return &NegativeValueError{Column: c.col}
		}
	}
	if row.AdultPrice.IsNegative() {
		return &NegativeValueError{Column: FieldAdultPrice}
	}
	if row.ChildPrice.IsNegative() {
		return &NegativeValueError{Column: FieldChildPrice}
	}
	return nil
}
