package ingest

import (
	"fmt"
	"strings"
)

// DecodeError reports that no encoding in the ladder produced a clean decode.
type DecodeError struct {
	Tried []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode file; tried encodings: %s", strings.Join(e.Tried, ", "))
}

// FormatError reports input that is structurally not what the caller claimed,
// e.g. a spreadsheet uploaded with a .csv extension.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// MissingColumnsError lists every required field that could not be matched,
// plus everything that was available, so the operator can self-diagnose.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s (available columns: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

type EmptyDataError struct {
	Columns int
	Rows    int
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("file appears empty or improperly formatted (%d columns, %d rows)", e.Columns, e.Rows)
}

type AllDatesInvalidError struct {
	Rows int
}

func (e *AllDatesInvalidError) Error() string {
	return fmt.Sprintf("all %d rows have unparseable dates", e.Rows)
}

type NonNumericColumnError struct {
	Column string
}

func (e *NonNumericColumnError) Error() string {
	return fmt.Sprintf("column %q contains non-numeric values", e.Column)
}

type NegativeValueError struct {
	Column string
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("column %q contains negative values", e.Column)
}
