package ingest

import "strings"

// Profile identifies which column-naming convention a file follows.
type Profile string

const (
	// ProfileLedger is the booking-system export: tab-delimited with
	// "booking date" / "adult tickets" style headers.
	ProfileLedger Profile = "ledger"
	// ProfileGeneric is the fuzzy fallback for arbitrary visitor spreadsheets.
	ProfileGeneric Profile = "generic"
)

// Canonical field names.
const (
	FieldDate              = "date"
	FieldAdultTickets      = "adult_tickets"
	FieldChildTickets      = "child_tickets"
	FieldForeignerTickets  = "foreigner_tickets"
	FieldCameraTickets     = "camera_tickets"
	FieldHendCameraTickets = "hend_camera_tickets"
	FieldAdultPrice        = "adult_price"
	FieldChildPrice        = "child_price"
)

// Ledger header names, matched case-insensitively and exactly.
const (
	ledgerBookingDate       = "booking date"
	ledgerAdultTickets      = "adult tickets"
	ledgerChildTickets      = "child tickets"
	ledgerForeignerTickets  = "foreigner tickets"
	ledgerCameraTickets     = "camera tickets"
	ledgerHendCameraTickets = "h-end camera tickets"
	ledgerTotalINR          = "total amount (inr)"
	ledgerTotalNoService    = "total amount without service charge"
)

// Mapping resolves canonical fields to source column names. An empty string
// means the field has no source column.
type Mapping struct {
	Profile Profile

	Date        string // generic profile only
	Timestamp   string // ledger: numeric epoch column, if present
	BookingDate string // ledger: free-text date column

	AdultTickets      string
	ChildTickets      string
	ForeignerTickets  string
	CameraTickets     string
	HendCameraTickets string

	AdultPrice string
	ChildPrice string

	ReportedTotal string

	// ZeroFilled lists optional ticket categories absent from the source.
	ZeroFilled []string
}

// matcher is one row of the declarative generic-profile table: a canonical
// field and the predicate a source column name must satisfy to claim it.
type matcher struct {
	field string
	match func(name string) bool
}

func nameContains(keywords ...string) func(string) bool {
	return func(name string) bool {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, p := range preds {
			if !p(name) {
				return false
			}
		}
		return true
	}
}

var genericMatchers = []matcher{
	{field: FieldDate, match: nameContains("date", "day", "time")},
	{field: FieldAdultTickets, match: allOf(nameContains("adult"), nameContains("ticket", "visit", "attendance"))},
	{field: FieldChildTickets, match: allOf(nameContains("child"), nameContains("ticket", "visit", "attendance"))},
	{field: FieldAdultPrice, match: allOf(nameContains("adult"), nameContains("price", "cost", "fee", "$"))},
	{field: FieldChildPrice, match: allOf(nameContains("child"), nameContains("price", "cost", "fee", "$"))},
}

var genericRequired = []string{FieldDate, FieldAdultTickets, FieldChildTickets, FieldAdultPrice, FieldChildPrice}

// MapColumns selects a profile for the table and resolves the canonical
// fields, or fails with MissingColumnsError naming every unmatched required
// field under the active profile.
func MapColumns(t *Table) (*Mapping, error) {
	if isLedger(t) {
		return mapLedger(t), nil
	}
	return mapGeneric(t)
}

func isLedger(t *Table) bool {
	return t.columnIndex(ledgerBookingDate) >= 0 &&
		t.columnIndex(ledgerAdultTickets) >= 0 &&
		t.columnIndex(ledgerChildTickets) >= 0
}

func mapLedger(t *Table) *Mapping {
	m := &Mapping{
		Profile:      ProfileLedger,
		BookingDate:  ledgerBookingDate,
		AdultTickets: ledgerAdultTickets,
		ChildTickets: ledgerChildTickets,
	}

	// The epoch column appears both as "timestamp" and "time stamp".
	for _, col := range t.Columns {
		if strings.ReplaceAll(col, " ", "") == "timestamp" {
			m.Timestamp = col
			break
		}
	}

	optional := []struct {
		source string
		field  string
		dst    *string
	}{
		{ledgerForeignerTickets, FieldForeignerTickets, &m.ForeignerTickets},
		{ledgerCameraTickets, FieldCameraTickets, &m.CameraTickets},
		{ledgerHendCameraTickets, FieldHendCameraTickets, &m.HendCameraTickets},
	}
	for _, opt := range optional {
		if t.columnIndex(opt.source) >= 0 {
			*opt.dst = opt.source
		} else {
			m.ZeroFilled = append(m.ZeroFilled, opt.field)
		}
	}

	// A verbatim total means prices stay at the defaults; no per-row
	// back-solving of unit prices is attempted.
	if t.columnIndex(ledgerTotalINR) >= 0 {
		m.ReportedTotal = ledgerTotalINR
	} else if t.columnIndex(ledgerTotalNoService) >= 0 {
		m.ReportedTotal = ledgerTotalNoService
	}

	return m
}

func mapGeneric(t *Table) (*Mapping, error) {
	m := &Mapping{Profile: ProfileGeneric}
	resolved := map[string]string{}

	for _, req := range genericRequired {
		// Direct match on the canonical name first.
		if t.columnIndex(req) >= 0 {
			resolved[req] = req
			continue
		}
		for _, mt := range genericMatchers {
			if mt.field != req {
				continue
			}
			for _, col := range t.Columns {
				if mt.match(col) {
					resolved[req] = col
					break
				}
			}
		}
	}

	var missing []string
	for _, req := range genericRequired {
		if resolved[req] == "" {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Available: append([]string(nil), t.Columns...)}
	}

	m.Date = resolved[FieldDate]
	m.AdultTickets = resolved[FieldAdultTickets]
	m.ChildTickets = resolved[FieldChildTickets]
	m.AdultPrice = resolved[FieldAdultPrice]
	m.ChildPrice = resolved[FieldChildPrice]
	m.ZeroFilled = []string{FieldForeignerTickets, FieldCameraTickets, FieldHendCameraTickets}
	return m, nil
}
