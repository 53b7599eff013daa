package ingest

import (
	"errors"
	"testing"
)

func TestDetectDelimiter_Priority(t *testing.T) {
	cases := []struct {
		name string
		text string
		want rune
	}{
		{"tab wins over semicolon and comma", "a\tb;c,d\n1\t2;3,4\n", '\t'},
		{"semicolon wins over comma", "a;b,c\n1;2,3\n", ';'},
		{"comma fallback", "a,b\n1,2\n", ','},
		{"no delimiter at all", "abc\ndef\n", ','},
	}
	for _, tc := range cases {
		if got := DetectDelimiter(tc.text); got != tc.want {
			t.Fatalf("%s: delimiter=%q want=%q", tc.name, got, tc.want)
		}
	}
}

func TestParseDelimited_TabLedger(t *testing.T) {
	raw := []byte("Booking Date\tAdult Tickets\tChild Tickets\tTotal Amount (INR)\n" +
		"1/15/2024 9:30:00 AM\t120\t45\t3675.00\n" +
		"1/16/2024 10:05:00 AM\t98\t52\t3230.00\n")

	table, encoding, delim, err := ParseDelimited(raw)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if encoding != "utf-8" {
		t.Fatalf("encoding=%s want=utf-8", encoding)
	}
	if delim != '\t' {
		t.Fatalf("delim=%q want=tab", delim)
	}
	if len(table.Columns) != 4 || table.Columns[0] != "booking date" || table.Columns[3] != "total amount (inr)" {
		t.Fatalf("columns=%v", table.Columns)
	}
	if len(table.Rows) != 2 || table.Rows[0][1] != "120" {
		t.Fatalf("rows=%v", table.Rows)
	}
}

func TestParseDelimited_RejectsSpreadsheetMagic(t *testing.T) {
	raw := append([]byte{0x50, 0x4b, 0x03, 0x04}, []byte("not really csv")...)
	_, _, _, err := ParseDelimited(raw)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("err=%v want=*FormatError", err)
	}
}

func TestParseDelimited_RaggedRowsPadded(t *testing.T) {
	raw := []byte("date,adult tickets,child tickets\n2024-01-01,10\n")
	table, _, _, err := ParseDelimited(raw)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(table.Rows[0]) != 3 {
		t.Fatalf("row width=%d want=3", len(table.Rows[0]))
	}
	if table.Rows[0][2] != "" {
		t.Fatalf("padded cell=%q want empty", table.Rows[0][2])
	}
}

func TestCanonicalColumnName(t *testing.T) {
	cases := map[string]string{
		"  Booking Date ": "booking date",
		"ADULT TICKETS":   "adult tickets",
		"\ufeffdate":      "date",
	}
	for in, want := range cases {
		if got := CanonicalColumnName(in); got != want {
			t.Fatalf("canonical(%q)=%q want=%q", in, got, want)
		}
	}
}
