package forecast

import (
	"testing"
	"time"
)

func TestUSHoliday(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "new_years_day"},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "mlk_day"},
		{time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC), "washingtons_birthday"},
		{time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC), "memorial_day"},
		{time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), "independence_day"},
		{time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), "labor_day"},
		{time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC), "columbus_day"},
		{time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC), "veterans_day"},
		{time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC), "thanksgiving"},
		{time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), "christmas"},
		{time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), ""},
		{time.Date(2024, 11, 21, 0, 0, 0, 0, time.UTC), ""},
	}
	for _, tc := range cases {
		if got := usHoliday(tc.date); got != tc.want {
			t.Fatalf("usHoliday(%v)=%q want=%q", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestNthWeekday(t *testing.T) {
	// 3rd Monday of January 2024.
	got := nthWeekday(2024, time.January, time.Monday, 3)
	if got.Day() != 15 {
		t.Fatalf("day=%d want=15", got.Day())
	}
	// 1st Thursday of August 2024.
	got = nthWeekday(2024, time.August, time.Thursday, 1)
	if got.Day() != 1 {
		t.Fatalf("day=%d want=1", got.Day())
	}
}

func TestLastWeekday(t *testing.T) {
	// Last Monday of May 2024.
	got := lastWeekday(2024, time.May, time.Monday)
	if got.Day() != 27 {
		t.Fatalf("day=%d want=27", got.Day())
	}
	// Last Friday of February 2024.
	got = lastWeekday(2024, time.February, time.Friday)
	if got.Day() != 23 {
		t.Fatalf("day=%d want=23", got.Day())
	}
}
