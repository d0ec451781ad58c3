package verify

import (
	"testing"
	"time"
)

func TestParseDateTimeShapes(t *testing.T) {
	cases := []struct {
		date, tim string
		want      time.Time
	}{
		{"15 Aug 2026", "12:45 PM", time.Date(2026, 8, 15, 12, 45, 0, 0, time.UTC)},
		{"3rd September 2026", "09:05 am", time.Date(2026, 9, 3, 9, 5, 0, 0, time.UTC)},
		{"Aug 15, 2026", "7:02 pm", time.Date(2026, 8, 15, 19, 2, 0, 0, time.UTC)},
		{"05/08/2026", "14:32", time.Date(2026, 8, 5, 14, 32, 0, 0, time.UTC)},
		{"5-8-2026", "14:32", time.Date(2026, 8, 5, 14, 32, 0, 0, time.UTC)},
		{"15/08/26", "23:59", time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)},
		{"15 AUG 2026", "12:45:30 PM", time.Date(2026, 8, 15, 12, 45, 30, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseDateTime(c.date, c.tim, time.UTC)
		if !ok {
			t.Errorf("ParseDateTime(%q, %q) failed to parse", c.date, c.tim)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDateTime(%q, %q) = %v, want %v", c.date, c.tim, got, c.want)
		}
	}
}

func TestParseDateTimeDayFirstNumeric(t *testing.T) {
	// numeric dates are day-first, never month-first
	got, ok := ParseDateTime("02/03/2026", "10:00", time.UTC)
	if !ok {
		t.Fatal("failed to parse")
	}
	if got.Month() != time.March || got.Day() != 2 {
		t.Errorf("got %v, want 2 March 2026", got)
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	cases := [][2]string{
		{"99/99/9999", "25:99"},
		{"", ""},
		{"someday", "noon"},
		{"32 Aug 2026", "12:00 PM"},
	}
	for _, c := range cases {
		if _, ok := ParseDateTime(c[0], c[1], time.UTC); ok {
			t.Errorf("ParseDateTime(%q, %q) = ok, want failure", c[0], c[1])
		}
	}
}

func TestParseDateTimeLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	got, ok := ParseDateTime("15 Aug 2026", "12:45 PM", ist)
	if !ok {
		t.Fatal("failed to parse")
	}
	if got.Location() != ist {
		t.Errorf("location = %v, want IST", got.Location())
	}
}

func TestCanonicalize(t *testing.T) {
	cases := [][2]string{
		{"3rd september 2026 09:05 am", "3 Sep 2026 09:05 AM"},
		{"15  AUGUST   2026  12:45 PM", "15 Aug 2026 12:45 PM"},
		{"05/08/2026 14:32", "05/08/2026 14:32"},
	}
	for _, c := range cases {
		if got := canonicalize(c[0]); got != c[1] {
			t.Errorf("canonicalize(%q) = %q, want %q", c[0], got, c[1])
		}
	}
}
