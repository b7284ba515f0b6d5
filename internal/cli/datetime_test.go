package cli

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-01", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)},
		{"2024-06-01 09:30", time.Date(2024, time.June, 1, 9, 30, 0, 0, time.Local)},
		{"2024-06-01T09:30", time.Date(2024, time.June, 1, 9, 30, 0, 0, time.Local)},
		{"2024-06-01 09:30:45", time.Date(2024, time.June, 1, 9, 30, 45, 0, time.Local)},
	}
	for _, c := range cases {
		got, err := parseInstant(c.in)
		if err != nil {
			t.Errorf("parseInstant(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("parseInstant(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInstantRFC3339(t *testing.T) {
	got, err := parseInstant("2024-06-01T09:30:00Z")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	want := time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseInstantRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024-13-01", "12:30"} {
		if _, err := parseInstant(in); err == nil {
			t.Errorf("parseInstant(%q) must fail", in)
		}
	}
}

func TestParseBoundNow(t *testing.T) {
	b, err := parseBound("now")
	if err != nil {
		t.Fatalf("parseBound(now): %v", err)
	}
	if b == nil {
		t.Fatalf("now yields a bound")
	}

	b, err = parseBound("")
	if err != nil || b != nil {
		t.Fatalf("empty bound is unbounded, got %v %v", b, err)
	}

	if _, err := parseBound("not-a-date"); err == nil {
		t.Fatalf("invalid bound must fail")
	}
}

func TestPickUnits(t *testing.T) {
	units, err := pickUnits(pickFlags{})
	if err != nil {
		t.Fatalf("default units: %v", err)
	}
	if len(units) != 5 {
		t.Fatalf("default is d/m/y h:m, got %v", units)
	}

	units, err = pickUnits(pickFlags{timeOnly: true, seconds: true, hour12: true})
	if err != nil {
		t.Fatalf("time-only units: %v", err)
	}
	if len(units) != 4 {
		t.Fatalf("time-only with seconds and am/pm has 4 fields, got %v", units)
	}

	if _, err := pickUnits(pickFlags{dateOnly: true, timeOnly: true}); err == nil {
		t.Fatalf("date-only and time-only conflict")
	}
}
