package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2024-02-29", Date{2024, time.February, 29}, true},
		{" 2026-10-14 ", Date{2026, time.October, 14}, true},
		{"2024-05-01T15:04:05Z", Date{2024, time.May, 1}, true},
		{"2024-05-01T23:30:00-05:00", Date{2024, time.May, 1}, true},
		{"2023-02-29", Date{}, false},
		{"05/01/2024", Date{}, false},
		{"", Date{}, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDate(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error", tc.in)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewDateNormalises(t *testing.T) {
	if got := NewDate(2023, time.February, 29); got != (Date{2023, time.March, 1}) {
		t.Fatalf("expected normalised March 1, got %v", got)
	}
	if got := NewDate(2024, time.January, 0); got != (Date{2023, time.December, 31}) {
		t.Fatalf("expected Dec 31, got %v", got)
	}
}

func TestDateArithmeticAndOrdering(t *testing.T) {
	d := NewDate(2024, time.December, 31)
	if next := d.AddDays(1); next != NewDate(2025, time.January, 1) {
		t.Fatalf("AddDays crossed year wrong: %v", next)
	}
	if !d.Before(d.AddDays(1)) || !d.After(d.AddDays(-1)) || d.Compare(d) != 0 {
		t.Fatalf("ordering helpers disagree")
	}
	if NewDate(2026, time.October, 14).Weekday() != time.Wednesday {
		t.Fatalf("unexpected weekday")
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Fatalf("unexpected encoding %s", b)
	}
	var zero Date
	b, _ = json.Marshal(zero)
	if string(b) != `""` {
		t.Fatalf("zero date should encode empty, got %s", b)
	}
	var d Date
	if err := json.Unmarshal([]byte(`"2024-03-05T10:00:00Z"`), &d); err != nil || d != NewDate(2024, time.March, 5) {
		t.Fatalf("decode timestamp: %v %v", d, err)
	}
	if err := json.Unmarshal([]byte(`""`), &d); err != nil || !d.IsZero() {
		t.Fatalf("decode empty: %v %v", d, err)
	}
	if err := json.Unmarshal([]byte(`12`), &d); err == nil {
		t.Fatalf("expected error for non-string date")
	}
	if err := json.Unmarshal([]byte(`"tomorrow"`), &d); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("9:05")
	if err != nil || got != "09:05" {
		t.Fatalf("expected 09:05, got %q %v", got, err)
	}
	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
	if got.String() != "09:05" {
		t.Fatalf("String mismatch")
	}
}
