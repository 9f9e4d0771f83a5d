package period

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		start, end    string
		daysPerWeek   int
		wantTotal     int
		wantAttending int
	}{
		{"one week", "2024-01-01", "2024-01-07", 5, 7, 5},
		{"two weeks five days", "2024-01-01", "2024-01-14", 5, 14, 10},
		{"single day", "2024-03-10", "2024-03-10", 7, 1, 1},
		{"single day floors to zero", "2024-03-10", "2024-03-10", 3, 1, 0},
		{"leap february", "2024-02-01", "2024-02-29", 2, 29, 8},
		{"across year end", "2023-12-25", "2024-01-05", 4, 12, 6},
		{"semester", "2024-02-05", "2024-06-21", 5, 138, 98},
		{"four centuries", "2000-01-01", "2400-01-01", 5, 146098, 104355},
		{"whole calendar", "0001-01-01", "9999-12-31", 3, 3652059, 1565168},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := Compute(mustDate(t, tt.start), mustDate(t, tt.end), tt.daysPerWeek)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if span.TotalDays != tt.wantTotal {
				t.Errorf("TotalDays = %d, want %d", span.TotalDays, tt.wantTotal)
			}
			if span.AttendingDays != tt.wantAttending {
				t.Errorf("AttendingDays = %d, want %d", span.AttendingDays, tt.wantAttending)
			}
		})
	}
}

func TestCompute_TotalWeeks(t *testing.T) {
	span, err := Compute(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-14"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if span.TotalWeeks() != 2.0 {
		t.Errorf("TotalWeeks = %v, want 2.0", span.TotalWeeks())
	}
}

func TestCompute_IgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	start := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	end := time.Date(2024, 3, 11, 0, 15, 0, 0, loc)

	span, err := Compute(start, end, 7)
	if err != nil {
		t.Fatal(err)
	}
	if span.TotalDays != 3 {
		t.Errorf("TotalDays = %d, want 3", span.TotalDays)
	}
}

func TestCompute_StartAfterEnd(t *testing.T) {
	_, err := Compute(mustDate(t, "2024-02-01"), mustDate(t, "2024-01-31"), 5)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestCompute_DaysPerWeekRange(t *testing.T) {
	for _, n := range []int{0, 8, -1} {
		_, err := Compute(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"), n)
		if !errors.Is(err, ErrDaysPerWeek) {
			t.Errorf("days=%d: err = %v, want ErrDaysPerWeek", n, err)
		}
	}
}

func TestSpan_String(t *testing.T) {
	span, _ := Compute(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-14"), 5)
	if got := span.String(); got != "2024-01-01 → 2024-01-14" {
		t.Errorf("String() = %q", got)
	}
}
