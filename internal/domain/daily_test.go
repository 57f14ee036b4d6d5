package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int, peak, offpeak int64) DayUsage {
	return DayUsage{
		Date:         time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		PeakBytes:    peak,
		OffPeakBytes: offpeak,
	}
}

func TestSumBytes(t *testing.T) {
	days := []DayUsage{
		day(2026, 8, 1, 100, 50),
		day(2026, 8, 2, 200, 25),
	}
	if got := SumBytes(days); got != 375 {
		t.Errorf("SumBytes = %d, want 375", got)
	}
	if got := SumBytes(nil); got != 0 {
		t.Errorf("SumBytes(nil) = %d, want 0", got)
	}
}

func TestMaxDayBytes(t *testing.T) {
	days := []DayUsage{
		day(2026, 8, 1, 100, 50),
		day(2026, 8, 2, 200, 25),
		day(2026, 8, 3, 10, 10),
	}
	if got := MaxDayBytes(days); got != 225 {
		t.Errorf("MaxDayBytes = %d, want 225", got)
	}
}

func TestBusiestDay(t *testing.T) {
	days := []DayUsage{
		day(2026, 8, 1, 100, 50),
		day(2026, 8, 2, 200, 25),
	}
	best, ok := BusiestDay(days)
	if !ok {
		t.Fatal("BusiestDay returned no day")
	}
	if best.Date.Day() != 2 {
		t.Errorf("BusiestDay = day %d, want day 2", best.Date.Day())
	}

	if _, ok := BusiestDay(nil); ok {
		t.Error("BusiestDay(nil) returned a day, want none")
	}
}

func TestFilterMonth(t *testing.T) {
	days := []DayUsage{
		day(2026, 7, 31, 1, 0),
		day(2026, 8, 1, 2, 0),
		day(2026, 8, 15, 3, 0),
		day(2026, 9, 1, 4, 0),
	}
	got := FilterMonth(days, 2026, time.August)
	if len(got) != 2 {
		t.Fatalf("FilterMonth returned %d days, want 2", len(got))
	}
	if got[0].Date.Day() != 1 || got[1].Date.Day() != 15 {
		t.Errorf("FilterMonth kept days %d and %d, want 1 and 15",
			got[0].Date.Day(), got[1].Date.Day())
	}
}
