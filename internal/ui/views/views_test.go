package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
)

func testViewRecord() *domain.UsageRecord {
	return &domain.UsageRecord{
		PeriodStart:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TotalQuotaBytes: 750 << 30,
		UsedBytes:       300 << 30,
		Unit:            domain.UnitBytes,
		Categories: []domain.Category{
			{Name: "peak", UsedBytes: 200 << 30},
			{Name: "offpeak", UsedBytes: 100 << 30},
		},
		Days: []domain.DayUsage{
			{Date: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), PeakBytes: 5 << 30, OffPeakBytes: 1 << 30},
			{Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), PeakBytes: 20 << 30, OffPeakBytes: 2 << 30},
		},
	}
}

func TestMondayIndex(t *testing.T) {
	tests := []struct {
		wd   time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}
	for _, tt := range tests {
		if got := mondayIndex(tt.wd); got != tt.want {
			t.Errorf("mondayIndex(%v) = %d, want %d", tt.wd, got, tt.want)
		}
	}
}

func TestIsWeekendCol(t *testing.T) {
	for col := 0; col < 5; col++ {
		if isWeekendCol(col) {
			t.Errorf("col %d flagged as weekend", col)
		}
	}
	for col := 5; col < 7; col++ {
		if !isWeekendCol(col) {
			t.Errorf("col %d not flagged as weekend", col)
		}
	}
}

func TestByDayOfMonth(t *testing.T) {
	rec := testViewRecord()
	m := byDayOfMonth(rec.Days)
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if got := m[10].PeakBytes; got != 20<<30 {
		t.Errorf("day 10 peak = %d, want %d", got, int64(20)<<30)
	}
	if _, ok := m[4]; ok {
		t.Error("day 4 should be absent")
	}
}

func TestBreakdownSlices(t *testing.T) {
	i18n.SetLanguage("en")
	v := NewBreakdownView()
	v.SetRecord(testViewRecord())

	slices := v.slices()
	if len(slices) != 2 {
		t.Fatalf("len = %d, want 2", len(slices))
	}
	// Record order, not size order.
	if slices[0].Label != "Peak" || slices[1].Label != "Off-peak" {
		t.Errorf("labels = %q, %q", slices[0].Label, slices[1].Label)
	}
	if got := slices[0].Percentage; got < 66.6 || got > 66.7 {
		t.Errorf("peak share = %.2f, want ~66.67", got)
	}
	if got := slices[1].Bytes; got != 100<<30 {
		t.Errorf("offpeak bytes = %d", got)
	}
}

func TestCalendarSnapsToRecordPeriod(t *testing.T) {
	v := NewCalendarView()
	v.SetRecord(testViewRecord())
	if v.year != 2026 || v.month != time.August {
		t.Errorf("calendar at %d-%v, want 2026-August", v.year, v.month)
	}
}

func TestCalendarNavigationWraps(t *testing.T) {
	v := NewCalendarView()
	v.year, v.month = 2026, time.January

	left := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
	if cmd := v.Update(left); cmd == nil {
		t.Fatal("h not consumed")
	}
	if v.year != 2025 || v.month != time.December {
		t.Errorf("after h: %d-%v, want 2025-December", v.year, v.month)
	}

	right := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}
	v.Update(right)
	if v.year != 2026 || v.month != time.January {
		t.Errorf("after l: %d-%v, want 2026-January", v.year, v.month)
	}
	if !v.navigated {
		t.Error("navigation should pin the calendar")
	}
}

func TestCalendarKeepsPositionAfterNavigation(t *testing.T) {
	v := NewCalendarView()
	v.SetRecord(testViewRecord())
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})

	v.SetRecord(testViewRecord())
	if v.month != time.September {
		t.Errorf("refresh moved the calendar to %v", v.month)
	}
}

func TestOverviewRenderShowsUsage(t *testing.T) {
	i18n.SetLanguage("en")
	v := NewOverviewView()
	v.now = func() time.Time { return time.Date(2026, 8, 11, 12, 0, 0, 0, time.UTC) }
	v.SetRecord(testViewRecord())

	out := v.Render(100, 40, false)
	if !strings.Contains(out, "300 GiB") {
		t.Errorf("overview missing used volume:\n%s", out)
	}
	if !strings.Contains(out, "750 GiB") {
		t.Errorf("overview missing quota:\n%s", out)
	}
}

func TestOverviewRenderWithoutRecord(t *testing.T) {
	i18n.SetLanguage("en")
	v := NewOverviewView()
	out := v.Render(100, 40, false)
	if !strings.Contains(out, i18n.T("loading")) {
		t.Errorf("expected loading placeholder, got:\n%s", out)
	}
}
