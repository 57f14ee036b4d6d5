package domain

import (
	"testing"
	"time"
)

func testRecord() UsageRecord {
	return UsageRecord{
		PeriodStart:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		TotalQuotaBytes: 750 * 1024 * 1024 * 1024,
		UsedBytes:       300 * 1024 * 1024 * 1024,
		Unit:            UnitBytes,
		Categories: []Category{
			{Name: "peak", UsedBytes: 200 * 1024 * 1024 * 1024},
			{Name: "offpeak", UsedBytes: 100 * 1024 * 1024 * 1024},
		},
	}
}

func TestUsedPercent(t *testing.T) {
	r := testRecord()
	got := r.UsedPercent()
	want := 40.0
	if got != want {
		t.Errorf("UsedPercent = %f, want %f", got, want)
	}
}

func TestUsedPercent_NoQuota(t *testing.T) {
	r := testRecord()
	r.TotalQuotaBytes = 0
	if got := r.UsedPercent(); got != 0 {
		t.Errorf("UsedPercent = %f, want 0 for unmetered product", got)
	}
	if r.HasQuota() {
		t.Error("HasQuota = true, want false")
	}
}

func TestRemainingBytes(t *testing.T) {
	r := testRecord()
	want := int64(450 * 1024 * 1024 * 1024)
	if got := r.RemainingBytes(); got != want {
		t.Errorf("RemainingBytes = %d, want %d", got, want)
	}

	r.UsedBytes = r.TotalQuotaBytes + 1
	if got := r.RemainingBytes(); got != 0 {
		t.Errorf("RemainingBytes = %d, want 0 when over quota", got)
	}
	if !r.OverQuota() {
		t.Error("OverQuota = false, want true")
	}
}

func TestCategoryBytes(t *testing.T) {
	r := testRecord()
	got, ok := r.CategoryBytes("offpeak")
	if !ok {
		t.Fatal("CategoryBytes(offpeak) not found")
	}
	if want := int64(100 * 1024 * 1024 * 1024); got != want {
		t.Errorf("offpeak = %d, want %d", got, want)
	}
	if _, ok := r.CategoryBytes("wifree"); ok {
		t.Error("CategoryBytes(wifree) found, want absent")
	}
}

func TestPeriodMath(t *testing.T) {
	r := testRecord()
	now := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)

	if got := r.PeriodDays(); got != 30 {
		t.Errorf("PeriodDays = %d, want 30", got)
	}
	if got := r.DaysElapsed(now); got != 16 {
		t.Errorf("DaysElapsed = %d, want 16", got)
	}
	if got := r.PeriodProgress(now); got != 0.5 {
		t.Errorf("PeriodProgress = %f, want 0.5", got)
	}
	if got := r.UntilReset(now); got != 15*24*time.Hour {
		t.Errorf("UntilReset = %v, want 360h", got)
	}
}

func TestPeriodMath_Clamped(t *testing.T) {
	r := testRecord()

	before := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	if got := r.DaysElapsed(before); got != 1 {
		t.Errorf("DaysElapsed before start = %d, want 1", got)
	}
	if got := r.PeriodProgress(before); got != 0 {
		t.Errorf("PeriodProgress before start = %f, want 0", got)
	}

	after := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if got := r.DaysElapsed(after); got != 30 {
		t.Errorf("DaysElapsed after end = %d, want 30", got)
	}
	if got := r.UntilReset(after); got != 0 {
		t.Errorf("UntilReset after end = %v, want 0", got)
	}
}

func TestProjectedBytes(t *testing.T) {
	r := testRecord()
	// Halfway through the period, linear projection doubles usage.
	now := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)
	want := 2 * r.UsedBytes
	if got := r.ProjectedBytes(now); got != want {
		t.Errorf("ProjectedBytes = %d, want %d", got, want)
	}

	// At period start there is nothing to extrapolate from.
	if got := r.ProjectedBytes(r.PeriodStart); got != r.UsedBytes {
		t.Errorf("ProjectedBytes at start = %d, want %d", got, r.UsedBytes)
	}
}

func TestDailyAverageBytes(t *testing.T) {
	r := testRecord()
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	want := r.UsedBytes / 10
	if got := r.DailyAverageBytes(now); got != want {
		t.Errorf("DailyAverageBytes = %d, want %d", got, want)
	}
}
