package components

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1 << 10, "1.0 KiB"},
		{300 << 20, "300 MiB"},
		{int64(5.5 * float64(1<<30)), "5.5 GiB"},
		{750 << 30, "750 GiB"},
	}
	for _, tt := range tests {
		got := FormatBytes(tt.input)
		if got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{30 * time.Minute, "30m"},
		{90 * time.Minute, "1h 30m"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{26 * time.Hour, "1d 2h"},
		{12*24*time.Hour + 7*time.Hour, "12d 7h"},
		{-5 * time.Minute, "0m"},
	}
	for _, tt := range tests {
		got := FormatDuration(tt.input)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatDayMonth(t *testing.T) {
	d := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDayMonth(d); got != "01/08" {
		t.Errorf("FormatDayMonth = %q, want 01/08", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.4); got != "40.0%" {
		t.Errorf("FormatPercent(0.4) = %q, want 40.0%%", got)
	}
	if got := FormatPercent(1.25); got != "125.0%" {
		t.Errorf("FormatPercent(1.25) = %q, want 125.0%%", got)
	}
}
