package applog_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/KillianMeersman/telemeter/internal/applog"
)

func TestRotator_CreatesFileOnFirstWrite(t *testing.T) {
	dir := t.TempDir()
	r := applog.NewRotator(dir)
	defer r.Close()

	if _, err := r.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}

	today := time.Now().Format("2006-01-02")
	name := filepath.Join(dir, "telemeter-"+today+".log")
	if _, err := os.Stat(name); err != nil {
		t.Errorf("expected log file %q to exist: %v", name, err)
	}
}

func TestRotator_RotatesOnDateChange(t *testing.T) {
	dir := t.TempDir()
	r := applog.NewRotator(dir)
	defer r.Close()

	r.SetNow(func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) })
	if _, err := r.Write([]byte("day1\n")); err != nil {
		t.Fatal(err)
	}

	r.SetNow(func() time.Time { return time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC) })
	if _, err := r.Write([]byte("day2\n")); err != nil {
		t.Fatal(err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "telemeter-*.log"))
	if len(matches) != 2 {
		t.Errorf("expected 2 log files after rotation, got %d", len(matches))
	}
}

func TestRotator_PrunesOldFiles(t *testing.T) {
	dir := t.TempDir()
	r := applog.NewRotator(dir)

	// Nine days of writes; only the newest seven files may survive.
	for i := 1; i <= 9; i++ {
		day := i
		r.SetNow(func() time.Time { return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC) })
		if _, err := r.Write([]byte("entry\n")); err != nil {
			t.Fatal(err)
		}
	}
	r.Close()

	matches, _ := filepath.Glob(filepath.Join(dir, "telemeter-*.log"))
	if len(matches) != 7 {
		t.Errorf("expected 7 log files after pruning, got %d: %v", len(matches), matches)
	}
	for _, name := range matches {
		base := filepath.Base(name)
		if base == "telemeter-2026-08-01.log" || base == "telemeter-2026-08-02.log" {
			t.Errorf("old file %q should have been pruned", base)
		}
	}
}

func TestInitFile_WritesThroughSlog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := applog.InitFile(dir, "info")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	slog.Info("file-log-marker")

	today := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, "telemeter-"+today+".log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "file-log-marker") {
		t.Errorf("slog output not found in log file; contents: %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"DEBUG", slog.LevelDebug},
		{"nonsense", slog.LevelWarn},
	}
	for _, tc := range cases {
		if got := applog.ParseLevel(tc.input); got != tc.level {
			t.Errorf("ParseLevel(%q): got %v want %v", tc.input, got, tc.level)
		}
	}
}
