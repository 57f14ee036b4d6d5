package applog

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	filePrefix = "telemeter-"
	keepDays   = 7
)

// Rotator is an io.Writer that appends to a date-stamped log file and
// switches to a new file when the calendar day changes. Files older
// than keepDays are removed on rotation.
type Rotator struct {
	mu   sync.Mutex
	dir  string
	day  string
	file *os.File
	now  func() time.Time
}

func NewRotator(dir string) *Rotator {
	return &Rotator{dir: dir, now: time.Now}
}

// SetNow replaces the time source. Used in tests only.
func (r *Rotator) SetNow(fn func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = fn
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.now().Format("2006-01-02")
	if day != r.day {
		if err := r.open(day); err != nil {
			return 0, err
		}
	}
	return r.file.Write(p)
}

func (r *Rotator) open(day string) error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}
	name := filepath.Join(r.dir, filePrefix+day+".log")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	r.file = f
	r.day = day

	if old, err := filepath.Glob(filepath.Join(r.dir, filePrefix+"*.log")); err == nil && len(old) > keepDays {
		sort.Strings(old)
		for _, stale := range old[:len(old)-keepDays] {
			os.Remove(stale)
		}
	}
	return nil
}

func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// InitFile routes slog and the stdlib log package to a rotating file
// under dir. Watch mode uses this: the terminal belongs to the TUI, so
// nothing may write to stderr. The returned closer must be deferred by
// the caller.
func InitFile(dir, level string) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator := NewRotator(dir)
	handler := slog.NewTextHandler(rotator, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler))
	log.SetOutput(rotator)
	log.SetFlags(0)
	return rotator, nil
}

// InitStderr routes slog to stderr. One-shot invocations use this.
func InitStderr(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a level string to slog.Level. Defaults to LevelWarn:
// a usage check is quiet unless something needs attention.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
