package components

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count in binary units (GiB, MiB), matching
// how the portal accounts volume.
func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// FormatDuration formats a duration as "Xd Yh", "Xh Ym" or "Xm".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	h := int(d.Hours()) % 24
	m := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, h)
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatDayMonth renders a date as dd/mm, the form the portal uses.
func FormatDayMonth(t time.Time) string {
	return t.Format("02/01")
}

// FormatPercent renders a fraction as a percentage with one decimal.
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}
