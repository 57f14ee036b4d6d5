package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
)

// StatusBar renders the bottom bar: key hints on the left, fetch status
// on the right.
type StatusBar struct {
	Width       int
	Refreshing  bool
	Tick        uint      // animation tick for the refreshing shimmer
	LastUpdated time.Time // zero until the first successful fetch
	Err         string    // last fetch error, shown instead of the timestamp
}

// 4 key hints mapped to a 4-color run of the palette.
var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorGold,
}

// Render returns the status bar: separator + hints/status line.
func (s StatusBar) Render() string {
	sep := theme.MutedStyle.Render(strings.Repeat("─", s.Width))

	left := s.renderKeyHints()
	right := s.renderStatus()

	pad := s.Width - VisualWidth(left) - VisualWidth(right) - 2
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right + "  "

	return sep + "\n" + line
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"?", i18n.T("status_help")},
		{"s", i18n.T("status_settings")},
		{"r", i18n.T("status_refresh")},
		{"q", i18n.T("status_quit")},
	}

	var parts []string
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}

	return "  " + strings.Join(parts, "  ")
}

func (s StatusBar) renderStatus() string {
	switch {
	case s.Err != "":
		return theme.ErrorStyle.Render(i18n.Tf("status_error", s.Err))
	case s.Refreshing:
		return theme.AnimatedGradientText(i18n.T("refreshing"), s.Tick)
	case !s.LastUpdated.IsZero():
		return theme.MutedStyle.Render(i18n.Tf("last_updated", s.LastUpdated.Format("15:04:05")))
	default:
		return ""
	}
}
