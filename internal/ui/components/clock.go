package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
)

// BigDigits maps each digit (0-9) and colon to 5-line block art.
// Each digit is 5 chars wide, colon is 3 chars wide.
// Uses full blocks (█) and half-blocks (▀▄) for a bold, clean look.
var BigDigits = map[rune][]string{
	'0': {"█▀▀▀█", "█   █", "█   █", "█   █", "█▄▄▄█"},
	'1': {"  ▄█ ", "   █ ", "   █ ", "   █ ", "  ▄█▄"},
	'2': {"▀▀▀▀█", "    █", "█▀▀▀▀", "█    ", "█▄▄▄▄"},
	'3': {"▀▀▀▀█", "    █", " ▀▀▀█", "    █", "▄▄▄▄█"},
	'4': {"█   █", "█   █", "▀▀▀▀█", "    █", "    █"},
	'5': {"█▀▀▀▀", "█    ", "▀▀▀▀█", "    █", "▄▄▄▄█"},
	'6': {"█▀▀▀▀", "█    ", "█▀▀▀█", "█   █", "█▄▄▄█"},
	'7': {"▀▀▀▀█", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█▀▀▀█", "█   █", "█▀▀▀█", "█   █", "█▄▄▄█"},
	'9': {"█▀▀▀█", "█   █", "▀▀▀▀█", "    █", "▄▄▄▄█"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// blankColon is the invisible colon (same width, all spaces).
var blankColon = []string{"   ", "   ", "   ", "   ", "   "}

// PeriodCountdown renders how long until the billing period resets.
// Far from the reset it shows a big day count; inside the last two days
// it switches to a ticking HH:MM:SS clock.
type PeriodCountdown struct {
	Now   time.Time
	End   time.Time // exclusive period end, the reset moment
	Width int
}

const clockSwitchover = 48 * time.Hour

// Render returns the countdown as a string block.
func (c PeriodCountdown) Render() string {
	remaining := c.End.Sub(c.Now)
	if remaining < 0 {
		remaining = 0
	}

	var lines []string
	if remaining >= clockSwitchover {
		days := int(remaining.Hours()) / 24
		lines = c.renderBig(fmt.Sprintf("%d", days), true)
		lines = append(lines, "")
		label := lipgloss.NewStyle().Foreground(theme.ColorAmber).
			Render(i18n.Tf("days_left", days))
		lines = append(lines, CenterText(label, c.Width))
	} else {
		hours := int(remaining.Hours())
		minutes := int(remaining.Minutes()) % 60
		seconds := int(remaining.Seconds()) % 60
		// Colon blinks on the wall-clock second so it ticks even while
		// the remaining time stands still between refreshes.
		colonOn := c.Now.Nanosecond() < 500_000_000
		lines = c.renderBig(fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds), colonOn)
		lines = append(lines, "")
		label := lipgloss.NewStyle().Foreground(theme.ColorAmber).
			Render(i18n.Tf("days_left", 0))
		lines = append(lines, CenterText(label, c.Width))
	}

	resetInfo := theme.BodyStyle.Render(FormatDayMonth(c.End))
	lines = append(lines, CenterText(resetInfo, c.Width))

	return strings.Join(lines, "\n")
}

// renderBig converts text into 5-line block art, coloring digit groups
// along the palette and honoring the colon blink state.
func (c PeriodCountdown) renderBig(text string, colonOn bool) []string {
	groupStyles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Bold(true),
		lipgloss.NewStyle().Foreground(theme.ColorLavender).Bold(true),
		lipgloss.NewStyle().Foreground(theme.ColorMauve),
	}
	colonStyle := lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true)

	digitLines := make([]string, 5)
	group := 0
	for _, ch := range text {
		if ch == ':' {
			glyph := BigDigits[':']
			if !colonOn {
				glyph = blankColon
			}
			for row := 0; row < 5; row++ {
				if len(digitLines[row]) > 0 {
					digitLines[row] += " "
				}
				digitLines[row] += colonStyle.Render(glyph[row])
			}
			if group < len(groupStyles)-1 {
				group++
			}
			continue
		}

		digit, ok := BigDigits[ch]
		if !ok {
			continue
		}
		style := groupStyles[group]
		for row := 0; row < 5; row++ {
			if len(digitLines[row]) > 0 {
				digitLines[row] += " "
			}
			digitLines[row] += style.Render(digit[row])
		}
	}

	lines := make([]string, 0, 5)
	for _, dl := range digitLines {
		lines = append(lines, CenterText(dl, c.Width))
	}
	return lines
}
