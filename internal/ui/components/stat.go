package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statSubStyle   = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a big value with a small label underneath, the way a
// dashboard stat panel does.
type StatCard struct {
	Value string         // e.g. "450 GiB"
	Sub   string         // optional secondary line, e.g. "15 GiB/day"
	Label string         // e.g. "Remaining"
	Width int            // character width
	Color lipgloss.Color // overrides the default value color
}

// Render returns the stat card as a block of lines, all padded to Width.
func (s StatCard) Render() []string {
	w := s.Width
	if w < 8 {
		w = 8
	}

	valueStyle := statValueStyle
	if s.Color != "" {
		valueStyle = lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	}

	lines := []string{CenterText(valueStyle.Render(s.Value), w)}
	if s.Sub != "" {
		lines = append(lines, CenterText(statSubStyle.Render(s.Sub), w))
	}
	lines = append(lines, CenterText(statLabelStyle.Render(s.Label), w))
	return lines
}

// RenderStatRow renders stat cards side by side. Cards with a Sub line
// and cards without line up because JoinHorizontal pads short blocks.
func RenderStatRow(cards []StatCard, gap int) string {
	var blocks [][]string
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
