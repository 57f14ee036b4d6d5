package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

// TabBar renders a numbered tab bar with active highlighting and a
// bottom separator. The account being monitored shows on the right.
type TabBar struct {
	ViewNames   []string
	ActiveIndex int
	Width       int
	Username    string
}

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMutedText).
				Padding(0, 1)

	tabAccountStyle = lipgloss.NewStyle().Foreground(theme.ColorMauve)
)

// Render returns the styled tab bar with bottom separator line.
func (tb TabBar) Render() string {
	var tabs []string
	for i, name := range tb.ViewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == tb.ActiveIndex {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	line := strings.Join(tabs, "")

	if tb.Username != "" {
		account := tabAccountStyle.Render("[" + tb.Username + "]")
		pad := tb.Width - lipgloss.Width(line) - lipgloss.Width(account) - 4
		if pad < 2 {
			pad = 2
		}
		line += strings.Repeat(" ", pad) + account
	}

	tabLine := lipgloss.NewStyle().
		Width(tb.Width).
		Padding(0, 1).
		Render(line)

	sep := theme.MutedStyle.Render(strings.Repeat("─", tb.Width))

	return tabLine + "\n" + sep
}
