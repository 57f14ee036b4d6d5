package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
)

type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Render(width, height int) string {
	title := theme.AnimatedGradientText(i18n.T("help_title"), h.AnimTick, theme.ColorCardBg)

	bindings := []struct {
		key  string
		desc string
	}{
		{"1 / 2 / 3", i18n.T("help_tabs")},
		{"Tab / Shift+Tab", i18n.T("help_cycle")},
		{"", ""},
		{"h / l / Left / Right", i18n.T("help_months")},
		{"r", i18n.T("help_refresh")},
		{"", ""},
		{"? ", i18n.T("help_help")},
		{"s", i18n.T("help_settings")},
		{"Esc", i18n.T("help_close")},
		{"", ""},
		{"q / Ctrl+C", i18n.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		if len(b.key) > maxKeyLen {
			maxKeyLen = len(b.key)
		}
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		padded := fmt.Sprintf("%-*s", maxKeyLen, b.key)
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(padded),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n")

	boxWidth := 56
	if width < 60 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
