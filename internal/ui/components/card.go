package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

// Card wraps content in a rounded-border box with an animated title in
// the top border. When Compact is true, it renders title + separator
// instead of a full border.
type Card struct {
	Title   string // plain text; styled during Render
	Tick    uint   // animation tick for the title shimmer
	Width   int    // total outer width
	Content string // pre-rendered content lines
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2 // indentation only
	}
	return c.Width - 4 // 2 border chars + 2 padding spaces
}

// Render returns the styled card string.
func (c Card) Render() string {
	title := theme.AnimatedGradientText(c.Title, c.Tick)
	if c.Compact {
		return c.renderCompact(title)
	}
	return c.renderFull(title)
}

func (c Card) renderCompact(title string) string {
	sepWidth := c.Width - 4
	if sepWidth < 1 {
		sepWidth = 1
	}
	sep := theme.MutedStyle.Render("  " + strings.Repeat("─", sepWidth))

	if c.Content == "" {
		return title + "\n" + sep
	}
	return title + "\n" + sep + "\n" + c.Content
}

func (c Card) renderFull(title string) string {
	bs := lipgloss.NewStyle().Foreground(theme.ColorBorder)
	innerWidth := c.Width - 2

	// Top border: ╭─ Title ────────╮
	titlePart := ""
	titleWidth := 0
	if c.Title != "" {
		titlePart = " " + title + " "
		titleWidth = lipgloss.Width(titlePart)
	}
	dashes := innerWidth - 1 - titleWidth
	if dashes < 0 {
		dashes = 0
	}
	top := bs.Render("╭─") + titlePart + bs.Render(strings.Repeat("─", dashes)+"╮")

	// Body: │ content...          │
	contentWidth := innerWidth - 2
	var body []string
	for _, line := range strings.Split(c.Content, "\n") {
		pad := contentWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		body = append(body,
			bs.Render("│")+" "+line+strings.Repeat(" ", pad)+" "+bs.Render("│"))
	}

	bottom := bs.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
