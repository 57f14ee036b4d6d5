package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

var gaugeLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorBodyText)

// SemicircleGauge renders a filled semicircle arc in braille characters,
// with a percentage readout and an optional detail line underneath.
type SemicircleGauge struct {
	Label   string  // e.g. "This month"
	Percent float64 // 0.0 ~ N (can exceed 1.0 when over quota)
	Detail  string  // e.g. "300 MiB of 750 GiB", already styled
	Width   int     // character width of the gauge area
}

// Render returns the gauge as a block of lines.
func (g SemicircleGauge) Render() []string {
	w := g.Width
	if w < 10 {
		w = 10
	}

	arcH := w / 4
	if arcH < 3 {
		arcH = 3
	}
	if arcH > 6 {
		arcH = 6
	}

	canvas := NewBrailleCanvas(w, arcH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) - 1
	outerR := cy
	if cx-0.5 < outerR {
		outerR = cx - 0.5
	}
	innerR := outerR * 0.62

	fill := g.Percent
	if fill > 1 {
		fill = 1 // arc caps at full even when usage is over quota
	}
	if fill < 0 {
		fill = 0
	}

	canvas.DrawSemicircle(cx, cy, outerR, innerR, fill)
	arcLines := canvas.RenderGradient(theme.ColorGaugeDim, theme.QuotaGradient)

	pctText := FormatPercent(g.Percent)
	pctStyle := lipgloss.NewStyle().Foreground(theme.QuotaColor(g.Percent)).Bold(true)

	var block []string
	if g.Label != "" {
		block = append(block, CenterText(gaugeLabelStyle.Render(g.Label), w))
		block = append(block, "")
	}
	block = append(block, arcLines...)
	block = append(block, CenterText(pctStyle.Render(pctText), w))
	if g.Detail != "" {
		block = append(block, CenterText(g.Detail, w))
	}
	return block
}

// RenderGaugeRow renders multiple gauges side by side.
func RenderGaugeRow(gauges []SemicircleGauge, gap int) string {
	var blocks [][]string
	for _, g := range gauges {
		blocks = append(blocks, g.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}

// ProgressBar renders a horizontal bar of width cells filled to frac,
// colored along the given gradient stops by position.
func ProgressBar(frac float64, width int, stops []string) string {
	if width < 1 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			t := 0.0
			if width > 1 {
				t = float64(i) / float64(width-1)
			}
			color := theme.MultiStopGradient(t, stops)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("█"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorGaugeDim)).Render("░"))
		}
	}
	return b.String()
}
