package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorTeal     = lipgloss.Color("#5fb3a1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorGold     = lipgloss.Color("#ffe3b3")
	ColorAmber    = lipgloss.Color("#f2a96b")
	ColorCoral    = lipgloss.Color("#f07070")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#191a2b")
	ColorCardBg     = lipgloss.Color("#222336")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// QuotaGradient colors the usage gauge from calm to alarming. A freshly
// reset period starts teal; an exhausted one ends coral.
var QuotaGradient = []string{
	"#5fb3a1", // teal - start
	"#86bada", // sky blue
	"#ffe3b3", // gold
	"#f2a96b", // amber
	"#f07070", // coral - end
}

// HeatGradient shades calendar cells from quiet days to the busiest.
var HeatGradient = []string{
	"#2a2b42", // no traffic
	"#3f6c8a",
	"#86bada",
	"#ffe3b3",
	"#f07070", // busiest
}

// CategoryPalette colors usage categories (peak, off-peak, Wi-Free) in
// the pie chart and its legend.
var CategoryPalette = []string{
	"#86bada", // sky blue
	"#9f99d1", // lavender
	"#dbaad7", // mauve
	"#ffe3b3", // gold
	"#5fb3a1", // teal
}

// QuotaColor maps a used/quota fraction onto the gauge gradient.
// Fractions outside [0,1] clamp to the endpoints, so an over-quota
// period stays coral.
func QuotaColor(frac float64) lipgloss.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return lipgloss.Color(MultiStopGradient(frac, QuotaGradient))
}

// HeatColor maps a day's share of the busiest day onto the heat scale.
func HeatColor(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(MultiStopGradient(t, HeatGradient))
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// MultiStopGradient interpolates through multiple color stops.
func MultiStopGradient(t float64, stops []string) string {
	if len(stops) < 2 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := int(t * float64(segments))
	if segment >= segments {
		segment = segments - 1
	}
	localT := t*float64(segments) - float64(segment)

	return LerpColor(stops[segment], stops[segment+1], localT)
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // pre-allocate for ANSI escape overhead
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// AnimatedGradientText applies a narrow sliding gradient across text.
// tick is incremented by the UI animation timer (250ms per tick).
// Optional bg parameter sets a background color on each character.
func AnimatedGradientText(text string, tick uint, bg ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	stops := QuotaGradient
	n := float64(len(stops))

	// Narrow window: the text spans roughly 1.5 color segments at a time.
	windowSize := 1.5 / n

	// Full cycle in 10 seconds (40 ticks at 250ms).
	phase := float64(tick) * 0.025
	phase = phase - math.Floor(phase)

	var sb strings.Builder
	sb.Grow(len(text) * 20)
	baseStyle := lipgloss.NewStyle()
	if len(bg) > 0 {
		baseStyle = baseStyle.Background(bg[0])
	}
	for i, r := range runes {
		charT := float64(i) / float64(max(len(runes)-1, 1))
		t := phase + charT*windowSize
		t = t - math.Floor(t) // wrap to [0, 1)
		color := wrapGradient(t, stops)
		sb.WriteString(baseStyle.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// wrapGradient interpolates through stops with wrapping (last back to first).
func wrapGradient(t float64, stops []string) string {
	t = t - math.Floor(t)
	n := len(stops)
	pos := t * float64(n)
	idx := int(pos)
	if idx >= n {
		idx = 0
	}
	localT := pos - math.Floor(pos)
	next := (idx + 1) % n
	return LerpColor(stops[idx], stops[next], localT)
}

// Semantic colors
var (
	ColorOverlayBg    = lipgloss.Color("#111122") // overlay dimmed background
	ColorWeekendFaded = lipgloss.Color("#4f5060") // faded weekend header
	ColorGaugeDim     = "#2a2b42"                 // dim arc in the gauge (raw hex for the braille canvas)
	ColorPieChartBg   = "#373855"                 // pie chart background (raw hex for the braille canvas)
)

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCoral).
			Bold(true)
)
