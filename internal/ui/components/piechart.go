package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

// PieSlice is one category in the pie: a traffic class and its volume.
type PieSlice struct {
	Label      string
	Bytes      int64
	Percentage float64 // 0-100, share of the total
}

// PieChart renders a braille donut chart with a legend. Slices keep the
// order they are given in; the portal reports categories in a fixed
// order and the chart should match the breakdown table next to it.
type PieChart struct {
	Slices    []PieSlice
	ChartSize int // character width/height of the circle area
	Width     int // total available width (chart + legend)
}

// Render returns the pie chart with legend as a block of lines.
func (p PieChart) Render() string {
	slices := dropEmptySlices(p.Slices)
	if len(slices) == 0 {
		return theme.MutedStyle.Render("  No data")
	}

	chartSize := p.ChartSize
	if chartSize < 8 {
		chartSize = 8
	}

	palette := theme.CategoryPalette
	maxColors := len(palette)

	chartH := chartSize / 2 // braille cells are twice as tall as wide
	if chartH < 4 {
		chartH = 4
	}
	canvas := NewBrailleCanvas(chartSize, chartH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) / 2
	outerR := math.Min(cx, cy) - 0.5
	innerR := outerR * 0.45 // donut shape

	// Small slices get boosted to a drawable arc; the legend keeps the
	// real percentages.
	drawPcts := enforceMinArc(slices, outerR)

	startAngle := 0.0
	for i := range slices {
		sliceAngle := drawPcts[i] / 100.0 * 2 * math.Pi
		if sliceAngle < 0.001 {
			continue
		}
		endAngle := startAngle + sliceAngle
		if endAngle > 2*math.Pi {
			endAngle = 2 * math.Pi
		}
		colorIdx := i
		if colorIdx >= maxColors {
			colorIdx = maxColors - 1
		}
		canvas.DrawRing(cx, cy, outerR, innerR, startAngle, endAngle, colorIdx)
		startAngle = endAngle
	}

	chartLines := canvas.Render(palette, theme.ColorPieChartBg)
	legendLines := buildLegend(slices, palette)

	combined := JoinHorizontal([][]string{chartLines, legendLines}, 3)
	return strings.Join(combined, "\n")
}

// dropEmptySlices removes categories that would round to 0% but keeps
// the remaining slices in their original order.
func dropEmptySlices(slices []PieSlice) []PieSlice {
	var kept []PieSlice
	for _, s := range slices {
		if math.Round(s.Percentage*100)/100 > 0 {
			kept = append(kept, s)
		}
	}
	return kept
}

// enforceMinArc returns adjusted percentages for drawing.
// Small slices are bumped up so they span at least 4 braille pixels of arc,
// borrowing from the largest slice. Original slice data is not modified.
func enforceMinArc(slices []PieSlice, outerR float64) []float64 {
	pcts := make([]float64, len(slices))
	for i, s := range slices {
		pcts[i] = s.Percentage
	}
	if len(pcts) <= 1 {
		return pcts
	}

	minArc := 4.0 / outerR                   // radians
	minPct := minArc / (2 * math.Pi) * 100.0 // percentage

	var deficit float64
	largestIdx := 0
	for i, p := range pcts {
		if p > pcts[largestIdx] {
			largestIdx = i
		}
		if p > 0 && p < minPct {
			deficit += minPct - p
			pcts[i] = minPct
		}
	}

	if deficit > 0 {
		pcts[largestIdx] -= deficit
	}

	return pcts
}

// buildLegend creates the legend with aligned columns: colored square,
// category name, share, volume.
func buildLegend(slices []PieSlice, palette []string) []string {
	type legendEntry struct {
		colorHex string
		label    string
		pctStr   string
		volStr   string
	}

	maxLabel, maxPct, maxVol := 0, 0, 0
	entries := make([]legendEntry, len(slices))
	for i, s := range slices {
		colorIdx := i
		if colorIdx >= len(palette) {
			colorIdx = len(palette) - 1
		}
		pctStr := fmt.Sprintf("%.1f%%", s.Percentage)
		volStr := FormatBytes(s.Bytes)

		entries[i] = legendEntry{
			colorHex: palette[colorIdx],
			label:    s.Label,
			pctStr:   pctStr,
			volStr:   volStr,
		}

		if len(s.Label) > maxLabel {
			maxLabel = len(s.Label)
		}
		if len(pctStr) > maxPct {
			maxPct = len(pctStr)
		}
		if len(volStr) > maxVol {
			maxVol = len(volStr)
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText)

	var lines []string
	for _, e := range entries {
		square := ColoredSquare(e.colorHex)
		label := labelStyle.Render(fmt.Sprintf("%-*s", maxLabel, e.label))
		sliceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colorHex))
		pct := sliceStyle.Render(fmt.Sprintf("%*s", maxPct, e.pctStr))
		vol := sliceStyle.Render(fmt.Sprintf("%*s", maxVol, e.volStr))
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s", square, label, pct, vol))
	}

	return lines
}
