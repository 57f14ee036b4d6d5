package views

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
	"github.com/KillianMeersman/telemeter/internal/ui/components"
)

// OverviewView is the landing tab: quota gauge, period countdown, and
// the derived stats for the current billing period.
type OverviewView struct {
	record   *domain.UsageRecord
	now      func() time.Time
	AnimTick uint
}

func NewOverviewView() *OverviewView {
	return &OverviewView{now: time.Now}
}

func (v *OverviewView) SetRecord(rec *domain.UsageRecord) {
	v.record = rec
}

func (v *OverviewView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *OverviewView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if v.record == nil {
		return theme.MutedStyle.Render("  " + i18n.T("loading"))
	}

	var sections []string
	sections = append(sections, v.renderQuota(cardWidth, compact))
	sections = append(sections, v.renderPeriod(cardWidth, compact))
	sections = append(sections, v.renderStats(cardWidth, compact))

	return strings.Join(sections, "\n")
}

// ── Section 1: Quota — semicircle gauge ──

func (v *OverviewView) renderQuota(cardWidth int, compact bool) string {
	rec := v.record
	card := components.Card{
		Title:   i18n.T("tab_overview"),
		Tick:    v.AnimTick,
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	gaugeW := innerW / 2
	if gaugeW < 16 {
		gaugeW = 16
	}
	if gaugeW > 32 {
		gaugeW = 32
	}

	var detail string
	if rec.HasQuota() {
		detail = theme.BodyStyle.Render(i18n.Tf("used_of",
			components.FormatBytes(rec.UsedBytes),
			components.FormatBytes(rec.TotalQuotaBytes)))
	} else {
		detail = theme.BodyStyle.Render(i18n.Tf("used_unlimited",
			components.FormatBytes(rec.UsedBytes)))
	}

	gauge := components.SemicircleGauge{
		Percent: rec.UsedPercent() / 100,
		Detail:  detail,
		Width:   gaugeW,
	}

	lines := gauge.Render()
	if rec.Squeezed {
		lines = append(lines, "")
		lines = append(lines, components.CenterText(
			theme.ErrorStyle.Render("⚠ "+i18n.T("squeezed")), gaugeW))
	} else if rec.OverQuota() {
		lines = append(lines, "")
		lines = append(lines, components.CenterText(
			theme.WarningStyle.Render("⚠ "+i18n.T("over_quota")), gaugeW))
	}

	card.Content = components.CenterBlock(strings.Join(lines, "\n"), innerW)
	return card.Render()
}

// ── Section 2: Period — countdown clock and progress bar ──

func (v *OverviewView) renderPeriod(cardWidth int, compact bool) string {
	rec := v.record
	now := v.now()
	card := components.Card{
		Title:   i18n.T("period"),
		Tick:    v.AnimTick,
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	countdown := components.PeriodCountdown{
		Now:   now,
		End:   rec.PeriodEnd,
		Width: innerW,
	}

	rangeLine := theme.BodyStyle.Render(
		components.FormatDayMonth(rec.PeriodStart) + " → " +
			components.FormatDayMonth(rec.PeriodEnd.Add(-time.Second)))

	barW := innerW - 4
	if barW > 60 {
		barW = 60
	}
	if barW < 10 {
		barW = 10
	}
	bar := components.ProgressBar(rec.PeriodProgress(now), barW, theme.QuotaGradient)

	lines := []string{
		countdown.Render(),
		components.CenterText(rangeLine, innerW),
		"",
		components.CenterText(bar, innerW),
	}

	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

// ── Section 3: Stats — remaining / daily average / projected ──

func (v *OverviewView) renderStats(cardWidth int, compact bool) string {
	rec := v.record
	now := v.now()
	card := components.Card{
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	statGap := 4
	statW := (innerW - 2*statGap) / 3
	if statW < 12 {
		statW = 12
	}

	remaining := components.StatCard{
		Value: components.FormatBytes(rec.RemainingBytes()),
		Label: i18n.T("remaining"),
		Width: statW,
	}
	if !rec.HasQuota() {
		remaining.Value = "∞"
	}

	avg := components.StatCard{
		Value: components.FormatBytes(rec.DailyAverageBytes(now)),
		Label: i18n.T("daily_avg"),
		Width: statW,
	}

	projected := components.StatCard{
		Value: components.FormatBytes(rec.ProjectedBytes(now)),
		Label: i18n.T("projected"),
		Width: statW,
	}
	if rec.HasQuota() && rec.ProjectedBytes(now) > rec.TotalQuotaBytes {
		projected.Color = theme.ColorCoral
	}

	row := components.RenderStatRow(
		[]components.StatCard{remaining, avg, projected}, statGap)

	card.Content = components.CenterBlock(row, innerW)
	return card.Render()
}
