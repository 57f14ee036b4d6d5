package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
	"github.com/KillianMeersman/telemeter/internal/ui/components"
)

// CalendarView shows the billing period day by day as a month grid.
// Day numbers are heat-colored by that day's share of the busiest day.
type CalendarView struct {
	record    *domain.UsageRecord
	year      int
	month     time.Month
	navigated bool // user moved months; stop snapping to the record
	AnimTick  uint
}

func NewCalendarView() *CalendarView {
	now := time.Now()
	return &CalendarView{year: now.Year(), month: now.Month()}
}

func (v *CalendarView) SetRecord(rec *domain.UsageRecord) {
	v.record = rec
	if rec != nil && !v.navigated {
		v.year = rec.PeriodStart.Year()
		v.month = rec.PeriodStart.Month()
	}
}

func (v *CalendarView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "left", "h":
			v.month--
			if v.month < time.January {
				v.month = time.December
				v.year--
			}
			v.navigated = true
			return KeyHandledCmd
		case "right", "l":
			v.month++
			if v.month > time.December {
				v.month = time.January
				v.year++
			}
			v.navigated = true
			return KeyHandledCmd
		}
	}
	return nil
}

func (v *CalendarView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	card := components.Card{
		Title:   fmt.Sprintf("%04d-%02d", v.year, int(v.month)),
		Tick:    v.AnimTick,
		Width:   cardWidth,
		Compact: compact,
	}

	if v.record == nil {
		card.Content = theme.MutedStyle.Render(i18n.T("loading"))
		return card.Render()
	}

	days := domain.FilterMonth(v.record.Days, v.year, v.month)
	if len(days) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_daily_data"))
		return card.Render()
	}

	innerW := card.InnerWidth()
	var sections []string
	sections = append(sections, v.renderGrid(days, innerW))

	if busiest, ok := domain.BusiestDay(days); ok {
		footer := theme.MutedStyle.Render(i18n.Tf("busiest_day",
			components.FormatDayMonth(busiest.Date),
			components.FormatBytes(busiest.TotalBytes())))
		sections = append(sections, "")
		sections = append(sections, components.CenterText(footer, innerW))
	}

	card.Content = strings.Join(sections, "\n")
	return card.Render()
}

// byDayOfMonth indexes a month's usage by day number.
func byDayOfMonth(days []domain.DayUsage) map[int]domain.DayUsage {
	m := make(map[int]domain.DayUsage, len(days))
	for _, d := range days {
		m[d.Date.Day()] = d
	}
	return m
}

// mondayIndex maps time.Weekday to a Monday-first column (Mo=0 .. Su=6).
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func isWeekendCol(col int) bool {
	return col >= 5 // Sa, Su in a Monday-first grid
}

func (v *CalendarView) renderGrid(days []domain.DayUsage, innerWidth int) string {
	cellWidth := innerWidth / 7
	if cellWidth < 9 {
		cellWidth = 9
	}
	if cellWidth > 14 {
		cellWidth = 14
	}

	byDay := byDayOfMonth(days)
	maxBytes := domain.MaxDayBytes(days)

	var headerCells []string
	for i, name := range strings.Fields(i18n.T("weekdays")) {
		style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
		if isWeekendCol(i) {
			style = style.Foreground(theme.ColorWeekendFaded)
		} else {
			style = style.Foreground(theme.ColorMutedText)
		}
		headerCells = append(headerCells, style.Render(name))
	}
	header := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, strings.Join(headerCells, ""))

	firstDay := time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(v.year, v.month+1, 0, 0, 0, 0, 0, time.Local).Day()

	rows := []string{header}

	var week []int
	for i := 0; i < mondayIndex(firstDay.Weekday()); i++ {
		week = append(week, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		week = append(week, day)
		if len(week) == 7 {
			rows = append(rows, v.renderWeekRow(week, byDay, maxBytes, cellWidth, innerWidth))
			week = nil
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, 0)
		}
		rows = append(rows, v.renderWeekRow(week, byDay, maxBytes, cellWidth, innerWidth))
	}

	return strings.Join(rows, "\n")
}

// renderWeekRow renders one week as 4 lines: heat-colored day number,
// day total, peak/off-peak split, blank spacer.
func (v *CalendarView) renderWeekRow(week []int, byDay map[int]domain.DayUsage, maxBytes int64, cellWidth, innerWidth int) string {
	base := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	blank := base.Render("")

	var line1, line2, line3, line4 []string

	for col, day := range week {
		if day == 0 {
			line1 = append(line1, blank)
			line2 = append(line2, blank)
			line3 = append(line3, blank)
			line4 = append(line4, blank)
			continue
		}

		d, reported := byDay[day]
		dayStr := fmt.Sprintf("%d", day)

		if !reported || d.TotalBytes() == 0 {
			dayStyle := base.Foreground(theme.ColorMutedText)
			if isWeekendCol(col) {
				dayStyle = base.Foreground(theme.ColorWeekendFaded)
			}
			line1 = append(line1, dayStyle.Render(dayStr))
			line2 = append(line2, blank)
			line3 = append(line3, blank)
			line4 = append(line4, blank)
			continue
		}

		heat := 0.0
		if maxBytes > 0 {
			heat = float64(d.TotalBytes()) / float64(maxBytes)
		}
		line1 = append(line1,
			base.Foreground(theme.HeatColor(heat)).Bold(true).Render(dayStr))
		line2 = append(line2,
			base.Foreground(theme.ColorBodyText).Render(components.FormatBytes(d.TotalBytes())))
		line3 = append(line3,
			base.Foreground(theme.ColorMutedText).Render(
				components.FormatBytes(d.PeakBytes)+"/"+components.FormatBytes(d.OffPeakBytes)))
		line4 = append(line4, blank)
	}

	place := func(cells []string) string {
		return lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, strings.Join(cells, ""))
	}

	return place(line1) + "\n" + place(line2) + "\n" + place(line3) + "\n" + place(line4)
}
